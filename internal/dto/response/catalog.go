package response

import (
	"coffee-shop/internal/data/entity"
)

type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

type ModifierResponse struct {
	ID    int64  `json:"id"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

type ProductResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       int                `json:"price"`
	ImageURL    string             `json:"image_url"`
	CategoryID  string             `json:"category_id"`
	SortOrder   int                `json:"sort_order"`
	Modifiers   []ModifierResponse `json:"modifiers,omitempty"`
}

// MenuResponse is the full public catalog in one payload.
type MenuResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Products   []ProductResponse  `json:"products"`
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		SortOrder: category.SortOrder,
	}
}

func ProductToResponse(product *entity.Product) ProductResponse {
	modifiers := make([]ModifierResponse, len(product.Modifiers))
	for i, mod := range product.Modifiers {
		modifiers[i] = ModifierResponse{
			ID:    mod.ID,
			Type:  string(mod.Type),
			Name:  mod.Name,
			Price: mod.Price,
		}
	}

	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		CategoryID:  product.CategoryID,
		SortOrder:   product.SortOrder,
		Modifiers:   modifiers,
	}
}
