package request

type CreateCategoryRequest struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
}

type UpdateCategoryRequest struct {
	Name      string `json:"name" validate:"required"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
}

type ModifierRequest struct {
	Type  string `json:"type" validate:"required,oneof=size milk syrup"`
	Name  string `json:"name" validate:"required"`
	Price int    `json:"price" validate:"gte=0"`
}

type CreateProductRequest struct {
	Name        string            `json:"name" validate:"required"`
	Description string            `json:"description"`
	Price       int               `json:"price" validate:"required,gte=1"`
	ImageURL    string            `json:"image_url"`
	CategoryID  string            `json:"category_id" validate:"required"`
	SortOrder   int               `json:"sort_order" validate:"gte=0"`
	Modifiers   []ModifierRequest `json:"modifiers" validate:"dive"`
}

type UpdateProductRequest struct {
	Name        string            `json:"name" validate:"required"`
	Description string            `json:"description"`
	Price       int               `json:"price" validate:"required,gte=1"`
	ImageURL    string            `json:"image_url"`
	CategoryID  string            `json:"category_id" validate:"required"`
	SortOrder   int               `json:"sort_order" validate:"gte=0"`
	Modifiers   []ModifierRequest `json:"modifiers" validate:"dive"`
}
