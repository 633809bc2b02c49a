package usecase

import (
	"context"
	"fmt"

	"coffee-shop/internal/data/entity"
	"coffee-shop/internal/data/repository"
	"coffee-shop/internal/dto/request"
	"coffee-shop/internal/dto/response"
	"coffee-shop/pkg/utils"

	"go.uber.org/zap"
)

type CatalogService interface {
	// Public menu
	GetMenu(ctx context.Context) (*response.MenuResponse, error)

	// Admin CRUD. Orders have no such surface: they are immutable.
	CreateCategory(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id string, req *request.UpdateCategoryRequest) (*response.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id string) error
	CreateProduct(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error)
	UpdateProduct(ctx context.Context, id int64, req *request.UpdateProductRequest) (*response.ProductResponse, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetMenu(ctx context.Context) (*response.MenuResponse, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get menu: %w", err)
	}

	products, err := s.repo.Product.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get menu: %w", err)
	}

	menu := &response.MenuResponse{
		Categories: make([]response.CategoryResponse, len(categories)),
		Products:   make([]response.ProductResponse, len(products)),
	}
	for i, category := range categories {
		menu.Categories[i] = response.CategoryToResponse(category)
	}
	for i, product := range products {
		menu.Products[i] = response.ProductToResponse(product)
	}

	return menu, nil
}

func (s *catalogService) CreateCategory(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	category := &entity.Category{
		ID:        req.ID,
		Name:      req.Name,
		SortOrder: req.SortOrder,
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.Info("Category created", zap.String("category_id", category.ID))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, id string, req *request.UpdateCategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update category %s: %w", id, err)
	}
	if category == nil {
		return nil, fmt.Errorf("category %s not found", id)
	}

	category.Name = req.Name
	category.SortOrder = req.SortOrder

	if err := s.repo.Category.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category %s: %w", id, err)
	}

	s.log.Info("Category updated", zap.String("category_id", id))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.repo.Category.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	return nil
}

func (s *catalogService) CreateProduct(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	category, err := s.repo.Category.FindByID(ctx, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("category %s not found", req.CategoryID)
	}

	product := &entity.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		SortOrder:   req.SortOrder,
		Modifiers:   modifiersFromRequest(req.Modifiers),
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name),
		zap.String("category_id", product.CategoryID),
	)

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id int64, req *request.UpdateProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %d not found", id)
	}

	category, err := s.repo.Category.FindByID(ctx, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}
	if category == nil {
		return nil, fmt.Errorf("category %s not found", req.CategoryID)
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.ImageURL = req.ImageURL
	product.CategoryID = req.CategoryID
	product.SortOrder = req.SortOrder
	product.Modifiers = modifiersFromRequest(req.Modifiers)

	if err := s.repo.Product.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}

	s.log.Info("Product updated", zap.Int64("product_id", id))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.Product.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}

func modifiersFromRequest(reqs []request.ModifierRequest) []entity.Modifier {
	modifiers := make([]entity.Modifier, len(reqs))
	for i, m := range reqs {
		modifiers[i] = entity.Modifier{
			Type:  entity.ModifierType(m.Type),
			Name:  m.Name,
			Price: m.Price,
		}
	}
	return modifiers
}
