// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pricetrack/pricetrack-backend/internal/models"
	"github.com/pricetrack/pricetrack-backend/internal/utils"
)

// CatalogService holds the thin CRUD wrappers for the catalog entities:
// brands, product details, retail stores and retailers.
type CatalogService struct {
	db *gorm.DB
}

type CreateBrandRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateBrandRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

type CreateProductDetailRequest struct {
	Name        string    `json:"name" validate:"required,max=100"`
	BrandID     uuid.UUID `json:"brand_id" validate:"required"`
	Price       *float64  `json:"price" validate:"required,min=0"`
	Description *string   `json:"description" validate:"omitempty,max=500"`
}

type UpdateProductDetailRequest struct {
	Name        *string    `json:"name" validate:"omitempty,max=100"`
	BrandID     *uuid.UUID `json:"brand_id"`
	Price       *float64   `json:"price" validate:"omitempty,min=0"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
}

type CreateNamedEntityRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateNamedEntityRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) storeError(err error, op string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// Brands

func (s *CatalogService) ListBrands(params utils.PaginationParams) ([]models.Brand, int64, error) {
	var brands []models.Brand
	total, err := s.list(&models.Brand{}, &brands, params, []string{"created_at", "name"})
	return brands, total, err
}

func (s *CatalogService) GetBrand(id uuid.UUID) (*models.Brand, error) {
	var brand models.Brand
	if err := s.db.First(&brand, "id = ?", id).Error; err != nil {
		return nil, s.storeError(err, "failed to fetch brand")
	}
	return &brand, nil
}

func (s *CatalogService) CreateBrand(req *CreateBrandRequest) (*models.Brand, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	brand := &models.Brand{Name: req.Name}
	if err := s.db.Create(brand).Error; err != nil {
		return nil, s.storeError(err, "failed to create brand")
	}
	return brand, nil
}

func (s *CatalogService) UpdateBrand(id uuid.UUID, req *UpdateBrandRequest) (*models.Brand, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	brand, err := s.GetBrand(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}

	if len(updates) > 0 {
		if err := s.db.Model(brand).Updates(updates).Error; err != nil {
			return nil, s.storeError(err, "failed to update brand")
		}
	}
	return brand, nil
}

func (s *CatalogService) DeleteBrand(id uuid.UUID) error {
	brand, err := s.GetBrand(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(brand).Error; err != nil {
		return s.storeError(err, "failed to delete brand")
	}
	return nil
}

// Product details

func (s *CatalogService) ListProductDetails(params utils.PaginationParams) ([]models.ProductDetail, int64, error) {
	query := s.db.Model(&models.ProductDetail{}).Preload("Brand")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count product details: %w", err)
	}

	query = utils.ApplySort(query, params, []string{"created_at", "name", "price"})
	query = utils.ApplyPagination(query, params)

	var details []models.ProductDetail
	if err := query.Find(&details).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch product details: %w", err)
	}
	return details, total, nil
}

func (s *CatalogService) GetProductDetail(id uuid.UUID) (*models.ProductDetail, error) {
	var detail models.ProductDetail
	if err := s.db.Preload("Brand").First(&detail, "id = ?", id).Error; err != nil {
		return nil, s.storeError(err, "failed to fetch product detail")
	}
	return &detail, nil
}

func (s *CatalogService) CreateProductDetail(req *CreateProductDetailRequest) (*models.ProductDetail, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	detail := &models.ProductDetail{
		Name:        req.Name,
		BrandID:     req.BrandID,
		Price:       *req.Price,
		Description: req.Description,
	}
	if err := s.db.Create(detail).Error; err != nil {
		return nil, s.storeError(err, "failed to create product detail")
	}

	s.db.Preload("Brand").First(detail, "id = ?", detail.ID)
	return detail, nil
}

func (s *CatalogService) UpdateProductDetail(id uuid.UUID, req *UpdateProductDetailRequest) (*models.ProductDetail, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	detail, err := s.GetProductDetail(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.BrandID != nil {
		updates["brand_id"] = *req.BrandID
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) > 0 {
		if err := s.db.Model(detail).Updates(updates).Error; err != nil {
			return nil, s.storeError(err, "failed to update product detail")
		}
	}

	s.db.Preload("Brand").First(detail, "id = ?", id)
	return detail, nil
}

func (s *CatalogService) DeleteProductDetail(id uuid.UUID) error {
	detail, err := s.GetProductDetail(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(detail).Error; err != nil {
		return s.storeError(err, "failed to delete product detail")
	}
	return nil
}

// Retail stores

func (s *CatalogService) ListRetailStores(params utils.PaginationParams) ([]models.RetailStore, int64, error) {
	var stores []models.RetailStore
	total, err := s.list(&models.RetailStore{}, &stores, params, []string{"created_at", "name"})
	return stores, total, err
}

func (s *CatalogService) GetRetailStore(id uuid.UUID) (*models.RetailStore, error) {
	var store models.RetailStore
	if err := s.db.First(&store, "id = ?", id).Error; err != nil {
		return nil, s.storeError(err, "failed to fetch retail store")
	}
	return &store, nil
}

func (s *CatalogService) CreateRetailStore(req *CreateNamedEntityRequest) (*models.RetailStore, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	store := &models.RetailStore{Name: req.Name}
	if err := s.db.Create(store).Error; err != nil {
		return nil, s.storeError(err, "failed to create retail store")
	}
	return store, nil
}

func (s *CatalogService) UpdateRetailStore(id uuid.UUID, req *UpdateNamedEntityRequest) (*models.RetailStore, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	store, err := s.GetRetailStore(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := s.db.Model(store).Update("name", *req.Name).Error; err != nil {
			return nil, s.storeError(err, "failed to update retail store")
		}
	}
	return store, nil
}

func (s *CatalogService) DeleteRetailStore(id uuid.UUID) error {
	store, err := s.GetRetailStore(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(store).Error; err != nil {
		return s.storeError(err, "failed to delete retail store")
	}
	return nil
}

// Retailers

func (s *CatalogService) ListRetailers(params utils.PaginationParams) ([]models.Retailer, int64, error) {
	var retailers []models.Retailer
	total, err := s.list(&models.Retailer{}, &retailers, params, []string{"created_at", "name"})
	return retailers, total, err
}

func (s *CatalogService) GetRetailer(id uuid.UUID) (*models.Retailer, error) {
	var retailer models.Retailer
	if err := s.db.First(&retailer, "id = ?", id).Error; err != nil {
		return nil, s.storeError(err, "failed to fetch retailer")
	}
	return &retailer, nil
}

func (s *CatalogService) CreateRetailer(req *CreateNamedEntityRequest) (*models.Retailer, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	retailer := &models.Retailer{Name: req.Name}
	if err := s.db.Create(retailer).Error; err != nil {
		return nil, s.storeError(err, "failed to create retailer")
	}
	return retailer, nil
}

func (s *CatalogService) UpdateRetailer(id uuid.UUID, req *UpdateNamedEntityRequest) (*models.Retailer, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	retailer, err := s.GetRetailer(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := s.db.Model(retailer).Update("name", *req.Name).Error; err != nil {
			return nil, s.storeError(err, "failed to update retailer")
		}
	}
	return retailer, nil
}

func (s *CatalogService) DeleteRetailer(id uuid.UUID) error {
	retailer, err := s.GetRetailer(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(retailer).Error; err != nil {
		return s.storeError(err, "failed to delete retailer")
	}
	return nil
}

func (s *CatalogService) list(model interface{}, dest interface{}, params utils.PaginationParams, sortFields []string) (int64, error) {
	query := s.db.Model(model)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}

	query = utils.ApplySort(query, params, sortFields)
	query = utils.ApplyPagination(query, params)

	if err := query.Find(dest).Error; err != nil {
		return 0, fmt.Errorf("failed to fetch records: %w", err)
	}
	return total, nil
}
