// Package cataloghdl - Handler cho domain catalog.
package cataloghdl

import (
	"fmt"

	basehdl "meta_catalog/internal/api/base/handler"
	catalogdto "meta_catalog/internal/api/catalog/dto"
	"meta_catalog/internal/api/catalog/models"
	catalogsvc "meta_catalog/internal/api/catalog/service"
)

// CategoryHandler CRUD cho categories.
type CategoryHandler struct {
	*basehdl.BaseHandler[models.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput]
}

// NewCategoryHandler tạo CategoryHandler mới.
func NewCategoryHandler() (*CategoryHandler, error) {
	svc, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("tạo CategoryService: %w", err)
	}
	return &CategoryHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput](svc),
	}, nil
}

// BrandHandler CRUD cho brands.
type BrandHandler struct {
	*basehdl.BaseHandler[models.Brand, catalogdto.BrandCreateInput, catalogdto.BrandUpdateInput]
}

// NewBrandHandler tạo BrandHandler mới.
func NewBrandHandler() (*BrandHandler, error) {
	svc, err := catalogsvc.NewBrandService()
	if err != nil {
		return nil, fmt.Errorf("tạo BrandService: %w", err)
	}
	return &BrandHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Brand, catalogdto.BrandCreateInput, catalogdto.BrandUpdateInput](svc),
	}, nil
}
