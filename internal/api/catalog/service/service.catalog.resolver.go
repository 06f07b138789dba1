package catalogsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"meta_catalog/internal/api/catalog/models"
	"meta_catalog/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// categoryLookup và brandLookup là phần tra cứu theo tên mà resolver cần đến.
type categoryLookup interface {
	FindByName(ctx context.Context, name string) (models.Category, error)
}

type brandLookup interface {
	FindByName(ctx context.Context, name string) (models.Brand, error)
}

// ReferenceResolver phân giải tên danh mục và thương hiệu sang ObjectID.
// Chỉ đọc, không bao giờ tạo mới bản ghi thiếu.
type ReferenceResolver struct {
	categories categoryLookup
	brands     brandLookup
}

// NewReferenceResolver tạo ReferenceResolver mới.
func NewReferenceResolver() (*ReferenceResolver, error) {
	categories, err := NewCategoryService()
	if err != nil {
		return nil, err
	}
	brands, err := NewBrandService()
	if err != nil {
		return nil, err
	}
	return &ReferenceResolver{categories: categories, brands: brands}, nil
}

// Resolve tra cứu đồng thời cả hai tên và gom mọi tên không tìm thấy vào một lỗi duy nhất.
// So khớp chính xác theo tên, tên rỗng bị coi là không phân giải được.
func (r *ReferenceResolver) Resolve(ctx context.Context, categoryName, brandName string) (primitive.ObjectID, primitive.ObjectID, error) {
	var misses []string

	var categoryID primitive.ObjectID
	if categoryName == "" {
		misses = append(misses, "danh mục (tên rỗng)")
	} else {
		category, err := r.categories.FindByName(ctx, categoryName)
		if err != nil {
			if !errors.Is(err, common.ErrNotFound) {
				return primitive.NilObjectID, primitive.NilObjectID, err
			}
			misses = append(misses, fmt.Sprintf("danh mục %q", categoryName))
		} else {
			categoryID = category.ID
		}
	}

	var brandID primitive.ObjectID
	if brandName == "" {
		misses = append(misses, "thương hiệu (tên rỗng)")
	} else {
		brand, err := r.brands.FindByName(ctx, brandName)
		if err != nil {
			if !errors.Is(err, common.ErrNotFound) {
				return primitive.NilObjectID, primitive.NilObjectID, err
			}
			misses = append(misses, fmt.Sprintf("thương hiệu %q", brandName))
		} else {
			brandID = brand.ID
		}
	}

	if len(misses) > 0 {
		msg := fmt.Sprintf("%s: %s", common.MsgReferenceNotFound, strings.Join(misses, ", "))
		return primitive.NilObjectID, primitive.NilObjectID,
			common.NewError(common.ErrCodeReference, msg, common.StatusUnprocessable, misses)
	}

	return categoryID, brandID, nil
}
