package catalogsvc

import (
	"context"
	"fmt"
	"time"

	"meta_catalog/internal/api/catalog/models"
	"meta_catalog/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tên cột nhận diện trong file import. Category/Brand viết hoa theo mẫu file xuất ra.
const (
	ColProductName       = "productName"
	ColSku               = "sku"
	ColShortDescription  = "shortDescription"
	ColLongDescription   = "longDescription"
	ColShippingNotes     = "shippingNotes"
	ColWarrantyInfo      = "warrantyInfo"
	ColVisibleToFrontEnd = "visibleToFrontEnd"
	ColFeaturedProduct   = "featuredProduct"
	ColCategory          = "Category"
	ColBrand             = "Brand"
	ColSpecifications    = "specifications"
)

// CoerceBooleanStrictTrueString đưa giá trị cờ dạng chuỗi về bool.
// Chỉ chuỗi "true" đúng nguyên văn mới là true, mọi giá trị khác
// (kể cả "TRUE", "1", rỗng, thiếu cột) đều là false.
func CoerceBooleanStrictTrueString(s string) bool {
	return s == "true"
}

// referenceResolver là phần phân giải tham chiếu mà transformer cần đến.
type referenceResolver interface {
	Resolve(ctx context.Context, categoryName, brandName string) (primitive.ObjectID, primitive.ObjectID, error)
}

// RowTransformer biến một dòng import thô thành bản ghi sản phẩm hoàn chỉnh.
type RowTransformer struct {
	resolver referenceResolver
}

// NewRowTransformer tạo RowTransformer mới.
func NewRowTransformer(resolver referenceResolver) *RowTransformer {
	return &RowTransformer{resolver: resolver}
}

// TransformRow phân giải tham chiếu, chuẩn hóa specifications và ép kiểu cờ boolean.
// Các trường text copy nguyên văn kể cả chuỗi rỗng. Kết quả chỉ mang ObjectID
// đã phân giải, không giữ lại tên danh mục/thương hiệu gốc.
func (t *RowTransformer) TransformRow(ctx context.Context, raw map[string]string) (*models.Product, error) {
	categoryID, brandID, err := t.resolver.Resolve(ctx, raw[ColCategory], raw[ColBrand])
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeImportRow,
			fmt.Sprintf("không phân giải được tham chiếu: %s", err.Error()),
			common.StatusUnprocessable,
			err,
		)
	}

	var specsInput interface{}
	if specsText, ok := raw[ColSpecifications]; ok {
		specsInput = specsText
	}

	now := time.Now().UnixMilli()
	product := &models.Product{
		ProductName:       raw[ColProductName],
		Sku:               raw[ColSku],
		ShortDescription:  raw[ColShortDescription],
		LongDescription:   raw[ColLongDescription],
		ShippingNotes:     raw[ColShippingNotes],
		WarrantyInfo:      raw[ColWarrantyInfo],
		VisibleToFrontEnd: CoerceBooleanStrictTrueString(raw[ColVisibleToFrontEnd]),
		FeaturedProduct:   CoerceBooleanStrictTrueString(raw[ColFeaturedProduct]),
		CategoryID:        &categoryID,
		BrandID:           &brandID,
		Specifications:    NormalizeSpecsBestEffort(specsInput),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	return product, nil
}
