// Package models - Product thuộc domain catalog (products).
// Sản phẩm tham chiếu Category/Brand theo ObjectID (weak reference, không cascade).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các key specification được nhận diện sẵn. Map specifications vẫn cho phép key tùy ý,
// danh sách này dùng cho cột export và tài liệu API.
var KnownSpecificationKeys = []string{
	"weight", "color", "dimensions", "capacity", "material",
	"origin", "size", "wattage", "voltage", "specialFeatures",
}

// Product lưu sản phẩm (products).
type Product struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Identity
	ProductName string `json:"productName" bson:"productName" index:"single:1;text"`
	Sku         string `json:"sku" bson:"sku" index:"unique"`

	// Mô tả
	ShortDescription string `json:"shortDescription,omitempty" bson:"shortDescription,omitempty"`
	LongDescription  string `json:"longDescription,omitempty" bson:"longDescription,omitempty"`
	ShippingNotes    string `json:"shippingNotes,omitempty" bson:"shippingNotes,omitempty"`
	WarrantyInfo     string `json:"warrantyInfo,omitempty" bson:"warrantyInfo,omitempty"`

	// Hiển thị
	VisibleToFrontEnd bool `json:"visibleToFrontEnd" bson:"visibleToFrontEnd"`
	FeaturedProduct   bool `json:"featuredProduct" bson:"featuredProduct"`

	// Tham chiếu — optional; pipeline import đảm bảo trỏ tới entity tồn tại tại thời điểm ghi
	CategoryID *primitive.ObjectID `json:"categoryId,omitempty" bson:"categoryId,omitempty" index:"single:1"`
	BrandID    *primitive.ObjectID `json:"brandId,omitempty" bson:"brandId,omitempty" index:"single:1"`

	// Specifications đã chuẩn hóa (key/value dạng string)
	Specifications map[string]string `json:"specifications,omitempty" bson:"specifications,omitempty"`

	// Danh sách review đã gắn (thứ tự thêm vào)
	Reviews []primitive.ObjectID `json:"reviews,omitempty" bson:"reviews,omitempty"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
