// Package models - PricingRecord thuộc domain catalog (pricing_records).
// Sổ giá theo thời gian: mỗi record có khoảng hiệu lực [startDate, endDate];
// endDate = 0 nghĩa là mở (chưa có ngày kết thúc). Upsert theo cửa sổ chồng lấn
// được thực hiện trong service, storage không có ràng buộc duy nhất.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PricingRecord lưu một bản ghi giá của sản phẩm (pricing_records).
type PricingRecord struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ProductID primitive.ObjectID `json:"productId" bson:"productId" index:"single:1;compound:pricing_product_start"`

	// Giá — msrp bắt buộc, các giá còn lại tùy chọn
	Msrp float64 `json:"msrp" bson:"msrp"`
	Map  float64 `json:"map,omitempty" bson:"map,omitempty"`
	Cost float64 `json:"cost,omitempty" bson:"cost,omitempty"`
	Sell float64 `json:"sell,omitempty" bson:"sell,omitempty"`
	Base float64 `json:"base,omitempty" bson:"base,omitempty"`

	// Khoảng hiệu lực — Unix ms; EndDate = 0 là mở
	StartDate int64 `json:"startDate" bson:"startDate" index:"compound:pricing_product_start,order:-1"`
	EndDate   int64 `json:"endDate,omitempty" bson:"endDate,omitempty"`

	CreatedBy string `json:"createdBy" bson:"createdBy"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
