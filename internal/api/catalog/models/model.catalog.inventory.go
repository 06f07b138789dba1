// Package models - InventoryRecord thuộc domain catalog (inventory_records).
// Khóa upsert là bộ ba (productId, bin, location), không phải _id.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InventoryRecord lưu tồn kho của sản phẩm theo bin/location (inventory_records).
type InventoryRecord struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ProductID primitive.ObjectID `json:"productId" bson:"productId" index:"single:1;compound:inventory_product_bin_location_unique"`
	Bin       string             `json:"bin" bson:"bin" index:"compound:inventory_product_bin_location_unique"`
	Location  string             `json:"location" bson:"location" index:"compound:inventory_product_bin_location_unique"`

	Source string `json:"source,omitempty" bson:"source,omitempty"`
	OnHand int64  `json:"onHand" bson:"onHand"`
	OnHold int64  `json:"onHold" bson:"onHold"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
