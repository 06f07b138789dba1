// Package models - ProductAsset thuộc domain catalog (product_assets).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại asset hợp lệ.
const (
	AssetKindImage    = "Image"
	AssetKindVideo    = "Video"
	AssetKindDocument = "Document"
	AssetKindOther    = "Other"
)

// ProductAsset lưu tài nguyên media của sản phẩm (product_assets).
// ProductAssetId là số thứ tự theo từng sản phẩm, gán khi lưu (count hiện có + 1).
type ProductAsset struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ProductID      primitive.ObjectID `json:"productId" bson:"productId" index:"single:1;compound:asset_product_seq"`
	ProductAssetId int64              `json:"productAssetId" bson:"productAssetId" index:"compound:asset_product_seq"`

	FileName  string `json:"fileName" bson:"fileName"`
	AssetKind string `json:"assetKind" bson:"assetKind"` // Image | Video | Document | Other
	Extension string `json:"extension,omitempty" bson:"extension,omitempty"`
	Payload   []byte `json:"payload,omitempty" bson:"payload,omitempty"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
