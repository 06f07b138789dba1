// Package models - Brand thuộc domain catalog (brands).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brand lưu thương hiệu (brands). Được Product tham chiếu, không sở hữu.
type Brand struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	BrandName   string `json:"brandName" bson:"brandName" index:"unique"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
