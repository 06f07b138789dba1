// Package models - Category thuộc domain catalog (categories).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category lưu danh mục sản phẩm (categories). Được Product tham chiếu, không sở hữu.
type Category struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	CategoryName string `json:"categoryName" bson:"categoryName" index:"unique"`
	Description  string `json:"description,omitempty" bson:"description,omitempty"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
