// Package models - Review thuộc domain catalog (reviews).
// Review trỏ về Product bằng weak reference; Product giữ danh sách id review đã gắn.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review lưu đánh giá sản phẩm (reviews).
type Review struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ProductID primitive.ObjectID `json:"productId" bson:"productId" index:"single:1"`

	User    string `json:"user,omitempty" bson:"user,omitempty"`
	Rating  int64  `json:"rating,omitempty" bson:"rating,omitempty"`
	Comment string `json:"comment,omitempty" bson:"comment,omitempty"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
