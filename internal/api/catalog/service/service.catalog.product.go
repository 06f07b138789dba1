// Package catalogsvc - Service sản phẩm (products).
package catalogsvc

import (
	"context"
	"fmt"

	basesvc "meta_catalog/internal/api/base/service"
	"meta_catalog/internal/api/catalog/models"
	"meta_catalog/internal/common"
	"meta_catalog/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductService service cho collection products.
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[models.Product]
}

// NewProductService tạo ProductService mới.
func NewProductService() (*ProductService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Products, common.ErrNotFound)
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](coll),
	}, nil
}

// FindByNameOrSku tìm sản phẩm theo productName hoặc sku (một trong hai, không kết hợp).
// Cả hai rỗng trả về toàn bộ danh sách sắp theo productName.
func (s *ProductService) FindByNameOrSku(ctx context.Context, productName, sku string) ([]models.Product, error) {
	filter := bson.M{}
	if productName != "" {
		filter["productName"] = productName
	} else if sku != "" {
		filter["sku"] = sku
	}
	return s.Find(ctx, filter, nil)
}

// AttachReview gắn review id vào mảng reviews của sản phẩm ($push, giữ thứ tự thêm vào).
func (s *ProductService) AttachReview(ctx context.Context, productID, reviewID primitive.ObjectID) error {
	update := &basesvc.UpdateData{
		Push: map[string]interface{}{"reviews": reviewID},
	}
	_, err := s.UpdateOne(ctx, bson.M{"_id": productID}, update, nil)
	return err
}
