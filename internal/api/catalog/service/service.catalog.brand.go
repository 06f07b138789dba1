package catalogsvc

import (
	"context"
	"fmt"

	basesvc "meta_catalog/internal/api/base/service"
	"meta_catalog/internal/api/catalog/models"
	"meta_catalog/internal/common"
	"meta_catalog/internal/global"

	"go.mongodb.org/mongo-driver/bson"
)

// BrandService service cho collection brands.
type BrandService struct {
	*basesvc.BaseServiceMongoImpl[models.Brand]
}

// NewBrandService tạo BrandService mới.
func NewBrandService() (*BrandService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Brands)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Brands, common.ErrNotFound)
	}
	return &BrandService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Brand](coll),
	}, nil
}

// FindByName tìm brand theo tên chính xác (phân biệt hoa thường).
func (s *BrandService) FindByName(ctx context.Context, name string) (models.Brand, error) {
	return s.FindOne(ctx, bson.M{"brandName": name}, nil)
}
