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

// CategoryService service cho collection categories.
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[models.Category]
}

// NewCategoryService tạo CategoryService mới.
func NewCategoryService() (*CategoryService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Categories, common.ErrNotFound)
	}
	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Category](coll),
	}, nil
}

// FindByName tìm category theo tên chính xác (phân biệt hoa thường).
func (s *CategoryService) FindByName(ctx context.Context, name string) (models.Category, error) {
	return s.FindOne(ctx, bson.M{"categoryName": name}, nil)
}
