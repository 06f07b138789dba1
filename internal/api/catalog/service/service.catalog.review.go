package catalogsvc

import (
	"context"
	"fmt"
	"time"

	basesvc "meta_catalog/internal/api/base/service"
	catalogdto "meta_catalog/internal/api/catalog/dto"
	"meta_catalog/internal/api/catalog/models"
	"meta_catalog/internal/common"
	"meta_catalog/internal/global"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewService service cho collection reviews.
type ReviewService struct {
	*basesvc.BaseServiceMongoImpl[models.Review]
	products *ProductService
}

// NewReviewService tạo ReviewService mới.
func NewReviewService() (*ReviewService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Reviews)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Reviews, common.ErrNotFound)
	}
	products, err := NewProductService()
	if err != nil {
		return nil, err
	}
	return &ReviewService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Review](coll),
		products:             products,
	}, nil
}

// CreateForProduct tạo review cho một sản phẩm rồi gắn id review vào mảng
// reviews của sản phẩm. Hai bước không chạy trong transaction, bước gắn lỗi
// thì review vẫn tồn tại độc lập.
func (s *ReviewService) CreateForProduct(ctx context.Context, productID primitive.ObjectID, input *catalogdto.ReviewCreateInput) (*models.Review, error) {
	// Sản phẩm phải tồn tại trước khi nhận review
	if _, err := s.products.FindOneById(ctx, productID); err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	review := models.Review{
		ProductID: productID,
		User:      input.User,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	saved, err := s.InsertOne(ctx, review)
	if err != nil {
		return nil, err
	}

	if err := s.products.AttachReview(ctx, productID, saved.ID); err != nil {
		return nil, err
	}
	return &saved, nil
}
