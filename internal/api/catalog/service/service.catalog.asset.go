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

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssetService service cho collection product_assets.
type AssetService struct {
	*basesvc.BaseServiceMongoImpl[models.ProductAsset]
}

// NewAssetService tạo AssetService mới.
func NewAssetService() (*AssetService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ProductAssets)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.ProductAssets, common.ErrNotFound)
	}
	return &AssetService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ProductAsset](coll),
	}, nil
}

// SaveAsset lưu asset mới cho sản phẩm, tự gán productAssetId nối tiếp
// theo số asset hiện có của sản phẩm đó.
func (s *AssetService) SaveAsset(ctx context.Context, input *catalogdto.AssetCreateInput) (*models.ProductAsset, error) {
	productID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("productId không hợp lệ: %q", input.ProductID),
			common.StatusBadRequest,
			err,
		)
	}

	count, err := s.CountDocuments(ctx, bson.M{"productId": productID})
	if err != nil {
		return nil, err
	}

	kind := input.AssetKind
	if kind == "" {
		kind = models.AssetKindOther
	}

	now := time.Now().UnixMilli()
	asset := models.ProductAsset{
		ProductID:      productID,
		ProductAssetId: count + 1,
		FileName:       input.FileName,
		AssetKind:      kind,
		Extension:      input.Extension,
		Payload:        input.Payload,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	saved, err := s.InsertOne(ctx, asset)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
