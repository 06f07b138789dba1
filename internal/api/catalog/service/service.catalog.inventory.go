package catalogsvc

import (
	"context"
	"fmt"

	basesvc "meta_catalog/internal/api/base/service"
	catalogdto "meta_catalog/internal/api/catalog/dto"
	"meta_catalog/internal/api/catalog/models"
	"meta_catalog/internal/common"
	"meta_catalog/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InventoryService service cho collection inventory_records.
type InventoryService struct {
	*basesvc.BaseServiceMongoImpl[models.InventoryRecord]
}

// NewInventoryService tạo InventoryService mới.
func NewInventoryService() (*InventoryService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.InventoryRecords)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.InventoryRecords, common.ErrNotFound)
	}
	return &InventoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.InventoryRecord](coll),
	}, nil
}

// UpsertByBin ghi tồn kho theo khóa (productId, bin, location).
// Đã có bản ghi cùng khóa thì cập nhật số lượng, chưa có thì thêm mới.
func (s *InventoryService) UpsertByBin(ctx context.Context, input *catalogdto.InventoryUpsertByBinInput) (*models.InventoryRecord, error) {
	productID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("productId không hợp lệ: %q", input.ProductID),
			common.StatusBadRequest,
			err,
		)
	}

	filter := bson.M{
		"productId": productID,
		"bin":       input.Bin,
		"location":  input.Location,
	}
	record := models.InventoryRecord{
		ProductID: productID,
		Bin:       input.Bin,
		Location:  input.Location,
		Source:    input.Source,
		OnHand:    input.OnHand,
		OnHold:    input.OnHold,
	}
	result, err := s.Upsert(ctx, filter, record)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
