package catalogsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	basesvc "meta_catalog/internal/api/base/service"
	catalogdto "meta_catalog/internal/api/catalog/dto"
	"meta_catalog/internal/api/catalog/models"
	"meta_catalog/internal/common"
	"meta_catalog/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// pricingStore là phần kho dữ liệu mà luồng upsert giá cần đến.
type pricingStore interface {
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (models.PricingRecord, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (models.PricingRecord, error)
	InsertOne(ctx context.Context, data models.PricingRecord) (models.PricingRecord, error)
}

// PricingService service cho collection pricing_records.
// Giữ bất biến: tại một thời điểm bất kỳ, mỗi sản phẩm chỉ có một bản ghi giá liên quan.
type PricingService struct {
	*basesvc.BaseServiceMongoImpl[models.PricingRecord]
	store pricingStore
}

// NewPricingService tạo PricingService mới.
func NewPricingService() (*PricingService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PricingRecords)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.PricingRecords, common.ErrNotFound)
	}
	base := basesvc.NewBaseServiceMongo[models.PricingRecord](coll)
	return &PricingService{
		BaseServiceMongoImpl: base,
		store:                base,
	}, nil
}

// EffectiveWindow tính cửa sổ so sánh [startDate, endDate-hoặc-now].
// EndDate = 0 nghĩa là cửa sổ mở, lấy now làm mốc cuối.
func EffectiveWindow(startDate, endDate, now int64) (int64, int64) {
	if endDate == 0 {
		return startDate, now
	}
	return startDate, endDate
}

// OverlapFilter dựng filter tìm bản ghi giá của sản phẩm có khoảng hiệu lực
// giao với cửa sổ truy vấn. Bản ghi có endDate mở (0 hoặc thiếu) coi như
// còn hiệu lực đến now, nên chỉ giao được với cửa sổ bắt đầu không muộn hơn now.
// Phải cho cùng kết quả với WindowsOverlap trên từng bản ghi.
func OverlapFilter(productID primitive.ObjectID, queryStart, queryEnd, now int64) bson.M {
	or := []bson.M{
		{"endDate": bson.M{"$gte": queryStart}},
	}
	if queryStart <= now {
		or = append(or,
			bson.M{"endDate": bson.M{"$exists": false}},
			bson.M{"endDate": 0},
		)
	}
	return bson.M{
		"productId": productID,
		"startDate": bson.M{"$lte": queryEnd},
		"$or":       or,
	}
}

// WindowsOverlap kiểm tra hai khoảng [aStart, aEnd] và [bStart, bEnd] có giao nhau.
// End = 0 coi là mở và thay bằng now.
func WindowsOverlap(aStart, aEnd, bStart, bEnd, now int64) bool {
	aStart, aEnd = EffectiveWindow(aStart, aEnd, now)
	bStart, bEnd = EffectiveWindow(bStart, bEnd, now)
	return aStart <= bEnd && aEnd >= bStart
}

// UpsertPrice ghi bản ghi giá theo cửa sổ hiệu lực: nếu đã có bản ghi giao
// với cửa sổ mới thì cập nhật tại chỗ, chưa có thì thêm mới.
// Khi nhiều bản ghi cùng giao, chọn bản ghi có startDate mới nhất.
func (s *PricingService) UpsertPrice(ctx context.Context, input *catalogdto.PricingUpsertWindowInput) (*models.PricingRecord, error) {
	if err := validatePricingInput(input); err != nil {
		return nil, err
	}

	productID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("productId không hợp lệ: %q", input.ProductID),
			common.StatusBadRequest,
			err,
		)
	}

	now := time.Now().UnixMilli()
	queryStart, queryEnd := EffectiveWindow(input.StartDate, input.EndDate, now)

	findOpts := options.FindOne().SetSort(bson.D{{Key: "startDate", Value: -1}})
	existing, err := s.store.FindOne(ctx, OverlapFilter(productID, queryStart, queryEnd, now), findOpts)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	// WindowsOverlap là chuẩn quyết định cuối cùng, filter chỉ là bản dịch sang Mongo.
	if err == nil && WindowsOverlap(existing.StartDate, existing.EndDate, input.StartDate, input.EndDate, now) {
		update := &basesvc.UpdateData{
			Set: map[string]interface{}{
				"msrp":      input.Msrp,
				"map":       input.Map,
				"cost":      input.Cost,
				"sell":      input.Sell,
				"base":      input.Base,
				"startDate": input.StartDate,
				"endDate":   input.EndDate,
				"createdBy": input.CreatedBy,
				"updatedAt": now,
			},
		}
		updated, err := s.store.UpdateOne(ctx, bson.M{"_id": existing.ID}, update, nil)
		if err != nil {
			return nil, err
		}
		return &updated, nil
	}

	record := models.PricingRecord{
		ProductID: productID,
		Msrp:      input.Msrp,
		Map:       input.Map,
		Cost:      input.Cost,
		Sell:      input.Sell,
		Base:      input.Base,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		CreatedBy: input.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	inserted, err := s.store.InsertOne(ctx, record)
	if err != nil {
		return nil, err
	}
	return &inserted, nil
}

// validatePricingInput kiểm tra các trường bắt buộc của yêu cầu upsert giá.
func validatePricingInput(input *catalogdto.PricingUpsertWindowInput) error {
	var missing []string
	if input.ProductID == "" {
		missing = append(missing, "productId")
	}
	if input.Msrp == 0 {
		missing = append(missing, "msrp")
	}
	if input.StartDate == 0 {
		missing = append(missing, "startDate")
	}
	if input.CreatedBy == "" {
		missing = append(missing, "createdBy")
	}
	if len(missing) > 0 {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Thiếu trường bắt buộc: %v", missing),
			common.StatusBadRequest,
			missing,
		)
	}
	return nil
}
