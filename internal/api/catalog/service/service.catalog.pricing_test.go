// Package catalogsvc - Test logic cửa sổ hiệu lực của bảng giá.
package catalogsvc

import (
	"context"
	"errors"
	"testing"
	"time"

	basesvc "meta_catalog/internal/api/base/service"
	catalogdto "meta_catalog/internal/api/catalog/dto"
	"meta_catalog/internal/api/catalog/models"
	"meta_catalog/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ms(value string) int64 {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t.UnixMilli()
}

func TestEffectiveWindow_EndDateMo(t *testing.T) {
	now := ms("2025-06-01")
	start, end := EffectiveWindow(ms("2025-01-01"), 0, now)
	if start != ms("2025-01-01") {
		t.Errorf("start sai: %d", start)
	}
	if end != now {
		t.Errorf("endDate = 0 phải lấy now làm mốc cuối, nhận được %d", end)
	}
}

func TestEffectiveWindow_EndDateDong(t *testing.T) {
	now := ms("2025-06-01")
	_, end := EffectiveWindow(ms("2024-01-01"), ms("2024-06-30"), now)
	if end != ms("2024-06-30") {
		t.Errorf("endDate đóng phải giữ nguyên, nhận được %d", end)
	}
}

func TestWindowsOverlap_GiaoNhau(t *testing.T) {
	now := ms("2025-06-01")
	// Bản ghi [2024-01-01, 2024-06-30] và cửa sổ mới [2024-03-01, 2024-12-31]
	if !WindowsOverlap(ms("2024-01-01"), ms("2024-06-30"), ms("2024-03-01"), ms("2024-12-31"), now) {
		t.Error("hai khoảng giao nhau phải được phát hiện là overlap")
	}
}

func TestWindowsOverlap_KhongGiao(t *testing.T) {
	now := ms("2025-06-01")
	// Bản ghi [2024-01-01, 2024-06-30] và cửa sổ mới [2025-01-01, mở]
	if WindowsOverlap(ms("2024-01-01"), ms("2024-06-30"), ms("2025-01-01"), 0, now) {
		t.Error("khoảng [2025-01-01, mở] không giao với [2024-01-01, 2024-06-30]")
	}
}

func TestWindowsOverlap_BanGhiMoGiaoVoiCuaSoMoi(t *testing.T) {
	now := ms("2025-06-01")
	// Bản ghi mở từ 2024-01-01 coi như còn hiệu lực đến now
	if !WindowsOverlap(ms("2024-01-01"), 0, ms("2025-03-01"), ms("2025-12-31"), now) {
		t.Error("bản ghi mở phải giao với cửa sổ bắt đầu trước now")
	}
}

func TestOverlapFilter_CauTrucFilter(t *testing.T) {
	productID := primitive.NewObjectID()
	queryStart := ms("2024-03-01")
	queryEnd := ms("2024-12-31")
	now := ms("2025-06-01")

	filter := OverlapFilter(productID, queryStart, queryEnd, now)

	if filter["productId"] != productID {
		t.Error("filter phải khớp theo productId")
	}
	startCond, ok := filter["startDate"].(bson.M)
	if !ok || startCond["$lte"] != queryEnd {
		t.Errorf("startDate phải có điều kiện $lte queryEnd, nhận được %v", filter["startDate"])
	}
	orConds, ok := filter["$or"].([]bson.M)
	if !ok || len(orConds) != 3 {
		t.Fatalf("$or phải có 3 nhánh (endDate >= queryStart, thiếu, = 0), nhận được %v", filter["$or"])
	}
	endCond, ok := orConds[0]["endDate"].(bson.M)
	if !ok || endCond["$gte"] != queryStart {
		t.Errorf("nhánh đầu phải là endDate $gte queryStart, nhận được %v", orConds[0])
	}
}

func TestOverlapFilter_CuaSoTuongLaiKhongKhopBanGhiMo(t *testing.T) {
	// Bản ghi mở chỉ hiệu lực đến now, cửa sổ bắt đầu sau now không được khớp nó.
	now := ms("2025-06-01")
	filter := OverlapFilter(primitive.NewObjectID(), ms("2026-01-01"), ms("2026-06-30"), now)

	orConds, ok := filter["$or"].([]bson.M)
	if !ok || len(orConds) != 1 {
		t.Fatalf("cửa sổ bắt đầu sau now chỉ được giữ nhánh endDate $gte queryStart, nhận được %v", filter["$or"])
	}
	endCond, ok := orConds[0]["endDate"].(bson.M)
	if !ok || endCond["$gte"] != ms("2026-01-01") {
		t.Errorf("nhánh còn lại phải là endDate $gte queryStart, nhận được %v", orConds[0])
	}
}

// fakePricingStore thay kho Mongo trong test luồng upsert giá.
type fakePricingStore struct {
	found       models.PricingRecord
	findErr     error
	updateCalls int
	inserted    *models.PricingRecord
}

func (f *fakePricingStore) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (models.PricingRecord, error) {
	return f.found, f.findErr
}

func (f *fakePricingStore) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (models.PricingRecord, error) {
	f.updateCalls++
	updated := f.found
	if data, ok := update.(*basesvc.UpdateData); ok {
		if msrp, ok := data.Set["msrp"].(float64); ok {
			updated.Msrp = msrp
		}
	}
	return updated, nil
}

func (f *fakePricingStore) InsertOne(ctx context.Context, data models.PricingRecord) (models.PricingRecord, error) {
	data.ID = primitive.NewObjectID()
	f.inserted = &data
	return data, nil
}

func upsertInput(productID primitive.ObjectID, startDate, endDate int64) *catalogdto.PricingUpsertWindowInput {
	return &catalogdto.PricingUpsertWindowInput{
		ProductID: productID.Hex(),
		Msrp:      129.99,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedBy: "tester",
	}
}

func TestUpsertPrice_CuaSoGiaoCapNhatTaiCho(t *testing.T) {
	productID := primitive.NewObjectID()
	store := &fakePricingStore{
		found: models.PricingRecord{
			ID:        primitive.NewObjectID(),
			ProductID: productID,
			Msrp:      99.99,
			StartDate: ms("2024-01-01"),
			EndDate:   ms("2024-06-30"),
		},
	}
	svc := &PricingService{store: store}

	record, err := svc.UpsertPrice(context.Background(), upsertInput(productID, ms("2024-03-01"), ms("2024-12-31")))
	if err != nil {
		t.Fatalf("upsert cửa sổ giao không được báo lỗi: %v", err)
	}
	if store.updateCalls != 1 {
		t.Errorf("cửa sổ giao phải cập nhật tại chỗ, số lần update = %d", store.updateCalls)
	}
	if store.inserted != nil {
		t.Error("cửa sổ giao không được thêm bản ghi mới")
	}
	if record.Msrp != 129.99 {
		t.Errorf("bản ghi trả về phải mang giá mới, nhận được %v", record.Msrp)
	}
}

func TestUpsertPrice_KhongCoBanGhiGiaoThemMoi(t *testing.T) {
	productID := primitive.NewObjectID()
	store := &fakePricingStore{findErr: common.ErrNotFound}
	svc := &PricingService{store: store}

	record, err := svc.UpsertPrice(context.Background(), upsertInput(productID, ms("2025-01-01"), 0))
	if err != nil {
		t.Fatalf("upsert khi chưa có bản ghi không được báo lỗi: %v", err)
	}
	if store.updateCalls != 0 {
		t.Error("không có bản ghi giao thì không được update")
	}
	if store.inserted == nil {
		t.Fatal("không có bản ghi giao phải thêm bản ghi mới")
	}
	if store.inserted.ProductID != productID || store.inserted.StartDate != ms("2025-01-01") {
		t.Errorf("bản ghi thêm mới sai nội dung: %+v", store.inserted)
	}
	if record.ID.IsZero() {
		t.Error("bản ghi trả về phải có định danh")
	}
}

func TestUpsertPrice_CuaSoTuongLaiKhongDeLenBanGhiMo(t *testing.T) {
	// Bản ghi mở hiệu lực đến hiện tại; cửa sổ bắt đầu sau hiện tại là giá
	// đặt lịch trước, phải thành bản ghi mới chứ không đè lên giá đang chạy.
	// Store cố tình trả về bản ghi mở để chốt chặn WindowsOverlap được kiểm tra.
	productID := primitive.NewObjectID()
	now := time.Now().UnixMilli()
	day := int64(24 * time.Hour / time.Millisecond)
	store := &fakePricingStore{
		found: models.PricingRecord{
			ID:        primitive.NewObjectID(),
			ProductID: productID,
			Msrp:      99.99,
			StartDate: now - 100*day,
			EndDate:   0,
		},
	}
	svc := &PricingService{store: store}

	_, err := svc.UpsertPrice(context.Background(), upsertInput(productID, now+30*day, now+60*day))
	if err != nil {
		t.Fatalf("upsert giá đặt lịch trước không được báo lỗi: %v", err)
	}
	if store.updateCalls != 0 {
		t.Error("giá đặt lịch trước không được đè lên bản ghi mở đang chạy")
	}
	if store.inserted == nil {
		t.Fatal("giá đặt lịch trước phải thành bản ghi mới")
	}
	if store.inserted.StartDate != now+30*day {
		t.Errorf("bản ghi mới phải giữ cửa sổ tương lai, nhận được %d", store.inserted.StartDate)
	}
}

func TestValidatePricingInput_ThieuTruongBatBuoc(t *testing.T) {
	err := validatePricingInput(&catalogdto.PricingUpsertWindowInput{})
	if err == nil {
		t.Fatal("input rỗng phải bị từ chối")
	}
	var customErr *common.Error
	if !errors.As(err, &customErr) {
		t.Fatal("lỗi phải là *common.Error")
	}
	if customErr.StatusCode != common.StatusBadRequest {
		t.Errorf("status phải là %d, nhận được %d", common.StatusBadRequest, customErr.StatusCode)
	}
}

func TestValidatePricingInput_DayDuTruong(t *testing.T) {
	err := validatePricingInput(&catalogdto.PricingUpsertWindowInput{
		ProductID: primitive.NewObjectID().Hex(),
		Msrp:      99.99,
		StartDate: ms("2025-01-01"),
		CreatedBy: "tester",
	})
	if err != nil {
		t.Errorf("input đầy đủ không được báo lỗi: %v", err)
	}
}
