// Package catalogsvc - Test đọc CSV và kiểm tra chế độ import.
package catalogsvc

import (
	"context"
	"errors"
	"strings"
	"testing"

	"meta_catalog/internal/api/catalog/models"
	"meta_catalog/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeNameResolver phân giải tên theo hai map cố định, tên thiếu là lỗi tham chiếu.
type fakeNameResolver struct {
	categories map[string]primitive.ObjectID
	brands     map[string]primitive.ObjectID
}

func (f *fakeNameResolver) Resolve(ctx context.Context, categoryName, brandName string) (primitive.ObjectID, primitive.ObjectID, error) {
	categoryID, okCategory := f.categories[categoryName]
	brandID, okBrand := f.brands[brandName]
	if !okCategory || !okBrand {
		return primitive.NilObjectID, primitive.NilObjectID, common.ErrReferenceNotFound
	}
	return categoryID, brandID, nil
}

// fakeProductStore ghi lại các lần xóa và các lô insert thay cho Mongo.
type fakeProductStore struct {
	deleteCalls int
	batches     [][]models.Product
	insertErr   error
}

func (f *fakeProductStore) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	f.deleteCalls++
	return 0, nil
}

func (f *fakeProductStore) InsertMany(ctx context.Context, data []models.Product) ([]models.Product, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.batches = append(f.batches, data)
	return data, nil
}

func newTestImportService(store *fakeProductStore, resolver *fakeNameResolver) *ImportService {
	return &ImportService{
		products:    store,
		transformer: NewRowTransformer(resolver),
	}
}

func TestParseImportRows_HeaderVaDong(t *testing.T) {
	csv := "productName,sku,Category,Brand\nBàn phím cơ,KB-001,Phụ kiện,Keychron\nChuột,MS-002,Phụ kiện,Logitech\n"
	rows, err := parseImportRows(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("CSV hợp lệ không được báo lỗi: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("phải đọc được 2 dòng, nhận được %d", len(rows))
	}
	if rows[0][ColProductName] != "Bàn phím cơ" || rows[0][ColSku] != "KB-001" {
		t.Errorf("dòng đầu sai: %v", rows[0])
	}
	if rows[1][ColBrand] != "Logitech" {
		t.Errorf("dòng hai sai: %v", rows[1])
	}
}

func TestParseImportRows_QuotedFieldChuaDauPhay(t *testing.T) {
	csv := "productName,sku\n\"Bàn, ghế combo\",CB-01\n"
	rows, err := parseImportRows(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("quoted field hợp lệ không được báo lỗi: %v", err)
	}
	if rows[0][ColProductName] != "Bàn, ghế combo" {
		t.Errorf("dấu phẩy trong quoted field phải được giữ, nhận được %q", rows[0][ColProductName])
	}
}

func TestParseImportRows_DongTrangBiBoQua(t *testing.T) {
	csv := "productName,sku\nA,S1\n,\nB,S2\n"
	rows, err := parseImportRows(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("không được báo lỗi: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("dòng toàn ô rỗng phải bị bỏ qua, nhận được %d dòng", len(rows))
	}
}

func TestParseImportRows_QuotingHongLaLoiChet(t *testing.T) {
	csv := "productName,sku\n\"hỏng,S1\nB,S2\n"
	_, err := parseImportRows(strings.NewReader(csv))
	if err == nil {
		t.Fatal("quoting hỏng phải là lỗi chết của cả lần import")
	}
	var customErr *common.Error
	if !errors.As(err, &customErr) {
		t.Fatal("lỗi parse phải là *common.Error")
	}
	if customErr.Code.Code != common.ErrCodeImportParse.Code {
		t.Errorf("mã lỗi phải là %s, nhận được %s", common.ErrCodeImportParse.Code, customErr.Code.Code)
	}
}

func TestParseImportRows_FileRong(t *testing.T) {
	_, err := parseImportRows(strings.NewReader(""))
	if !errors.Is(err, common.ErrImportEmptyFile) {
		t.Errorf("file rỗng phải trả về ErrImportEmptyFile, nhận được %v", err)
	}
}

func TestParseImportRows_CotThuaSoVoiHeaderBiCat(t *testing.T) {
	csv := "productName,sku\nA,S1,thừa\n"
	rows, err := parseImportRows(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("không được báo lỗi: %v", err)
	}
	if len(rows[0]) != 2 {
		t.Errorf("chỉ giữ cột có trong header, nhận được %v", rows[0])
	}
}

func TestImportProducts_ModeKhongHopLe(t *testing.T) {
	// Mode được kiểm tra trước khi chạm vào storage
	s := &ImportService{}
	_, err := s.ImportProducts(context.Background(), "upsert", strings.NewReader("productName\nA\n"))
	if err == nil {
		t.Fatal("mode lạ phải bị từ chối")
	}
	var customErr *common.Error
	if !errors.As(err, &customErr) {
		t.Fatal("lỗi phải là *common.Error")
	}
	if customErr.Code.Code != common.ErrCodeImportMode.Code {
		t.Errorf("mã lỗi phải là %s, nhận được %s", common.ErrCodeImportMode.Code, customErr.Code.Code)
	}
}

func TestImportProducts_DongHongKhongLamHongCaLo(t *testing.T) {
	phukien := primitive.NewObjectID()
	keychron := primitive.NewObjectID()
	resolver := &fakeNameResolver{
		categories: map[string]primitive.ObjectID{"Phụ kiện": phukien},
		brands:     map[string]primitive.ObjectID{"Keychron": keychron},
	}
	store := &fakeProductStore{}
	svc := newTestImportService(store, resolver)

	csv := "productName,sku,Category,Brand\n" +
		"Bàn phím cơ,KB-001,Phụ kiện,Keychron\n" +
		"Ghế gaming,CH-002,Nội thất,Keychron\n" +
		"Kê tay,PR-003,Phụ kiện,Keychron\n"
	report, err := svc.ImportProducts(context.Background(), ImportModeAdd, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("dòng hỏng không được làm hỏng cả lô: %v", err)
	}

	if report.RowsSeen != 3 || report.RowsRejected != 1 || report.RowsCommitted != 2 {
		t.Errorf("báo cáo sai: seen=%d committed=%d rejected=%d", report.RowsSeen, report.RowsCommitted, report.RowsRejected)
	}
	if report.RowsCommitted != report.RowsSeen-report.RowsRejected {
		t.Error("số dòng ghi phải bằng số dòng đọc trừ số dòng loại")
	}
	if len(report.Rejections) != 1 || report.Rejections[0].Identifier != "CH-002" {
		t.Errorf("dòng bị loại phải được nhận diện theo sku: %+v", report.Rejections)
	}
	if store.deleteCalls != 0 {
		t.Error("mode add không được xóa dữ liệu cũ")
	}
	if len(store.batches) != 1 || len(store.batches[0]) != 2 {
		t.Fatalf("các dòng hợp lệ phải được ghi trong một lô duy nhất: %v", store.batches)
	}
	if store.batches[0][0].Sku != "KB-001" || store.batches[0][1].Sku != "PR-003" {
		t.Errorf("lô ghi sai dòng: %+v", store.batches[0])
	}
}

func TestImportProducts_ReplaceXoaTruocKhiGhi(t *testing.T) {
	resolver := &fakeNameResolver{
		categories: map[string]primitive.ObjectID{"Phụ kiện": primitive.NewObjectID()},
		brands:     map[string]primitive.ObjectID{"Keychron": primitive.NewObjectID()},
	}
	store := &fakeProductStore{}
	svc := newTestImportService(store, resolver)

	csv := "productName,sku,Category,Brand\nBàn phím cơ,KB-001,Phụ kiện,Keychron\n"
	report, err := svc.ImportProducts(context.Background(), ImportModeReplace, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("import replace hợp lệ không được báo lỗi: %v", err)
	}
	if store.deleteCalls != 1 {
		t.Errorf("mode replace phải xóa toàn bộ trước khi ghi, số lần xóa = %d", store.deleteCalls)
	}
	if report.RowsCommitted != 1 {
		t.Errorf("dòng hợp lệ phải được ghi, committed = %d", report.RowsCommitted)
	}
}

func TestImportProducts_ReplaceMoiDongDeuHongDeLaiCollectionRong(t *testing.T) {
	// Replace không chạy trong transaction: xóa xong mà mọi dòng đều bị loại
	// thì collection ở trạng thái rỗng, báo cáo phải phản ánh đúng điều đó.
	resolver := &fakeNameResolver{}
	store := &fakeProductStore{}
	svc := newTestImportService(store, resolver)

	csv := "productName,sku,Category,Brand\nGhế gaming,CH-002,Nội thất,NoName\n"
	report, err := svc.ImportProducts(context.Background(), ImportModeReplace, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("mọi dòng bị loại vẫn là một lần import thành công: %v", err)
	}
	if store.deleteCalls != 1 {
		t.Error("replace phải xóa dữ liệu cũ kể cả khi không có dòng nào ghi được")
	}
	if len(store.batches) != 0 {
		t.Errorf("lô rỗng không được ghi: %v", store.batches)
	}
	if report.RowsCommitted != 0 || report.RowsRejected != 1 {
		t.Errorf("báo cáo sai: committed=%d rejected=%d", report.RowsCommitted, report.RowsRejected)
	}
}

func TestImportProducts_LoiGhiLoLaLoiChet(t *testing.T) {
	resolver := &fakeNameResolver{
		categories: map[string]primitive.ObjectID{"Phụ kiện": primitive.NewObjectID()},
		brands:     map[string]primitive.ObjectID{"Keychron": primitive.NewObjectID()},
	}
	insertErr := errors.New("write concern failed")
	store := &fakeProductStore{insertErr: insertErr}
	svc := newTestImportService(store, resolver)

	csv := "productName,sku,Category,Brand\nBàn phím cơ,KB-001,Phụ kiện,Keychron\n"
	_, err := svc.ImportProducts(context.Background(), ImportModeReplace, strings.NewReader(csv))
	if !errors.Is(err, insertErr) {
		t.Fatalf("lỗi ghi lô phải được trả về nguyên vẹn, nhận được %v", err)
	}
	if store.deleteCalls != 1 {
		t.Error("lỗi ghi lô xảy ra sau bước xóa của replace")
	}
}

func TestImportProducts_XuatLaiGiuNguyenGiaTriDaNhap(t *testing.T) {
	phukien := primitive.NewObjectID()
	keychron := primitive.NewObjectID()
	resolver := &fakeNameResolver{
		categories: map[string]primitive.ObjectID{"Phụ kiện": phukien},
		brands:     map[string]primitive.ObjectID{"Keychron": keychron},
	}
	store := &fakeProductStore{}
	svc := newTestImportService(store, resolver)

	csv := "productName,sku,shortDescription,visibleToFrontEnd,featuredProduct,Category,Brand,specifications\n" +
		`Bàn phím cơ,KB-001,Phím cơ hotswap,true,TRUE,Phụ kiện,Keychron,"{""color"":""đen"",""weight"":""0.9kg""}"` + "\n"
	_, err := svc.ImportProducts(context.Background(), ImportModeAdd, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("import hợp lệ không được báo lỗi: %v", err)
	}
	if len(store.batches) != 1 || len(store.batches[0]) != 1 {
		t.Fatalf("phải ghi đúng một dòng: %v", store.batches)
	}

	categoryNames := map[primitive.ObjectID]string{phukien: "Phụ kiện"}
	brandNames := map[primitive.ObjectID]string{keychron: "Keychron"}
	rows := ProjectProducts(store.batches[0], categoryNames, brandNames, ExportColumnLabels{})
	specRows := ProjectSpecifications(store.batches[0], ExportColumnLabels{})

	if rows[0]["product_name"] != "Bàn phím cơ" || rows[0]["sku"] != "KB-001" {
		t.Errorf("định danh phải giữ nguyên qua vòng nhập-xuất: %v", rows[0])
	}
	if rows[0]["short_description"] != "Phím cơ hotswap" {
		t.Errorf("trường text phải giữ nguyên văn: %v", rows[0]["short_description"])
	}
	if rows[0]["category_name"] != "Phụ kiện" || rows[0]["brand_name"] != "Keychron" {
		t.Errorf("tên tham chiếu phải được phân giải ngược khi xuất: %v", rows[0])
	}
	if rows[0]["visible_to_front_end"] != true {
		t.Error(`"true" nguyên văn phải thành true`)
	}
	if rows[0]["featured_product"] != false {
		t.Error(`"TRUE" không đúng nguyên văn phải thành false`)
	}
	if specRows[0]["color"] != "đen" || specRows[0]["weight"] != "0.9kg" {
		t.Errorf("specifications phải giữ nguyên giá trị qua vòng nhập-xuất: %v", specRows[0])
	}
}

func TestRowIdentifier_UuTienSku(t *testing.T) {
	id := rowIdentifier(map[string]string{ColSku: "SKU-1", ColProductName: "Tên"})
	if id != "SKU-1" {
		t.Errorf("sku phải được ưu tiên làm định danh, nhận được %q", id)
	}
	id = rowIdentifier(map[string]string{ColProductName: "Tên"})
	if id != "Tên" {
		t.Errorf("thiếu sku thì lấy productName, nhận được %q", id)
	}
}
