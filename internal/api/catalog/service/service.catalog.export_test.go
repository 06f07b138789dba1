// Package catalogsvc - Test chiếu dữ liệu export và nhãn cột.
package catalogsvc

import (
	"testing"

	"meta_catalog/internal/api/catalog/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestExportColumnLabels_Override(t *testing.T) {
	labels := ExportColumnLabels{Overrides: map[string]string{"product_name": "Tên sản phẩm"}}
	assert.Equal(t, "Tên sản phẩm", labels.Label("product_name"), "nhãn có override phải dùng override")
	assert.Equal(t, "sku", labels.Label("sku"), "nhãn không override phải dùng mặc định")
}

func TestExportColumnLabels_MergedWith(t *testing.T) {
	base := ExportColumnLabels{Overrides: map[string]string{"sku": "Mã hàng", "msrp": "Giá niêm yết"}}
	merged := base.MergedWith(map[string]string{"sku": "SKU nội bộ"})
	assert.Equal(t, "SKU nội bộ", merged.Label("sku"), "override mới phải đè lên cấu hình cũ")
	assert.Equal(t, "Giá niêm yết", merged.Label("msrp"), "override cũ không bị mất")
	assert.Equal(t, "Mã hàng", base.Label("sku"), "MergedWith không được sửa bộ nhãn gốc")
}

func TestProjectProducts_KhoaNgoaiKhongPhanGiaiDuocLaNil(t *testing.T) {
	danglingID := primitive.NewObjectID()
	knownCategory := primitive.NewObjectID()
	products := []models.Product{
		{ProductName: "A", Sku: "S1", CategoryID: &knownCategory, BrandID: &danglingID},
		{ProductName: "B", Sku: "S2"},
	}
	categoryNames := map[primitive.ObjectID]string{knownCategory: "Phụ kiện"}

	rows := ProjectProducts(products, categoryNames, map[primitive.ObjectID]string{}, ExportColumnLabels{})

	assert.Len(t, rows, 2)
	assert.Equal(t, "Phụ kiện", rows[0]["category_name"], "khóa ngoại phân giải được phải thành tên")
	assert.Nil(t, rows[0]["brand_name"], "khóa ngoại dangling phải chiếu thành nil")
	assert.Nil(t, rows[1]["category_name"], "khóa ngoại absent phải chiếu thành nil")
}

func TestProjectProducts_ApDungNhanCot(t *testing.T) {
	products := []models.Product{{ProductName: "A", Sku: "S1"}}
	labels := ExportColumnLabels{Overrides: map[string]string{"product_name": "Tên"}}

	rows := ProjectProducts(products, nil, nil, labels)

	assert.Equal(t, "A", rows[0]["Tên"], "giá trị phải nằm dưới nhãn đã override")
	_, hasDefault := rows[0]["product_name"]
	assert.False(t, hasDefault, "nhãn mặc định không được xuất hiện khi đã override")
}

func TestProjectSpecifications_KhoaChuanLuonCoMat(t *testing.T) {
	products := []models.Product{
		{ProductName: "A", Sku: "S1", Specifications: map[string]string{"color": "red"}},
	}
	rows := ProjectSpecifications(products, ExportColumnLabels{})

	assert.Equal(t, "red", rows[0]["color"])
	assert.Equal(t, "", rows[0]["weight"], "khóa chuẩn thiếu giá trị phải là chuỗi rỗng")
	for _, key := range models.KnownSpecificationKeys {
		assert.Contains(t, rows[0], key, "mọi khóa chuẩn phải có trong dòng export")
	}
}

func TestProjectSpecifications_VongTronGiaTriQuaNormalize(t *testing.T) {
	specs := NormalizeSpecsBestEffort(`{"color":"red","weight":"2.5kg","material":"nhôm"}`)
	products := []models.Product{
		{ProductName: "A", Sku: "S1", Specifications: specs},
	}
	rows := ProjectSpecifications(products, ExportColumnLabels{})

	assert.Equal(t, "red", rows[0]["color"], "giá trị specs phải giữ nguyên qua normalize rồi export")
	assert.Equal(t, "2.5kg", rows[0]["weight"])
	assert.Equal(t, "nhôm", rows[0]["material"])
}

func TestProjectPricing_VaInventory_PhanGiaiTenSanPham(t *testing.T) {
	productID := primitive.NewObjectID()
	names := map[primitive.ObjectID]string{productID: "Bàn phím"}

	pricingRows := ProjectPricing([]models.PricingRecord{
		{ProductID: productID, Msrp: 100, StartDate: 1},
		{ProductID: primitive.NewObjectID(), Msrp: 50, StartDate: 2},
	}, names, ExportColumnLabels{})
	assert.Equal(t, "Bàn phím", pricingRows[0]["product_name"])
	assert.Nil(t, pricingRows[1]["product_name"], "bản ghi giá của sản phẩm đã xóa phải cho nil")

	invRows := ProjectInventories([]models.InventoryRecord{
		{ProductID: productID, Bin: "B1", Location: "HCM", OnHand: 5},
	}, names, ExportColumnLabels{})
	assert.Equal(t, "Bàn phím", invRows[0]["product_name"])
	assert.Equal(t, int64(5), invRows[0]["on_hand"])
}

func TestProjectAssets_KhongKemPayload(t *testing.T) {
	rows := ProjectAssets([]models.ProductAsset{
		{ProductID: primitive.NewObjectID(), ProductAssetId: 1, FileName: "anh.jpg", AssetKind: models.AssetKindImage, Payload: []byte{1, 2, 3}},
	}, nil, ExportColumnLabels{})

	assert.NotContains(t, rows[0], "payload", "payload nhị phân không được xuất")
	assert.Equal(t, "anh.jpg", rows[0]["file_name"])
}

func TestProjectCategoriesVaBrands(t *testing.T) {
	catRows := ProjectCategories([]models.Category{{CategoryName: "Phụ kiện", Description: "mô tả"}}, ExportColumnLabels{})
	assert.Equal(t, "Phụ kiện", catRows[0]["category_name"])

	brandRows := ProjectBrands([]models.Brand{{BrandName: "Keychron"}}, ExportColumnLabels{})
	assert.Equal(t, "Keychron", brandRows[0]["brand_name"])
}
