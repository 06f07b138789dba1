package catalogsvc

import (
	"context"

	"meta_catalog/internal/api/catalog/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExportColumnLabels cấu hình nhãn cột cho dữ liệu xuất ra.
// Overrides ghi đè theo nhãn mặc định, không có thì dùng nhãn mặc định.
// Cấu hình truyền vào lúc khởi tạo service, không đọc từ biến toàn cục.
type ExportColumnLabels struct {
	Overrides map[string]string
}

// Label trả về nhãn cột sau khi áp dụng override.
func (c ExportColumnLabels) Label(def string) string {
	if c.Overrides != nil {
		if v, ok := c.Overrides[def]; ok && v != "" {
			return v
		}
	}
	return def
}

// MergedWith trả về bộ nhãn mới với overrides đè lên cấu hình hiện tại.
func (c ExportColumnLabels) MergedWith(overrides map[string]string) ExportColumnLabels {
	if len(overrides) == 0 {
		return c
	}
	merged := make(map[string]string, len(c.Overrides)+len(overrides))
	for k, v := range c.Overrides {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return ExportColumnLabels{Overrides: merged}
}

// ExportRow một bản ghi phẳng trong kết quả xuất.
type ExportRow = map[string]interface{}

// ExportService xuất toàn bộ catalog thành các nhóm bản ghi phẳng, khóa ngoại
// được thay bằng tên hiển thị. Chỉ đọc, không ghi.
type ExportService struct {
	products   *ProductService
	categories *CategoryService
	brands     *BrandService
	pricing    *PricingService
	inventory  *InventoryService
	assets     *AssetService
	reviews    *ReviewService
	labels     ExportColumnLabels
}

// NewExportService tạo ExportService với cấu hình nhãn cột.
func NewExportService(labels ExportColumnLabels) (*ExportService, error) {
	products, err := NewProductService()
	if err != nil {
		return nil, err
	}
	categories, err := NewCategoryService()
	if err != nil {
		return nil, err
	}
	brands, err := NewBrandService()
	if err != nil {
		return nil, err
	}
	pricing, err := NewPricingService()
	if err != nil {
		return nil, err
	}
	inventory, err := NewInventoryService()
	if err != nil {
		return nil, err
	}
	assets, err := NewAssetService()
	if err != nil {
		return nil, err
	}
	reviews, err := NewReviewService()
	if err != nil {
		return nil, err
	}
	return &ExportService{
		products:   products,
		categories: categories,
		brands:     brands,
		pricing:    pricing,
		inventory:  inventory,
		assets:     assets,
		reviews:    reviews,
		labels:     labels,
	}, nil
}

// ExportAll xuất toàn bộ catalog với nhãn cột cấu hình lúc khởi tạo.
func (s *ExportService) ExportAll(ctx context.Context) (map[string][]ExportRow, error) {
	return s.ExportAllWith(ctx, s.labels)
}

// ExportAllWithOverrides xuất với override nhãn đè lên cấu hình lúc khởi tạo.
func (s *ExportService) ExportAllWithOverrides(ctx context.Context, overrides map[string]string) (map[string][]ExportRow, error) {
	return s.ExportAllWith(ctx, s.labels.MergedWith(overrides))
}

// ExportAllWith đọc toàn bộ các collection rồi chiếu thành 8 nhóm bản ghi phẳng
// theo bộ nhãn truyền vào. Truy vấn con nào lỗi thì cả export lỗi. Khóa ngoại
// không phân giải được chiếu thành nil thay vì làm hỏng export.
func (s *ExportService) ExportAllWith(ctx context.Context, labels ExportColumnLabels) (map[string][]ExportRow, error) {
	categories, err := s.categories.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}
	brands, err := s.brands.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}
	products, err := s.products.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}
	pricingRecords, err := s.pricing.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}
	inventories, err := s.inventory.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}
	assets, err := s.assets.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}

	categoryNames := make(map[primitive.ObjectID]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.CategoryName
	}
	brandNames := make(map[primitive.ObjectID]string, len(brands))
	for _, b := range brands {
		brandNames[b.ID] = b.BrandName
	}
	productNames := make(map[primitive.ObjectID]string, len(products))
	for _, p := range products {
		productNames[p.ID] = p.ProductName
	}

	return map[string][]ExportRow{
		"categories":            ProjectCategories(categories, labels),
		"brands":                ProjectBrands(brands, labels),
		"products":              ProjectProducts(products, categoryNames, brandNames, labels),
		"productSpecifications": ProjectSpecifications(products, labels),
		"productReviews":        ProjectReviews(reviews, productNames, labels),
		"productAssets":         ProjectAssets(assets, productNames, labels),
		"productInventories":    ProjectInventories(inventories, productNames, labels),
		"productPricing":        ProjectPricing(pricingRecords, productNames, labels),
	}, nil
}

// lookupName phân giải id sang tên hiển thị, không có trả về nil.
func lookupName(names map[primitive.ObjectID]string, id primitive.ObjectID) interface{} {
	if name, ok := names[id]; ok {
		return name
	}
	return nil
}

// lookupNamePtr như lookupName nhưng cho khóa ngoại optional.
func lookupNamePtr(names map[primitive.ObjectID]string, id *primitive.ObjectID) interface{} {
	if id == nil {
		return nil
	}
	return lookupName(names, *id)
}

// ProjectCategories chiếu danh sách category thành bản ghi phẳng.
func ProjectCategories(categories []models.Category, labels ExportColumnLabels) []ExportRow {
	rows := make([]ExportRow, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, ExportRow{
			labels.Label("category_name"): c.CategoryName,
			labels.Label("description"):   c.Description,
		})
	}
	return rows
}

// ProjectBrands chiếu danh sách brand thành bản ghi phẳng.
func ProjectBrands(brands []models.Brand, labels ExportColumnLabels) []ExportRow {
	rows := make([]ExportRow, 0, len(brands))
	for _, b := range brands {
		rows = append(rows, ExportRow{
			labels.Label("brand_name"):  b.BrandName,
			labels.Label("description"): b.Description,
		})
	}
	return rows
}

// ProjectProducts chiếu sản phẩm, thay categoryId/brandId bằng tên hiển thị.
func ProjectProducts(products []models.Product, categoryNames, brandNames map[primitive.ObjectID]string, labels ExportColumnLabels) []ExportRow {
	rows := make([]ExportRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, ExportRow{
			labels.Label("product_name"):         p.ProductName,
			labels.Label("sku"):                  p.Sku,
			labels.Label("short_description"):    p.ShortDescription,
			labels.Label("long_description"):     p.LongDescription,
			labels.Label("shipping_notes"):       p.ShippingNotes,
			labels.Label("warranty_info"):        p.WarrantyInfo,
			labels.Label("visible_to_front_end"): p.VisibleToFrontEnd,
			labels.Label("featured_product"):     p.FeaturedProduct,
			labels.Label("category_name"):        lookupNamePtr(categoryNames, p.CategoryID),
			labels.Label("brand_name"):           lookupNamePtr(brandNames, p.BrandID),
		})
	}
	return rows
}

// ProjectSpecifications chiếu specifications của từng sản phẩm theo bộ khóa
// chuẩn, mỗi sản phẩm một dòng, khóa thiếu để chuỗi rỗng.
func ProjectSpecifications(products []models.Product, labels ExportColumnLabels) []ExportRow {
	rows := make([]ExportRow, 0, len(products))
	for _, p := range products {
		row := ExportRow{
			labels.Label("product_name"): p.ProductName,
			labels.Label("sku"):          p.Sku,
		}
		for _, key := range models.KnownSpecificationKeys {
			row[labels.Label(key)] = p.Specifications[key]
		}
		rows = append(rows, row)
	}
	return rows
}

// ProjectReviews chiếu review, thay productId bằng tên sản phẩm.
func ProjectReviews(reviews []models.Review, productNames map[primitive.ObjectID]string, labels ExportColumnLabels) []ExportRow {
	rows := make([]ExportRow, 0, len(reviews))
	for _, r := range reviews {
		rows = append(rows, ExportRow{
			labels.Label("product_name"): lookupName(productNames, r.ProductID),
			labels.Label("user"):         r.User,
			labels.Label("rating"):       r.Rating,
			labels.Label("comment"):      r.Comment,
		})
	}
	return rows
}

// ProjectAssets chiếu asset, không kèm payload nhị phân.
func ProjectAssets(assets []models.ProductAsset, productNames map[primitive.ObjectID]string, labels ExportColumnLabels) []ExportRow {
	rows := make([]ExportRow, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, ExportRow{
			labels.Label("product_name"):     lookupName(productNames, a.ProductID),
			labels.Label("product_asset_id"): a.ProductAssetId,
			labels.Label("file_name"):        a.FileName,
			labels.Label("asset_kind"):       a.AssetKind,
			labels.Label("extension"):        a.Extension,
		})
	}
	return rows
}

// ProjectInventories chiếu tồn kho theo khóa (productId, bin, location).
func ProjectInventories(inventories []models.InventoryRecord, productNames map[primitive.ObjectID]string, labels ExportColumnLabels) []ExportRow {
	rows := make([]ExportRow, 0, len(inventories))
	for _, inv := range inventories {
		rows = append(rows, ExportRow{
			labels.Label("product_name"): lookupName(productNames, inv.ProductID),
			labels.Label("bin"):          inv.Bin,
			labels.Label("location"):     inv.Location,
			labels.Label("source"):       inv.Source,
			labels.Label("on_hand"):      inv.OnHand,
			labels.Label("on_hold"):      inv.OnHold,
		})
	}
	return rows
}

// ProjectPricing chiếu bản ghi giá, thay productId bằng tên sản phẩm.
func ProjectPricing(records []models.PricingRecord, productNames map[primitive.ObjectID]string, labels ExportColumnLabels) []ExportRow {
	rows := make([]ExportRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, ExportRow{
			labels.Label("product_name"): lookupName(productNames, r.ProductID),
			labels.Label("msrp"):         r.Msrp,
			labels.Label("map"):          r.Map,
			labels.Label("cost"):         r.Cost,
			labels.Label("sell"):         r.Sell,
			labels.Label("base"):         r.Base,
			labels.Label("start_date"):   r.StartDate,
			labels.Label("end_date"):     r.EndDate,
			labels.Label("created_by"):   r.CreatedBy,
		})
	}
	return rows
}
