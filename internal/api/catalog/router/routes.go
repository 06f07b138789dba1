// Package catalogrouter - Định tuyến cho domain catalog.
package catalogrouter

import (
	cataloghdl "meta_catalog/internal/api/catalog/handler"
	catalogsvc "meta_catalog/internal/api/catalog/service"
	apirouter "meta_catalog/internal/api/router"

	"github.com/gofiber/fiber/v3"
)

// assetConfig CRUD cho assets, tắt insert trực tiếp để giữ đánh số productAssetId
// qua route /assets/save.
var assetConfig = func() apirouter.CRUDConfig {
	cfg := apirouter.ReadWriteConfig
	cfg.InsOne = false
	cfg.InsMany = false
	cfg.Upsert = false
	cfg.UpsMany = false
	return cfg
}()

// Register đăng ký toàn bộ route của domain catalog vào group /api/v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	productHdl, err := cataloghdl.NewProductHandler()
	if err != nil {
		return err
	}
	categoryHdl, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return err
	}
	brandHdl, err := cataloghdl.NewBrandHandler()
	if err != nil {
		return err
	}
	pricingHdl, err := cataloghdl.NewPricingHandler()
	if err != nil {
		return err
	}
	inventoryHdl, err := cataloghdl.NewInventoryHandler()
	if err != nil {
		return err
	}
	assetHdl, err := cataloghdl.NewAssetHandler()
	if err != nil {
		return err
	}
	reviewHdl, err := cataloghdl.NewReviewHandler()
	if err != nil {
		return err
	}
	exportHdl, err := cataloghdl.NewExportHandler(catalogsvc.ExportColumnLabels{})
	if err != nil {
		return err
	}

	// CRUD chuẩn cho từng collection
	r.RegisterCRUDRoutes(v1, "/products", productHdl, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/categories", categoryHdl, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/brands", brandHdl, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/pricing", pricingHdl, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/inventory", inventoryHdl, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/assets", assetHdl, assetConfig)
	r.RegisterCRUDRoutes(v1, "/reviews", reviewHdl, apirouter.ReadWriteConfig)

	// Các route nghiệp vụ ngoài CRUD chuẩn
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "POST", "/import", nil, productHdl.HandleImport)
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "GET", "/search", nil, productHdl.HandleSearch)
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "POST", "/:id/reviews", nil, reviewHdl.HandleCreateForProduct)
	apirouter.RegisterRouteWithMiddleware(v1, "/pricing", "POST", "/upsert-window", nil, pricingHdl.HandleUpsertWindow)
	apirouter.RegisterRouteWithMiddleware(v1, "/inventory", "POST", "/upsert-by-bin", nil, inventoryHdl.HandleUpsertByBin)
	apirouter.RegisterRouteWithMiddleware(v1, "/assets", "POST", "/save", nil, assetHdl.HandleSaveAsset)
	apirouter.RegisterRouteWithMiddleware(v1, "", "GET", "/export", nil, exportHdl.HandleExport)
	apirouter.RegisterRouteWithMiddleware(v1, "", "POST", "/export", nil, exportHdl.HandleExportWithLabels)

	return nil
}
