package global

import (
	"meta_catalog/config"
	"meta_catalog/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// ColNames chứa tên các collection MongoDB của hệ thống catalog
type ColNames struct {
	Products         string // Sản phẩm
	Categories       string // Danh mục sản phẩm
	Brands           string // Thương hiệu
	PricingRecords   string // Sổ giá theo thời gian
	InventoryRecords string // Tồn kho theo bin/location
	ProductAssets    string // Tài nguyên media của sản phẩm
	Reviews          string // Đánh giá sản phẩm
}

// Các biến toàn cục của ứng dụng, được khởi tạo trong cmd/server
var (
	// MongoDB_ColNames lưu tên các collection, gán giá trị khi khởi động server
	MongoDB_ColNames ColNames

	// RegistryCollections registry chứa các *mongo.Collection đã đăng ký theo tên
	RegistryCollections = registry.NewRegistry[*mongo.Collection]()

	// MongoDB_Session phiên kết nối MongoDB dùng chung
	MongoDB_Session *mongo.Client

	// MongoDB_ServerConfig cấu hình server đọc từ file env
	MongoDB_ServerConfig *config.Configuration

	// Validate instance validator dùng chung cho toàn bộ ứng dụng
	Validate *validator.Validate
)
