package cataloghdl

import (
	"fmt"

	basehdl "meta_catalog/internal/api/base/handler"
	catalogdto "meta_catalog/internal/api/catalog/dto"
	"meta_catalog/internal/api/catalog/models"
	catalogsvc "meta_catalog/internal/api/catalog/service"
	"meta_catalog/internal/api/middleware"
	"meta_catalog/internal/common"
	"meta_catalog/internal/global"
	"meta_catalog/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// ProductHandler CRUD cho products kèm luồng import CSV.
type ProductHandler struct {
	*basehdl.BaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	ProductService *catalogsvc.ProductService
	ImportService  *catalogsvc.ImportService
}

// NewProductHandler tạo ProductHandler mới.
func NewProductHandler() (*ProductHandler, error) {
	svc, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("tạo ProductService: %w", err)
	}
	importSvc, err := catalogsvc.NewImportService()
	if err != nil {
		return nil, fmt.Errorf("tạo ImportService: %w", err)
	}
	return &ProductHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](svc),
		ProductService: svc,
		ImportService:  importSvc,
	}, nil
}

// HandleSearch xử lý GET /products/search.
// Tìm theo query "productName" hoặc "sku"; nếu có cả hai thì productName thắng.
func (h *ProductHandler) HandleSearch(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		products, err := h.ProductService.FindByNameOrSku(c.Context(), c.Query("productName"), c.Query("sku"))
		if err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}
		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess, "data": products, "status": "success",
		})
		return nil
	})
}

// HandleImport xử lý POST /products/import.
// Nhận file CSV qua multipart field "file", mode qua query "mode" (add/replace).
func (h *ProductHandler) HandleImport(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		mode := c.Query("mode", catalogsvc.ImportModeAdd)

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationInput.Code, "message": "Thiếu file import (field \"file\")", "status": "error",
			})
			return nil
		}

		maxSize := int64(global.MongoDB_ServerConfig.ImportMaxFileSize)
		if maxSize > 0 && fileHeader.Size > maxSize {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code":    common.ErrCodeValidationInput.Code,
				"message": fmt.Sprintf("File vượt quá kích thước cho phép (%d bytes)", maxSize),
				"status":  "error",
			})
			return nil
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationFormat.Code, "message": "Không đọc được file import", "status": "error",
			})
			return nil
		}
		defer file.Close()

		report, err := h.ImportService.ImportProducts(c.Context(), mode, file)
		if err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}

		logger.LogImport(report.Mode, report.RowsSeen, report.RowsCommitted, report.RowsRejected, c)
		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": "Import hoàn tất", "data": report, "status": "success",
		})
		return nil
	})
}
