package cataloghdl

import (
	"fmt"

	basehdl "meta_catalog/internal/api/base/handler"
	catalogdto "meta_catalog/internal/api/catalog/dto"
	catalogsvc "meta_catalog/internal/api/catalog/service"
	"meta_catalog/internal/api/middleware"
	"meta_catalog/internal/common"

	"github.com/gofiber/fiber/v3"
)

// ExportHandler xuất toàn bộ catalog thành các nhóm bản ghi phẳng.
type ExportHandler struct {
	ExportService *catalogsvc.ExportService
}

// NewExportHandler tạo ExportHandler với bộ nhãn cột mặc định truyền vào lúc khởi tạo.
func NewExportHandler(labels catalogsvc.ExportColumnLabels) (*ExportHandler, error) {
	svc, err := catalogsvc.NewExportService(labels)
	if err != nil {
		return nil, fmt.Errorf("tạo ExportService: %w", err)
	}
	return &ExportHandler{ExportService: svc}, nil
}

// HandleExport xử lý GET /export với nhãn cột cấu hình sẵn.
func (h *ExportHandler) HandleExport(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		groups, err := h.ExportService.ExportAll(c.Context())
		if err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}
		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": "Export thành công", "data": groups, "status": "success",
		})
		return nil
	})
}

// HandleExportWithLabels xử lý POST /export, nhận override nhãn cột trong body.
func (h *ExportHandler) HandleExportWithLabels(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input catalogdto.ExportLabelOverridesInput
		if err := c.Bind().Body(&input); err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationFormat.Code, "message": "Dữ liệu gửi lên không đúng định dạng JSON", "status": "error",
			})
			return nil
		}

		groups, err := h.ExportService.ExportAllWithOverrides(c.Context(), input.Labels)
		if err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}
		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": "Export thành công", "data": groups, "status": "success",
		})
		return nil
	})
}
