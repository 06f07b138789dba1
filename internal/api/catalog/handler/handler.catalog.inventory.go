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

	"github.com/gofiber/fiber/v3"
)

// InventoryHandler CRUD cho inventory_records kèm upsert theo (productId, bin, location).
type InventoryHandler struct {
	*basehdl.BaseHandler[models.InventoryRecord, catalogdto.InventoryCreateInput, catalogdto.InventoryUpdateInput]
	InventoryService *catalogsvc.InventoryService
}

// NewInventoryHandler tạo InventoryHandler mới.
func NewInventoryHandler() (*InventoryHandler, error) {
	svc, err := catalogsvc.NewInventoryService()
	if err != nil {
		return nil, fmt.Errorf("tạo InventoryService: %w", err)
	}
	return &InventoryHandler{
		BaseHandler:      basehdl.NewBaseHandler[models.InventoryRecord, catalogdto.InventoryCreateInput, catalogdto.InventoryUpdateInput](svc),
		InventoryService: svc,
	}, nil
}

// HandleUpsertByBin xử lý POST /inventory/upsert-by-bin.
func (h *InventoryHandler) HandleUpsertByBin(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input catalogdto.InventoryUpsertByBinInput
		if err := c.Bind().Body(&input); err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationFormat.Code, "message": "Dữ liệu gửi lên không đúng định dạng JSON", "status": "error",
			})
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationInput.Code, "message": err.Error(), "status": "error",
			})
			return nil
		}

		record, err := h.InventoryService.UpsertByBin(c.Context(), &input)
		if err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}

		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": "Ghi tồn kho thành công", "data": record, "status": "success",
		})
		return nil
	})
}
