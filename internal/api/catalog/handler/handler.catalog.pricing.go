package cataloghdl

import (
	"fmt"

	basehdl "meta_catalog/internal/api/base/handler"
	catalogdto "meta_catalog/internal/api/catalog/dto"
	"meta_catalog/internal/api/catalog/models"
	catalogsvc "meta_catalog/internal/api/catalog/service"
	"meta_catalog/internal/api/middleware"
	"meta_catalog/internal/common"

	"github.com/gofiber/fiber/v3"
)

// PricingHandler CRUD cho pricing_records kèm upsert theo cửa sổ hiệu lực.
type PricingHandler struct {
	*basehdl.BaseHandler[models.PricingRecord, catalogdto.PricingCreateInput, catalogdto.PricingUpdateInput]
	PricingService *catalogsvc.PricingService
}

// NewPricingHandler tạo PricingHandler mới.
func NewPricingHandler() (*PricingHandler, error) {
	svc, err := catalogsvc.NewPricingService()
	if err != nil {
		return nil, fmt.Errorf("tạo PricingService: %w", err)
	}
	return &PricingHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.PricingRecord, catalogdto.PricingCreateInput, catalogdto.PricingUpdateInput](svc),
		PricingService: svc,
	}, nil
}

// HandleUpsertWindow xử lý POST /pricing/upsert-window.
func (h *PricingHandler) HandleUpsertWindow(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input catalogdto.PricingUpsertWindowInput
		if err := c.Bind().Body(&input); err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationFormat.Code, "message": "Dữ liệu gửi lên không đúng định dạng JSON", "status": "error",
			})
			return nil
		}

		record, err := h.PricingService.UpsertPrice(c.Context(), &input)
		if err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}

		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": "Ghi bản ghi giá thành công", "data": record, "status": "success",
		})
		return nil
	})
}
