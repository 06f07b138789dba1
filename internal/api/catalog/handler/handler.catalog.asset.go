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

// AssetHandler CRUD cho product_assets kèm route lưu asset có đánh số thứ tự.
type AssetHandler struct {
	*basehdl.BaseHandler[models.ProductAsset, catalogdto.AssetCreateInput, catalogdto.AssetUpdateInput]
	AssetService *catalogsvc.AssetService
}

// NewAssetHandler tạo AssetHandler mới.
func NewAssetHandler() (*AssetHandler, error) {
	svc, err := catalogsvc.NewAssetService()
	if err != nil {
		return nil, fmt.Errorf("tạo AssetService: %w", err)
	}
	return &AssetHandler{
		BaseHandler:  basehdl.NewBaseHandler[models.ProductAsset, catalogdto.AssetCreateInput, catalogdto.AssetUpdateInput](svc),
		AssetService: svc,
	}, nil
}

// HandleSaveAsset xử lý POST /assets/save.
// Khác insert-one thường ở chỗ service tự gán productAssetId nối tiếp theo sản phẩm.
func (h *AssetHandler) HandleSaveAsset(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input catalogdto.AssetCreateInput
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

		asset, err := h.AssetService.SaveAsset(c.Context(), &input)
		if err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}

		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": "Lưu asset thành công", "data": asset, "status": "success",
		})
		return nil
	})
}
