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
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewHandler CRUD cho reviews kèm route tạo review theo sản phẩm.
type ReviewHandler struct {
	*basehdl.BaseHandler[models.Review, catalogdto.ReviewCreateInput, catalogdto.ReviewUpdateInput]
	ReviewService *catalogsvc.ReviewService
}

// NewReviewHandler tạo ReviewHandler mới.
func NewReviewHandler() (*ReviewHandler, error) {
	svc, err := catalogsvc.NewReviewService()
	if err != nil {
		return nil, fmt.Errorf("tạo ReviewService: %w", err)
	}
	return &ReviewHandler{
		BaseHandler:   basehdl.NewBaseHandler[models.Review, catalogdto.ReviewCreateInput, catalogdto.ReviewUpdateInput](svc),
		ReviewService: svc,
	}, nil
}

// HandleCreateForProduct xử lý POST /products/:id/reviews.
func (h *ReviewHandler) HandleCreateForProduct(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		idHex := c.Params("id")
		productID, err := primitive.ObjectIDFromHex(idHex)
		if err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationInput.Code, "message": fmt.Sprintf("ID sản phẩm không hợp lệ: %q", idHex), "status": "error",
			})
			return nil
		}

		var input catalogdto.ReviewCreateInput
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

		review, err := h.ReviewService.CreateForProduct(c.Context(), productID, &input)
		if err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}

		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": "Thêm review thành công", "data": review, "status": "success",
		})
		return nil
	})
}
