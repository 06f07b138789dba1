// Package catalogdto - DTO cho domain catalog (pricing).
package catalogdto

// PricingCreateInput dữ liệu đầu vào khi tạo bản ghi giá qua CRUD thường
type PricingCreateInput struct {
	ProductID string  `json:"productId" transform:"str_objectid" validate:"required,len=24"`
	Msrp      float64 `json:"msrp" validate:"required"`
	Map       float64 `json:"map,omitempty"`
	Cost      float64 `json:"cost,omitempty"`
	Sell      float64 `json:"sell,omitempty"`
	Base      float64 `json:"base,omitempty"`
	StartDate int64   `json:"startDate" validate:"required"`
	EndDate   int64   `json:"endDate,omitempty"`
	CreatedBy string  `json:"createdBy" validate:"required"`
}

// PricingUpdateInput dữ liệu đầu vào khi cập nhật bản ghi giá
type PricingUpdateInput struct {
	Msrp      float64 `json:"msrp,omitempty"`
	Map       float64 `json:"map,omitempty"`
	Cost      float64 `json:"cost,omitempty"`
	Sell      float64 `json:"sell,omitempty"`
	Base      float64 `json:"base,omitempty"`
	StartDate int64   `json:"startDate,omitempty"`
	EndDate   int64   `json:"endDate,omitempty"`
	CreatedBy string  `json:"createdBy,omitempty"`
}

// PricingUpsertWindowInput dữ liệu đầu vào cho upsert theo cửa sổ hiệu lực.
// StartDate/EndDate là Unix ms; EndDate = 0 nghĩa là mở (chưa kết thúc).
type PricingUpsertWindowInput struct {
	ProductID string  `json:"productId" validate:"required,len=24"`
	Msrp      float64 `json:"msrp" validate:"required"`
	Map       float64 `json:"map,omitempty"`
	Cost      float64 `json:"cost,omitempty"`
	Sell      float64 `json:"sell,omitempty"`
	Base      float64 `json:"base,omitempty"`
	StartDate int64   `json:"startDate" validate:"required"`
	EndDate   int64   `json:"endDate,omitempty"`
	CreatedBy string  `json:"createdBy" validate:"required"`
}
