// Package catalogdto - DTO cho domain catalog (inventory).
package catalogdto

// InventoryCreateInput dữ liệu đầu vào khi tạo bản ghi tồn kho qua CRUD thường
type InventoryCreateInput struct {
	ProductID string `json:"productId" transform:"str_objectid" validate:"required,len=24"`
	Bin       string `json:"bin" validate:"required"`
	Location  string `json:"location" validate:"required"`
	Source    string `json:"source,omitempty"`
	OnHand    int64  `json:"onHand,omitempty"`
	OnHold    int64  `json:"onHold,omitempty"`
}

// InventoryUpdateInput dữ liệu đầu vào khi cập nhật bản ghi tồn kho
type InventoryUpdateInput struct {
	Source string `json:"source,omitempty"`
	OnHand int64  `json:"onHand,omitempty"`
	OnHold int64  `json:"onHold,omitempty"`
}

// InventoryUpsertByBinInput dữ liệu đầu vào cho upsert theo bộ ba (productId, bin, location).
type InventoryUpsertByBinInput struct {
	ProductID string `json:"productId" validate:"required,len=24"`
	Bin       string `json:"bin" validate:"required"`
	Location  string `json:"location" validate:"required"`
	Source    string `json:"source,omitempty"`
	OnHand    int64  `json:"onHand,omitempty"`
	OnHold    int64  `json:"onHold,omitempty"`
}
