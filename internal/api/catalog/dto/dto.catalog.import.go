// Package catalogdto - DTO cho import và export catalog.
package catalogdto

// RowRejection mô tả một dòng bị loại trong quá trình import.
type RowRejection struct {
	RowNumber  int    `json:"rowNumber"`            // Số dòng dữ liệu (1-based, không tính header)
	Identifier string `json:"identifier,omitempty"` // productName hoặc sku của dòng (nếu có)
	Reason     string `json:"reason"`               // Lý do loại
}

// ImportReport kết quả một lần import.
type ImportReport struct {
	Mode          string         `json:"mode"`
	RowsSeen      int            `json:"rowsSeen"`
	RowsCommitted int            `json:"rowsCommitted"`
	RowsRejected  int            `json:"rowsRejected"`
	Rejections    []RowRejection `json:"rejections,omitempty"`
}

// ExportLabelOverridesInput cho phép caller đổi nhãn cột trong kết quả export.
// Key là tên cột mặc định, value là nhãn thay thế.
type ExportLabelOverridesInput struct {
	Labels map[string]string `json:"labels,omitempty"`
}
