package catalogsvc

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	catalogdto "meta_catalog/internal/api/catalog/dto"
	"meta_catalog/internal/common"
	"meta_catalog/internal/logger"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"meta_catalog/internal/api/catalog/models"
)

// Hai chế độ import được hỗ trợ.
const (
	ImportModeAdd     = "add"
	ImportModeReplace = "replace"
)

// productImportStore là phần kho dữ liệu mà luồng import cần đến.
type productImportStore interface {
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
	InsertMany(ctx context.Context, data []models.Product) ([]models.Product, error)
}

// ImportService điều phối luồng import sản phẩm từ file CSV.
type ImportService struct {
	products    productImportStore
	transformer *RowTransformer
}

// NewImportService tạo ImportService mới.
func NewImportService() (*ImportService, error) {
	products, err := NewProductService()
	if err != nil {
		return nil, err
	}
	resolver, err := NewReferenceResolver()
	if err != nil {
		return nil, err
	}
	return &ImportService{
		products:    products,
		transformer: NewRowTransformer(resolver),
	}, nil
}

// ImportProducts chạy import theo mode "add" hoặc "replace".
// Mode "replace" xóa toàn bộ products trước khi ghi, không chạy trong transaction
// nên import thất bại giữa chừng có thể để lại collection rỗng.
// Dòng hỏng bị loại và ghi nhận vào báo cáo, không làm hỏng cả lô.
// Lỗi đọc CSV là lỗi chết, không dòng nào được ghi.
func (s *ImportService) ImportProducts(ctx context.Context, mode string, src io.Reader) (*catalogdto.ImportReport, error) {
	if mode != ImportModeAdd && mode != ImportModeReplace {
		return nil, common.NewError(
			common.ErrCodeImportMode,
			fmt.Sprintf("%s: %q", common.MsgImportInvalidMode, mode),
			common.StatusBadRequest,
			nil,
		)
	}

	rows, err := parseImportRows(src)
	if err != nil {
		return nil, err
	}

	if mode == ImportModeReplace {
		deleted, err := s.products.DeleteMany(ctx, bson.M{})
		if err != nil {
			return nil, err
		}
		logger.GetAppLogger().WithField("deleted", deleted).Info("Đã xóa toàn bộ products trước khi import replace")
	}

	report := &catalogdto.ImportReport{
		Mode:       mode,
		Rejections: []catalogdto.RowRejection{},
	}
	batch := make([]models.Product, 0, len(rows))

	for i, raw := range rows {
		report.RowsSeen++
		product, err := s.transformer.TransformRow(ctx, raw)
		if err != nil {
			rejection := catalogdto.RowRejection{
				RowNumber:  i + 1,
				Identifier: rowIdentifier(raw),
				Reason:     err.Error(),
			}
			report.Rejections = append(report.Rejections, rejection)
			report.RowsRejected++
			logger.GetAppLogger().WithFields(logrus.Fields{
				"row":        rejection.RowNumber,
				"identifier": rejection.Identifier,
				"reason":     rejection.Reason,
			}).Warn("Loại dòng import")
			continue
		}
		batch = append(batch, *product)
	}

	if len(batch) > 0 {
		if _, err := s.products.InsertMany(ctx, batch); err != nil {
			return nil, err
		}
		report.RowsCommitted = len(batch)
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"mode":           report.Mode,
		"rows_seen":      report.RowsSeen,
		"rows_committed": report.RowsCommitted,
		"rows_rejected":  report.RowsRejected,
	}).Info("Hoàn tất import products")

	return report, nil
}

// parseImportRows đọc toàn bộ CSV thành danh sách map cột -> giá trị.
// Dòng đầu là header, dòng trống bị bỏ qua, cột thừa so với header bị cắt.
func parseImportRows(src io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeImportParse,
			fmt.Sprintf("%s: %s", common.MsgImportParseError, err.Error()),
			common.StatusBadRequest,
			err,
		)
	}
	if len(records) == 0 {
		return nil, common.ErrImportEmptyFile
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		if isBlankRecord(record) {
			continue
		}
		row := make(map[string]string, len(header))
		for j, field := range header {
			if j < len(record) {
				row[field] = record[j]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// isBlankRecord kiểm tra dòng chỉ toàn ô rỗng.
func isBlankRecord(record []string) bool {
	for _, field := range record {
		if field != "" {
			return false
		}
	}
	return true
}

// rowIdentifier lấy trường nhận diện của dòng để ghi vào báo cáo lỗi.
func rowIdentifier(raw map[string]string) string {
	if sku := raw[ColSku]; sku != "" {
		return sku
	}
	return raw[ColProductName]
}
