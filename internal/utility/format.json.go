package utility

import (
	"encoding/json"
)

// P2Int64 chuyển đổi interface thành int64
// Dùng cho giá trị số được decode bằng json.Decoder.UseNumber()
func P2Int64(input interface{}) int64 {
	jsonNumber, ok := input.(json.Number)
	if !ok {
		return 0
	}
	result, err := jsonNumber.Int64()
	if err != nil {
		return 0
	}

	return result
}
