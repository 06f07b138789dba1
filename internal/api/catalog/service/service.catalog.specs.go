package catalogsvc

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// NormalizeSpecsBestEffort đưa giá trị specifications thô về map[string]string.
// Hàm không bao giờ trả lỗi, dữ liệu không đọc được thì ghi warn và trả map rỗng:
//   - nil / thiếu: map rỗng
//   - map: copy nông, mọi value đưa về chuỗi
//   - chuỗi: decode JSON object nghiêm ngặt, hỏng thì map rỗng
//   - kiểu khác: map rỗng
func NormalizeSpecsBestEffort(input interface{}) map[string]string {
	if input == nil {
		return map[string]string{}
	}

	switch v := input.(type) {
	case map[string]string:
		out := make(map[string]string, len(v))
		for k, val := range v {
			out[k] = val
		}
		return out
	case map[string]interface{}:
		out := make(map[string]string, len(v))
		for k, val := range v {
			out[k] = stringifySpecValue(val)
		}
		return out
	case string:
		return normalizeSpecsFromText(v)
	default:
		logrus.WithField("type", fmt.Sprintf("%T", input)).
			Warn("Specifications không phải map hoặc chuỗi, bỏ qua")
		return map[string]string{}
	}
}

// normalizeSpecsFromText decode chuỗi JSON object thành map[string]string.
// Chuỗi rỗng coi như không có specifications.
func normalizeSpecsFromText(raw string) map[string]string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return map[string]string{}
	}

	var decoded map[string]interface{}
	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()
	if err := dec.Decode(&decoded); err != nil {
		logrus.WithFields(logrus.Fields{
			"raw":   truncateForLog(trimmed, 120),
			"error": err.Error(),
		}).Warn("Specifications không phải JSON object hợp lệ, bỏ qua")
		return map[string]string{}
	}

	out := make(map[string]string, len(decoded))
	for k, val := range decoded {
		out[k] = stringifySpecValue(val)
	}
	return out
}

// stringifySpecValue đưa value bất kỳ trong specifications về chuỗi.
func stringifySpecValue(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func truncateForLog(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
