// Package catalogsvc - Test chuẩn hóa best-effort cho trường specifications.
package catalogsvc

import (
	"testing"
)

func TestNormalizeSpecsBestEffort_NilTraVeMapRong(t *testing.T) {
	out := NormalizeSpecsBestEffort(nil)
	if out == nil {
		t.Fatal("NormalizeSpecsBestEffort(nil) trả về nil thay vì map rỗng")
	}
	if len(out) != 0 {
		t.Errorf("map phải rỗng, có %d phần tử", len(out))
	}
}

func TestNormalizeSpecsBestEffort_ChuoiJSONHopLe(t *testing.T) {
	out := NormalizeSpecsBestEffort(`{"color":"red"}`)
	if out["color"] != "red" {
		t.Errorf("color phải là red, nhận được %q", out["color"])
	}
	if len(out) != 1 {
		t.Errorf("map phải có đúng 1 khóa, có %d", len(out))
	}
}

func TestNormalizeSpecsBestEffort_ChuoiKhongPhaiJSON(t *testing.T) {
	out := NormalizeSpecsBestEffort("not json")
	if out == nil {
		t.Fatal("chuỗi hỏng phải trả về map rỗng, không phải nil")
	}
	if len(out) != 0 {
		t.Errorf("chuỗi hỏng phải cho map rỗng, có %d phần tử", len(out))
	}
}

func TestNormalizeSpecsBestEffort_ChuoiRong(t *testing.T) {
	out := NormalizeSpecsBestEffort("")
	if len(out) != 0 {
		t.Errorf("chuỗi rỗng phải cho map rỗng, có %d phần tử", len(out))
	}
}

func TestNormalizeSpecsBestEffort_MapStringString(t *testing.T) {
	in := map[string]string{"weight": "2kg", "color": "blue"}
	out := NormalizeSpecsBestEffort(in)
	if out["weight"] != "2kg" || out["color"] != "blue" {
		t.Errorf("map phải giữ nguyên giá trị, nhận được %v", out)
	}
	// Copy nông, sửa bản gốc không ảnh hưởng kết quả
	in["weight"] = "3kg"
	if out["weight"] != "2kg" {
		t.Error("kết quả phải là bản copy, không chia sẻ với input")
	}
}

func TestNormalizeSpecsBestEffort_MapInterfaceVoiSoVaBool(t *testing.T) {
	out := NormalizeSpecsBestEffort(map[string]interface{}{
		"wattage": 1200,
		"visible": true,
		"origin":  "VN",
	})
	if out["wattage"] != "1200" {
		t.Errorf("số phải được đưa về chuỗi, nhận được %q", out["wattage"])
	}
	if out["visible"] != "true" {
		t.Errorf("bool phải được đưa về chuỗi, nhận được %q", out["visible"])
	}
	if out["origin"] != "VN" {
		t.Errorf("chuỗi phải giữ nguyên, nhận được %q", out["origin"])
	}
}

func TestNormalizeSpecsBestEffort_KieuKhacTraVeMapRong(t *testing.T) {
	out := NormalizeSpecsBestEffort(42)
	if len(out) != 0 {
		t.Errorf("kiểu không hỗ trợ phải cho map rỗng, có %d phần tử", len(out))
	}
	out = NormalizeSpecsBestEffort([]string{"a", "b"})
	if len(out) != 0 {
		t.Errorf("slice phải cho map rỗng, có %d phần tử", len(out))
	}
}

func TestNormalizeSpecsBestEffort_JSONCoSoDungJSONNumber(t *testing.T) {
	out := NormalizeSpecsBestEffort(`{"capacity": 1.5, "count": 10}`)
	if out["capacity"] != "1.5" {
		t.Errorf("số thập phân phải giữ nguyên dạng, nhận được %q", out["capacity"])
	}
	if out["count"] != "10" {
		t.Errorf("số nguyên không được thành 1e+01, nhận được %q", out["count"])
	}
}
