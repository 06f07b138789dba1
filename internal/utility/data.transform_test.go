// Package utility - Test cơ chế transform tag dùng cho DTO.
package utility

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseTransformTag_CacThanhPhan(t *testing.T) {
	cfg, err := ParseTransformTag("str_objectid,optional,map=categoryId")
	if err != nil {
		t.Fatalf("tag hợp lệ không được báo lỗi: %v", err)
	}
	if cfg.Type != "str_objectid" {
		t.Errorf("type phải là str_objectid, nhận được %q", cfg.Type)
	}
	if !cfg.Optional {
		t.Error("optional phải được bật")
	}
	if cfg.MapTo != "categoryId" {
		t.Errorf("map phải là categoryId, nhận được %q", cfg.MapTo)
	}
}

func TestTransformFieldValue_StrObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	cfg, _ := ParseTransformTag("str_objectid")

	out, err := TransformFieldValue(id.Hex(), cfg, reflect.TypeOf(primitive.ObjectID{}))
	if err != nil {
		t.Fatalf("hex hợp lệ không được báo lỗi: %v", err)
	}
	if out != id {
		t.Errorf("ObjectID sai: %v", out)
	}

	_, err = TransformFieldValue("không phải hex", cfg, reflect.TypeOf(primitive.ObjectID{}))
	if err == nil {
		t.Error("hex hỏng phải báo lỗi")
	}
}

func TestTransformFieldValue_StrObjectIDPtr(t *testing.T) {
	id := primitive.NewObjectID()
	cfg, _ := ParseTransformTag("str_objectid_ptr,optional")

	out, err := TransformFieldValue(id.Hex(), cfg, reflect.TypeOf((*primitive.ObjectID)(nil)))
	if err != nil {
		t.Fatalf("hex hợp lệ không được báo lỗi: %v", err)
	}
	ptr, ok := out.(*primitive.ObjectID)
	if !ok || ptr == nil || *ptr != id {
		t.Errorf("kết quả phải là *ObjectID trỏ đến id, nhận được %v", out)
	}
}

func TestTransformFieldValue_StrTime(t *testing.T) {
	cfg, _ := ParseTransformTag("str_time")
	out, err := TransformFieldValue("2024-06-30T00:00:00", cfg, reflect.TypeOf(int64(0)))
	if err != nil {
		t.Fatalf("thời gian hợp lệ không được báo lỗi: %v", err)
	}
	if out.(int64) <= 0 {
		t.Errorf("UnixMilli phải dương, nhận được %v", out)
	}
}

func TestTransformFieldValue_Default(t *testing.T) {
	cfg, _ := ParseTransformTag("string,default=Other")
	out, err := TransformFieldValue("", cfg, reflect.TypeOf(""))
	if err != nil {
		t.Fatalf("không được báo lỗi: %v", err)
	}
	if out != "Other" {
		t.Errorf("giá trị rỗng phải lấy default, nhận được %v", out)
	}
}
