// Package catalogdto - DTO cho domain catalog (category, brand).
package catalogdto

// CategoryCreateInput dữ liệu đầu vào khi tạo danh mục
type CategoryCreateInput struct {
	CategoryName string `json:"categoryName" validate:"required"`
	Description  string `json:"description,omitempty"`
}

// CategoryUpdateInput dữ liệu đầu vào khi cập nhật danh mục
type CategoryUpdateInput struct {
	CategoryName string `json:"categoryName,omitempty"`
	Description  string `json:"description,omitempty"`
}

// BrandCreateInput dữ liệu đầu vào khi tạo thương hiệu
type BrandCreateInput struct {
	BrandName   string `json:"brandName" validate:"required"`
	Description string `json:"description,omitempty"`
}

// BrandUpdateInput dữ liệu đầu vào khi cập nhật thương hiệu
type BrandUpdateInput struct {
	BrandName   string `json:"brandName,omitempty"`
	Description string `json:"description,omitempty"`
}
