// Package catalogdto - DTO cho domain catalog (product).
package catalogdto

// ProductCreateInput dữ liệu đầu vào khi tạo sản phẩm
type ProductCreateInput struct {
	ProductName       string            `json:"productName" validate:"required"`
	Sku               string            `json:"sku" validate:"required"`
	ShortDescription  string            `json:"shortDescription,omitempty"`
	LongDescription   string            `json:"longDescription,omitempty"`
	ShippingNotes     string            `json:"shippingNotes,omitempty"`
	WarrantyInfo      string            `json:"warrantyInfo,omitempty"`
	VisibleToFrontEnd bool              `json:"visibleToFrontEnd,omitempty"`
	FeaturedProduct   bool              `json:"featuredProduct,omitempty"`
	CategoryID        string            `json:"categoryId,omitempty" transform:"str_objectid_ptr,optional" validate:"omitempty,len=24"`
	BrandID           string            `json:"brandId,omitempty" transform:"str_objectid_ptr,optional" validate:"omitempty,len=24"`
	Specifications    map[string]string `json:"specifications,omitempty"`
}

// ProductUpdateInput dữ liệu đầu vào khi cập nhật sản phẩm
type ProductUpdateInput struct {
	ProductName       string            `json:"productName,omitempty"`
	Sku               string            `json:"sku,omitempty"`
	ShortDescription  string            `json:"shortDescription,omitempty"`
	LongDescription   string            `json:"longDescription,omitempty"`
	ShippingNotes     string            `json:"shippingNotes,omitempty"`
	WarrantyInfo      string            `json:"warrantyInfo,omitempty"`
	VisibleToFrontEnd bool              `json:"visibleToFrontEnd,omitempty"`
	FeaturedProduct   bool              `json:"featuredProduct,omitempty"`
	CategoryID        string            `json:"categoryId,omitempty" transform:"str_objectid_ptr,optional" validate:"omitempty,len=24"`
	BrandID           string            `json:"brandId,omitempty" transform:"str_objectid_ptr,optional" validate:"omitempty,len=24"`
	Specifications    map[string]string `json:"specifications,omitempty"`
}
