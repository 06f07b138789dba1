// Package catalogdto - DTO cho domain catalog (asset, review).
package catalogdto

// AssetCreateInput dữ liệu đầu vào khi lưu asset cho sản phẩm.
// ProductAssetId không nhận từ client — service tự gán theo thứ tự trong sản phẩm.
type AssetCreateInput struct {
	ProductID string `json:"productId" transform:"str_objectid" validate:"required,len=24"`
	FileName  string `json:"fileName" validate:"required"`
	AssetKind string `json:"assetKind" transform:"string,default=Other" validate:"omitempty,oneof=Image Video Document Other"`
	Extension string `json:"extension,omitempty"`
	Payload   []byte `json:"payload,omitempty"`
}

// AssetUpdateInput dữ liệu đầu vào khi cập nhật asset
type AssetUpdateInput struct {
	FileName  string `json:"fileName,omitempty"`
	AssetKind string `json:"assetKind,omitempty" validate:"omitempty,oneof=Image Video Document Other"`
	Extension string `json:"extension,omitempty"`
	Payload   []byte `json:"payload,omitempty"`
}

// ReviewCreateInput dữ liệu đầu vào khi tạo review.
// ProductID lấy từ URI params ở route /products/:id/reviews, hoặc từ body ở CRUD thường.
type ReviewCreateInput struct {
	ProductID string `json:"productId,omitempty" transform:"str_objectid,optional" validate:"omitempty,len=24"`
	User      string `json:"user,omitempty"`
	Rating    int64  `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment   string `json:"comment,omitempty"`
}

// ReviewUpdateInput dữ liệu đầu vào khi cập nhật review
type ReviewUpdateInput struct {
	User    string `json:"user,omitempty"`
	Rating  int64  `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}
