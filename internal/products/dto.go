package products

// ProductForm is the payload accepted by the add and update endpoints.
// ProductID is ignored on add and required on update. Foreign-key existence
// is deferred to the store's constraints.
type ProductForm struct {
	ProductID  int64   `json:"productId"`
	Name       string  `json:"productName" validate:"required"`
	SupplierID int64   `json:"supplierId"`
	CategoryID int64   `json:"categoryId"`
	Price      float64 `json:"price" validate:"gte=0"`
	Unit       string  `json:"unit"`
}
