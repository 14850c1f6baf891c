package products

import "errors"

// ErrNotFound indicates no product matched the requested identifier.
var ErrNotFound = errors.New("product not found")

// Product represents a product entity. CategoryName and SupplierName are
// derived display fields: the stored-procedure list query populates only the
// names and leaves the foreign-key IDs at zero, while the joined by-ID query
// populates both. A dangling foreign key yields a null name.
type Product struct {
	ID           int64   `json:"productId"`
	Name         string  `json:"productName"`
	SupplierID   int64   `json:"supplierId"`
	CategoryID   int64   `json:"categoryId"`
	Price        float64 `json:"price"`
	Unit         string  `json:"unit"`
	CategoryName *string `json:"categoryName"`
	SupplierName *string `json:"supplierName"`
}
