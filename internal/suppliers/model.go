package suppliers

// Supplier is read-only reference data seeded outside this system's control.
type Supplier struct {
	ID   int64  `json:"supplierId"`
	Name string `json:"supplierName"`
}
