package categories

// Category is read-only reference data seeded outside this system's control.
type Category struct {
	ID   int64  `json:"categoryId"`
	Name string `json:"categoryName"`
}
