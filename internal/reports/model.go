package reports

// CustomerOrderCount is a derived aggregate: orders per customer name.
// It is not backed by a stored entity.
type CustomerOrderCount struct {
	CustomerName string `json:"customerName"`
	OrderCount   int64  `json:"orderCount"`
}
