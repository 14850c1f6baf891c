package products

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV serialises the product list to CSV, matching the columns the
// list endpoint exposes.
func WriteCSV(w io.Writer, products []Product) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Product ID", "Product Name", "Unit", "Price", "Category", "Supplier"}); err != nil {
		return err
	}
	for _, p := range products {
		record := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Unit,
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			stringOrEmpty(p.CategoryName),
			stringOrEmpty(p.SupplierName),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
