package reports

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	CustomerOrderCounts(ctx context.Context) ([]CustomerOrderCount, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (r *repository) CustomerOrderCounts(ctx context.Context) ([]CustomerOrderCount, error) {
	query := `SELECT customer_name, order_count FROM get_customer_order_counts()`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []CustomerOrderCount
	for rows.Next() {
		var c CustomerOrderCount
		if err := rows.Scan(&c.CustomerName, &c.OrderCount); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
