package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, error)
	Create(ctx context.Context, form ProductForm) (int64, error)
	Update(ctx context.Context, form ProductForm) error
	Delete(ctx context.Context, id int64) (int64, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

// List reads through the get_all_products stored procedure, which joins
// category and supplier names but does not expose the foreign-key IDs.
func (r *repository) List(ctx context.Context) ([]Product, error) {
	query := `SELECT product_id, product_name, unit, price, category_name, supplier_name FROM get_all_products()`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Unit, &p.Price, &p.CategoryName, &p.SupplierName); err != nil {
			return nil, fmt.Errorf("list products: scan: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Get joins against categories and suppliers so a product with a dangling
// foreign key still comes back, with null display names.
func (r *repository) Get(ctx context.Context, id int64) (Product, error) {
	query := `
		SELECT p.product_id, p.product_name, p.unit, p.price,
		       c.category_id, c.category_name,
		       s.supplier_id, s.supplier_name
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.category_id
		LEFT JOIN suppliers s ON p.supplier_id = s.supplier_id
		WHERE p.product_id = $1`

	var (
		p          Product
		categoryID *int64
		supplierID *int64
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Unit, &p.Price,
		&categoryID, &p.CategoryName,
		&supplierID, &p.SupplierName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}
	if supplierID != nil {
		p.SupplierID = *supplierID
	}
	return p, nil
}

// Create inserts through the add_product stored procedure and returns the
// newly assigned identifier.
func (r *repository) Create(ctx context.Context, form ProductForm) (int64, error) {
	query := `SELECT add_product($1, $2, $3, $4, $5)`
	var id int64
	err := r.db.QueryRow(ctx, query, form.Name, form.SupplierID, form.CategoryID, form.Unit, form.Price).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("add product: %w", pgDetail(err))
	}
	return id, nil
}

// Update replaces all mutable fields of the identified product.
func (r *repository) Update(ctx context.Context, form ProductForm) error {
	query := `SELECT update_product($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, form.ProductID, form.Name, form.SupplierID, form.CategoryID, form.Unit, form.Price)
	if err != nil {
		return fmt.Errorf("update product %d: %w", form.ProductID, pgDetail(err))
	}
	return nil
}

// Delete removes through the delete_product stored procedure and reports
// how many rows were affected.
func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	query := `SELECT delete_product($1)`
	var affected int64
	if err := r.db.QueryRow(ctx, query, id).Scan(&affected); err != nil {
		return 0, fmt.Errorf("delete product %d: %w", id, pgDetail(err))
	}
	return affected, nil
}

// pgDetail annotates store errors with their SQLSTATE so a foreign-key or
// constraint violation is identifiable in the logs. The code is never
// forwarded to clients.
func pgDetail(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("sqlstate %s: %w", pgErr.Code, err)
	}
	return err
}
