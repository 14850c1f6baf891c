package products

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northwind-labs/northwind-api/internal/platform/httpx"
)

type mockRepository struct {
	products map[int64]Product
	nextID   int64

	// Error injection
	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		products: make(map[int64]Product),
		nextID:   1,
	}
}

func (m *mockRepository) List(ctx context.Context) ([]Product, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []Product
	for _, p := range m.products {
		result = append(result, p)
	}
	return result, nil
}

func (m *mockRepository) Get(ctx context.Context, id int64) (Product, error) {
	if m.getErr != nil {
		return Product{}, m.getErr
	}
	p, ok := m.products[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (m *mockRepository) Create(ctx context.Context, form ProductForm) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	id := m.nextID
	m.nextID++
	m.products[id] = Product{
		ID:         id,
		Name:       form.Name,
		SupplierID: form.SupplierID,
		CategoryID: form.CategoryID,
		Price:      form.Price,
		Unit:       form.Unit,
	}
	return id, nil
}

func (m *mockRepository) Update(ctx context.Context, form ProductForm) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.products[form.ProductID]; !ok {
		// update_product on a missing row is a no-op, matching the store.
		return nil
	}
	m.products[form.ProductID] = Product{
		ID:         form.ProductID,
		Name:       form.Name,
		SupplierID: form.SupplierID,
		CategoryID: form.CategoryID,
		Price:      form.Price,
		Unit:       form.Unit,
	}
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, id int64) (int64, error) {
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}
	if _, ok := m.products[id]; !ok {
		return 0, nil
	}
	delete(m.products, id)
	return 1, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validForm() ProductForm {
	return ProductForm{
		Name:       "Widget",
		SupplierID: 1,
		CategoryID: 2,
		Price:      9.99,
		Unit:       "10 boxes",
	}
}

func TestListReturnsProducts(t *testing.T) {
	repo := newMockRepository()
	service := NewService(testLogger(), repo)

	_, err := service.Create(context.Background(), validForm())
	require.NoError(t, err)

	products := service.List(context.Background())
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)
}

func TestListDegradesToEmptyOnStoreFailure(t *testing.T) {
	repo := newMockRepository()
	repo.listErr = errors.New("connection refused")
	service := NewService(testLogger(), repo)

	products := service.List(context.Background())
	require.NotNil(t, products)
	assert.Empty(t, products)
}

func TestGetNotFound(t *testing.T) {
	service := NewService(testLogger(), newMockRepository())

	_, err := service.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetMapsStoreFailureToNotFound(t *testing.T) {
	repo := newMockRepository()
	repo.getErr = errors.New("connection refused")
	service := NewService(testLogger(), repo)

	_, err := service.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateAssignsIdentifier(t *testing.T) {
	repo := newMockRepository()
	service := NewService(testLogger(), repo)

	id, err := service.Create(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	stored, err := service.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Widget", stored.Name)
	assert.Equal(t, int64(1), stored.SupplierID)
	assert.Equal(t, int64(2), stored.CategoryID)
	assert.Equal(t, 9.99, stored.Price)
	assert.Equal(t, "10 boxes", stored.Unit)
}

func TestCreateRejectsEmptyName(t *testing.T) {
	service := NewService(testLogger(), newMockRepository())

	form := validForm()
	form.Name = "   "
	_, err := service.Create(context.Background(), form)
	assert.ErrorIs(t, err, httpx.ErrValidation)
}

func TestCreateRejectsNegativePrice(t *testing.T) {
	service := NewService(testLogger(), newMockRepository())

	form := validForm()
	form.Price = -1
	_, err := service.Create(context.Background(), form)
	assert.ErrorIs(t, err, httpx.ErrValidation)
}

func TestCreatePropagatesStoreFailure(t *testing.T) {
	repo := newMockRepository()
	repo.createErr = errors.New("connection refused")
	service := NewService(testLogger(), repo)

	_, err := service.Create(context.Background(), validForm())
	require.Error(t, err)
	assert.NotErrorIs(t, err, httpx.ErrValidation)
}

func TestUpdateRequiresIdentifier(t *testing.T) {
	service := NewService(testLogger(), newMockRepository())

	form := validForm()
	form.ProductID = 0
	err := service.Update(context.Background(), form)
	assert.ErrorIs(t, err, httpx.ErrValidation)
}

func TestUpdateIsIdempotent(t *testing.T) {
	repo := newMockRepository()
	service := NewService(testLogger(), repo)

	id, err := service.Create(context.Background(), validForm())
	require.NoError(t, err)

	form := validForm()
	form.ProductID = id
	form.Name = "Widget XL"
	form.Price = 12.50

	require.NoError(t, service.Update(context.Background(), form))
	first, err := service.Get(context.Background(), id)
	require.NoError(t, err)

	require.NoError(t, service.Update(context.Background(), form))
	second, err := service.Get(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "Widget XL", second.Name)
	assert.Equal(t, 12.50, second.Price)
}

func TestUpdatePropagatesStoreFailure(t *testing.T) {
	repo := newMockRepository()
	repo.updateErr = errors.New("connection refused")
	service := NewService(testLogger(), repo)

	form := validForm()
	form.ProductID = 1
	err := service.Update(context.Background(), form)
	require.Error(t, err)
	assert.NotErrorIs(t, err, httpx.ErrValidation)
}

func TestDeleteReportsAffectedRows(t *testing.T) {
	repo := newMockRepository()
	service := NewService(testLogger(), repo)

	id, err := service.Create(context.Background(), validForm())
	require.NoError(t, err)

	affected, err := service.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, affected)

	affected, err = service.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, affected)

	assert.Empty(t, service.List(context.Background()))
}

func TestDeletePropagatesStoreFailure(t *testing.T) {
	repo := newMockRepository()
	repo.deleteErr = errors.New("connection refused")
	service := NewService(testLogger(), repo)

	_, err := service.Delete(context.Background(), 1)
	assert.Error(t, err)
}
