package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mykyta-G/Webbshop/internal/catalog"
	"github.com/Mykyta-G/Webbshop/internal/domain"
)

type catalogMock struct {
	products []*domain.Product
	created  *domain.Product
	err      error
}

func (c *catalogMock) ListProducts(context.Context) ([]*domain.Product, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.products, nil
}

func (c *catalogMock) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	if c.err != nil {
		return nil, c.err
	}
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, catalog.ErrProductNotFound
}

func (c *catalogMock) CreateProduct(_ context.Context, p *domain.Product) (*domain.Product, error) {
	if c.err != nil {
		return nil, c.err
	}
	created := *p
	created.ID = 42
	c.created = &created
	return &created, nil
}

func (c *catalogMock) DeleteProduct(_ context.Context, id int64) error {
	if c.err != nil {
		return c.err
	}
	for _, p := range c.products {
		if p.ID == id {
			return nil
		}
	}
	return catalog.ErrProductNotFound
}

func newProductRouter(mock *catalogMock) http.Handler {
	handler := NewProductHandler(mock, 5*time.Second)
	r := chi.NewRouter()
	r.Get("/api/products", handler.List)
	r.Post("/api/products", handler.Create)
	r.Get("/api/products/{id}", handler.Get)
	r.Delete("/api/products/{id}", handler.Delete)
	return r
}

func TestListProducts_ReturnsArray(t *testing.T) {
	router := newProductRouter(&catalogMock{
		products: []*domain.Product{
			{ID: 1, Name: "Classic Spinner", Price: 99},
			{ID: 4, Name: "Glow Spinner", Price: 159},
		},
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/products", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	var products []domain.Product
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &products))
	require.Len(t, products, 2)
	assert.Equal(t, "Glow Spinner", products[1].Name)
}

func TestListProducts_EmptyCatalog_EmptyArrayNotNull(t *testing.T) {
	router := newProductRouter(&catalogMock{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/products", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())
}

func TestListProducts_CatalogUnavailable(t *testing.T) {
	router := newProductRouter(&catalogMock{err: catalog.ErrCatalogUnavailable})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/products", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestGetProduct_NotFoundBody(t *testing.T) {
	router := newProductRouter(&catalogMock{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/products/99", nil))

	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, recorder.Body.String())
}

func TestGetProduct_NonNumericID_NotFound(t *testing.T) {
	router := newProductRouter(&catalogMock{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/products/abc", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCreateProduct_Success(t *testing.T) {
	mock := &catalogMock{}
	router := newProductRouter(mock)

	body := bytes.NewBufferString(`{"name":"Comet Spinner","price":179,"color":"orange"}`)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("POST", "/api/products", body))

	require.Equal(t, http.StatusCreated, recorder.Code)
	var created domain.Product
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "Comet Spinner", created.Name)
}

func TestCreateProduct_MissingName_BadRequest(t *testing.T) {
	router := newProductRouter(&catalogMock{})

	body := bytes.NewBufferString(`{"price":179}`)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("POST", "/api/products", body))

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"error":"Missing required fields: name, price"}`, recorder.Body.String())
}

func TestCreateProduct_MissingPrice_BadRequest(t *testing.T) {
	router := newProductRouter(&catalogMock{})

	body := bytes.NewBufferString(`{"name":"Comet Spinner"}`)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("POST", "/api/products", body))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateProduct_StringPrice_BadRequest(t *testing.T) {
	router := newProductRouter(&catalogMock{})

	body := bytes.NewBufferString(`{"name":"Comet Spinner","price":"179"}`)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("POST", "/api/products", body))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDeleteProduct_NoContent(t *testing.T) {
	router := newProductRouter(&catalogMock{
		products: []*domain.Product{{ID: 1, Name: "Classic Spinner", Price: 99}},
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("DELETE", "/api/products/1", nil))

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}

func TestDeleteProduct_NotFound(t *testing.T) {
	router := newProductRouter(&catalogMock{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("DELETE", "/api/products/1", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
