package apiclient

import (
	"context"
	"net/http"
)

// resource operaciones CRUD genéricas contra /api/<kind>. Los servicios
// tipados lo envuelven fijando el tipo de parámetros de cada colección.
type resource[T any] struct {
	c    *Client
	path string
}

func (r resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.c.do(ctx, http.MethodGet, r.path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r resource[T]) Get(ctx context.Context, id string) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodGet, r.path+"/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r resource[T]) Create(ctx context.Context, params any) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPost, r.path, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r resource[T]) Update(ctx context.Context, id string, params any) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPut, r.path+"/"+id, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r resource[T]) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, r.path+"/"+id, nil, nil)
}

// SalesmenService operaciones sobre /api/salesmen.
type SalesmenService struct {
	res resource[Salesman]
}

func (s *SalesmenService) List(ctx context.Context) ([]Salesman, error) { return s.res.List(ctx) }
func (s *SalesmenService) Get(ctx context.Context, id string) (*Salesman, error) {
	return s.res.Get(ctx, id)
}
func (s *SalesmenService) Create(ctx context.Context, p SalesmanParams) (*Salesman, error) {
	return s.res.Create(ctx, p)
}
func (s *SalesmenService) Update(ctx context.Context, id string, p SalesmanParams) (*Salesman, error) {
	return s.res.Update(ctx, id, p)
}
func (s *SalesmenService) Delete(ctx context.Context, id string) error { return s.res.Delete(ctx, id) }

// NewScreen construye la pantalla de vendedores con su espejo vacío.
func (s *SalesmenService) NewScreen() *Screen[Salesman] {
	return NewScreen[Salesman](s.res, func(x Salesman) string { return x.ID })
}

// ClientsService operaciones sobre /api/clients.
type ClientsService struct {
	res resource[ClientRecord]
}

func (s *ClientsService) List(ctx context.Context) ([]ClientRecord, error) { return s.res.List(ctx) }
func (s *ClientsService) Get(ctx context.Context, id string) (*ClientRecord, error) {
	return s.res.Get(ctx, id)
}
func (s *ClientsService) Create(ctx context.Context, p ClientParams) (*ClientRecord, error) {
	return s.res.Create(ctx, p)
}
func (s *ClientsService) Update(ctx context.Context, id string, p ClientParams) (*ClientRecord, error) {
	return s.res.Update(ctx, id, p)
}
func (s *ClientsService) Delete(ctx context.Context, id string) error { return s.res.Delete(ctx, id) }

// NewScreen construye la pantalla de clientes con su espejo vacío.
func (s *ClientsService) NewScreen() *Screen[ClientRecord] {
	return NewScreen[ClientRecord](s.res, func(x ClientRecord) string { return x.ID })
}

// ProductsService operaciones sobre /api/products.
type ProductsService struct {
	res resource[Product]
}

func (s *ProductsService) List(ctx context.Context) ([]Product, error) { return s.res.List(ctx) }
func (s *ProductsService) Get(ctx context.Context, id string) (*Product, error) {
	return s.res.Get(ctx, id)
}
func (s *ProductsService) Create(ctx context.Context, p ProductParams) (*Product, error) {
	return s.res.Create(ctx, p)
}
func (s *ProductsService) Update(ctx context.Context, id string, p ProductParams) (*Product, error) {
	return s.res.Update(ctx, id, p)
}
func (s *ProductsService) Delete(ctx context.Context, id string) error { return s.res.Delete(ctx, id) }

// NewScreen construye la pantalla de productos con su espejo vacío.
func (s *ProductsService) NewScreen() *Screen[Product] {
	return NewScreen[Product](s.res, func(x Product) string { return x.ID })
}

// CategoriesService operaciones sobre /api/categories.
type CategoriesService struct {
	res resource[Category]
}

func (s *CategoriesService) List(ctx context.Context) ([]Category, error) { return s.res.List(ctx) }
func (s *CategoriesService) Get(ctx context.Context, id string) (*Category, error) {
	return s.res.Get(ctx, id)
}
func (s *CategoriesService) Create(ctx context.Context, p CategoryParams) (*Category, error) {
	return s.res.Create(ctx, p)
}
func (s *CategoriesService) Update(ctx context.Context, id string, p CategoryParams) (*Category, error) {
	return s.res.Update(ctx, id, p)
}
func (s *CategoriesService) Delete(ctx context.Context, id string) error { return s.res.Delete(ctx, id) }

// NewScreen construye la pantalla de categorías con su espejo vacío.
func (s *CategoriesService) NewScreen() *Screen[Category] {
	return NewScreen[Category](s.res, func(x Category) string { return x.ID })
}
