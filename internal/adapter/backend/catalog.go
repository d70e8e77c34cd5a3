package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/niksmo/ecom-admin/internal/core/domain"
)

func listValues(q domain.ListQuery) url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page.Number))
	v.Set("limit", strconv.Itoa(q.Page.Size))
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}

func (c *Client) ListProducts(
	ctx context.Context, q domain.ProductQuery,
) (domain.List[domain.Product], error) {
	const op = "Client.ListProducts"

	v := listValues(q.ListQuery)
	if q.CategoryID != "" {
		v.Set("category", q.CategoryID)
	}

	var resp listResponse[productJSON]
	if err := c.getJSON(ctx, "/api/products?"+v.Encode(), &resp); err != nil {
		return domain.List[domain.Product]{}, fmt.Errorf("%s: %w", op, err)
	}
	return toList(resp, productJSON.toDomain), nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	const op = "Client.GetProduct"

	var resp productJSON
	if err := c.getJSON(ctx, "/api/products/"+url.PathEscape(id), &resp); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return resp.toDomain(), nil
}

func (c *Client) CreateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	const op = "Client.CreateProduct"

	var resp productJSON
	err := c.doJSON(ctx, http.MethodPost, "/api/products", fromProduct(p), &resp)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return resp.toDomain(), nil
}

func (c *Client) UpdateProduct(
	ctx context.Context, id string, p domain.Product,
) (domain.Product, error) {
	const op = "Client.UpdateProduct"

	var resp productJSON
	err := c.doJSON(
		ctx, http.MethodPut, "/api/products/"+url.PathEscape(id), fromProduct(p), &resp,
	)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return resp.toDomain(), nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	const op = "Client.DeleteProduct"

	err := c.doJSON(ctx, http.MethodDelete, "/api/products/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "Client.ListCategories"

	var resp []categoryJSON
	if err := c.getJSON(ctx, "/api/categories", &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cs := make([]domain.Category, len(resp))
	for i, w := range resp {
		cs[i] = w.toDomain()
	}
	return cs, nil
}

func (c *Client) CreateCategory(
	ctx context.Context, cat domain.Category,
) (domain.Category, error) {
	const op = "Client.CreateCategory"

	var resp categoryJSON
	err := c.doJSON(ctx, http.MethodPost, "/api/categories", fromCategory(cat), &resp)
	if err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	return resp.toDomain(), nil
}

func (c *Client) UpdateCategory(
	ctx context.Context, id string, cat domain.Category,
) (domain.Category, error) {
	const op = "Client.UpdateCategory"

	var resp categoryJSON
	err := c.doJSON(
		ctx, http.MethodPut, "/api/categories/"+url.PathEscape(id), fromCategory(cat), &resp,
	)
	if err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	return resp.toDomain(), nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	const op = "Client.DeleteCategory"

	err := c.doJSON(ctx, http.MethodDelete, "/api/categories/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
