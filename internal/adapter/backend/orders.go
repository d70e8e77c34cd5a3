package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/niksmo/ecom-admin/internal/core/domain"
)

func (c *Client) ListOrders(
	ctx context.Context, q domain.OrderQuery,
) (domain.List[domain.Order], error) {
	const op = "Client.ListOrders"

	v := listValues(q.ListQuery)
	if q.Status != "" {
		v.Set("status", string(q.Status))
	}

	var resp listResponse[orderJSON]
	if err := c.getJSON(ctx, "/api/orders?"+v.Encode(), &resp); err != nil {
		return domain.List[domain.Order]{}, fmt.Errorf("%s: %w", op, err)
	}
	return toList(resp, orderJSON.toDomain), nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	const op = "Client.GetOrder"

	var resp orderJSON
	if err := c.getJSON(ctx, "/api/orders/"+url.PathEscape(id), &resp); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	return resp.toDomain(), nil
}

func (c *Client) UpdateOrderStatus(
	ctx context.Context, id string, s domain.OrderStatus,
) (domain.Order, error) {
	const op = "Client.UpdateOrderStatus"

	body := map[string]string{"status": string(s)}
	var resp orderJSON
	err := c.doJSON(
		ctx, http.MethodPatch, "/api/orders/"+url.PathEscape(id)+"/status", body, &resp,
	)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	return resp.toDomain(), nil
}

func (c *Client) VerifyPayment(
	ctx context.Context, id string, d domain.PaymentDecision,
) (domain.Order, error) {
	const op = "Client.VerifyPayment"

	body := struct {
		Approved bool   `json:"approved"`
		Status   string `json:"status"`
		Note     string `json:"note,omitempty"`
	}{d.Approved, string(d.Status()), d.Note}

	var resp orderJSON
	err := c.doJSON(
		ctx, http.MethodPost, "/api/orders/"+url.PathEscape(id)+"/verify-payment", body, &resp,
	)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	return resp.toDomain(), nil
}

func (c *Client) ListCustomers(
	ctx context.Context, q domain.ListQuery,
) (domain.List[domain.Customer], error) {
	const op = "Client.ListCustomers"

	var resp listResponse[customerJSON]
	if err := c.getJSON(ctx, "/api/customers?"+listValues(q).Encode(), &resp); err != nil {
		return domain.List[domain.Customer]{}, fmt.Errorf("%s: %w", op, err)
	}
	return toList(resp, customerJSON.toDomain), nil
}

func (c *Client) GetCustomer(ctx context.Context, id string) (domain.Customer, error) {
	const op = "Client.GetCustomer"

	var resp customerJSON
	if err := c.getJSON(ctx, "/api/customers/"+url.PathEscape(id), &resp); err != nil {
		return domain.Customer{}, fmt.Errorf("%s: %w", op, err)
	}
	return resp.toDomain(), nil
}
