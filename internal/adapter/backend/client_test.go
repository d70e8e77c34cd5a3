package backend

import (
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/pkg/configtree"
	"github.com/niksmo/ecom-admin/pkg/paginate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHandler captures the incoming request and returns a canned response.
type testHandler struct {
	method      string
	path        string
	query       string
	body        string
	contentType string
	auth        string
	calls       atomic.Int32

	statusCode   int
	header       map[string]string
	responseBody string
}

func (h *testHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.calls.Add(1)
	h.method = r.Method
	h.path = r.URL.Path
	h.query = r.URL.RawQuery
	h.contentType = r.Header.Get("Content-Type")
	h.auth = r.Header.Get("Authorization")
	if r.Body != nil {
		data, _ := io.ReadAll(r.Body)
		h.body = string(data)
	}

	w.Header().Set("Content-Type", "application/json")
	for k, v := range h.header {
		w.Header().Set(k, v)
	}
	if h.statusCode != 0 {
		w.WriteHeader(h.statusCode)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	if h.responseBody != "" {
		_, _ = w.Write([]byte(h.responseBody))
	}
}

func newTestClient(t *testing.T, h http.Handler, opts ...Opt) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", opts...)
}

func TestClient_ListProducts(t *testing.T) {
	h := &testHandler{responseBody: `{
		"items": [{"id": "p1", "name": "Shirt", "price": 19.9, "currency": "USD",
			"compare_at_price": 25, "stock": 3,
			"sizes": [{"size": "M", "stock": 2}],
			"images": [{"url": "/uploads/a.png", "alt": "front"}]}],
		"total": 41, "page": 2, "limit": 20
	}`}
	c := newTestClient(t, h, TokenOpt("secret"))

	got, err := c.ListProducts(t.Context(), domain.ProductQuery{
		ListQuery:  domain.ListQuery{Page: paginate.New(2, 20, 0), Search: "shi rt"},
		CategoryID: "c1",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, h.method)
	assert.Equal(t, "/api/products", h.path)
	assert.Equal(t, "category=c1&limit=20&page=2&search=shi+rt", h.query)
	assert.Equal(t, "Bearer secret", h.auth)

	require.Len(t, got.Items, 1)
	p := got.Items[0]
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, domain.ProductPrice{Amount: 19.9, Currency: "USD"}, p.Price)
	require.NotNil(t, p.CompareAtPrice)
	assert.Equal(t, 25.0, p.CompareAtPrice.Amount)
	assert.Equal(t, []domain.SizeVariant{{Size: "M", Stock: 2}}, p.Sizes)
	assert.Equal(t, "front", p.Images[0].Alt)
	assert.Equal(t, 41, got.Page.Total)
	assert.Equal(t, 3, got.Page.TotalPages())
}

func TestClient_CreateProduct(t *testing.T) {
	h := &testHandler{
		statusCode:   http.StatusCreated,
		responseBody: `{"id": "p9", "name": "Shirt", "price": 10}`,
	}
	c := newTestClient(t, h)

	got, err := c.CreateProduct(t.Context(), domain.Product{
		Name:  "Shirt",
		Price: domain.ProductPrice{Amount: 10, Currency: "USD"},
		Tags:  []string{"summer"},
	})
	require.NoError(t, err)
	assert.Equal(t, "p9", got.ID)

	assert.Equal(t, http.MethodPost, h.method)
	assert.Equal(t, "application/json", h.contentType)

	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(h.body), &sent))
	assert.Equal(t, "Shirt", sent["name"])
	assert.Equal(t, 10.0, sent["price"])
	assert.Equal(t, []any{"summer"}, sent["tags"])
	assert.NotContains(t, sent, "id")
	assert.NotContains(t, sent, "created_at")
}

func TestClient_DeleteProduct(t *testing.T) {
	h := &testHandler{statusCode: http.StatusNoContent}
	c := newTestClient(t, h)

	require.NoError(t, c.DeleteProduct(t.Context(), "a/b"))
	assert.Equal(t, http.MethodDelete, h.method)
	assert.Equal(t, "/api/products/a/b", h.path)
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
		msg    string
	}{
		{"NotFound", http.StatusNotFound, `{"error": "product not found"}`, domain.ErrNotFound, "product not found"},
		{"BadRequest", http.StatusBadRequest, `{"message": "name is required"}`, domain.ErrInvalid, "name is required"},
		{"Unprocessable", http.StatusUnprocessableEntity, `{"error": "bad price"}`, domain.ErrInvalid, "bad price"},
		{"Conflict", http.StatusConflict, `{"error": "slug taken"}`, domain.ErrConflict, "slug taken"},
		{"ServerError", http.StatusInternalServerError, `boom`, domain.ErrUpstream, "boom"},
		{"Unauthorized", http.StatusUnauthorized, ``, domain.ErrUpstream, "Unauthorized"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &testHandler{statusCode: tt.status, responseBody: tt.body}
			c := newTestClient(t, h)

			_, err := c.GetProduct(t.Context(), "p1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.msg, apiErr.Message)
		})
	}
}

func TestClient_RetryGET(t *testing.T) {
	t.Run("RetriesServerErrors", func(t *testing.T) {
		h := &testHandler{statusCode: http.StatusBadGateway, responseBody: `{"error":"down"}`}
		c := newTestClient(t, h, MaxAttemptsOpt(2))

		_, err := c.GetOrder(t.Context(), "o1")
		assert.ErrorIs(t, err, domain.ErrUpstream)
		assert.Equal(t, int32(2), h.calls.Load())
	})

	t.Run("NoRetryOnClientErrors", func(t *testing.T) {
		h := &testHandler{statusCode: http.StatusNotFound}
		c := newTestClient(t, h, MaxAttemptsOpt(3))

		_, err := c.GetOrder(t.Context(), "o1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, int32(1), h.calls.Load())
	})

	t.Run("NoRetryOnMutations", func(t *testing.T) {
		h := &testHandler{statusCode: http.StatusServiceUnavailable}
		c := newTestClient(t, h, MaxAttemptsOpt(3))

		_, err := c.UpdateOrderStatus(t.Context(), "o1", domain.OrderShipped)
		assert.ErrorIs(t, err, domain.ErrUpstream)
		assert.Equal(t, int32(1), h.calls.Load())
	})
}

func TestClient_Orders(t *testing.T) {
	order := `{"id": "o1", "order_number": "A-100", "status": "shipped",
		"payment": {"method": "bank_transfer", "status": "verified"},
		"items": [{"product_id": "p1", "name": "Shirt", "quantity": 2, "unit_price": 10}]}`

	t.Run("UpdateStatus", func(t *testing.T) {
		h := &testHandler{responseBody: order}
		c := newTestClient(t, h)

		got, err := c.UpdateOrderStatus(t.Context(), "o1", domain.OrderShipped)
		require.NoError(t, err)
		assert.Equal(t, http.MethodPatch, h.method)
		assert.Equal(t, "/api/orders/o1/status", h.path)
		assert.JSONEq(t, `{"status":"shipped"}`, h.body)
		assert.Equal(t, domain.OrderShipped, got.Status)
		assert.Equal(t, 2, got.Items[0].Quantity)
	})

	t.Run("VerifyPayment", func(t *testing.T) {
		h := &testHandler{responseBody: order}
		c := newTestClient(t, h)

		got, err := c.VerifyPayment(t.Context(), "o1", domain.PaymentDecision{
			Approved: false, Note: "amount mismatch",
		})
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, h.method)
		assert.Equal(t, "/api/orders/o1/verify-payment", h.path)
		assert.JSONEq(t,
			`{"approved":false,"status":"rejected","note":"amount mismatch"}`, h.body)
		assert.Equal(t, domain.PaymentVerified, got.Payment.Status)
	})

	t.Run("ListByStatus", func(t *testing.T) {
		h := &testHandler{responseBody: `{"items": [], "total": 0, "page": 1, "limit": 20}`}
		c := newTestClient(t, h)

		got, err := c.ListOrders(t.Context(), domain.OrderQuery{
			ListQuery: domain.ListQuery{Page: paginate.New(0, 0, 0)},
			Status:    domain.OrderPending,
		})
		require.NoError(t, err)
		assert.Equal(t, "limit=20&page=1&status=pending", h.query)
		assert.Empty(t, got.Items)
	})
}

func TestClient_SiteConfig(t *testing.T) {
	t.Run("GetKeepsNumbers", func(t *testing.T) {
		h := &testHandler{responseBody: `{"config": {"shipping": {"flat_rate": 4.50,
			"free_over": 100}}, "version": 1, "updated_at": "2026-03-01T10:00:00Z"}`}
		c := newTestClient(t, h)

		got, err := c.GetSiteConfig(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "/api/site-config", h.path)
		assert.Equal(t, 1, got.Version)

		v, ok := configtree.Get(got.Document, "shipping.flat_rate")
		require.True(t, ok)
		assert.Equal(t, json.Number("4.50"), v)
	})

	t.Run("Save", func(t *testing.T) {
		h := &testHandler{responseBody: `{"config": {"a": 1}, "version": 1}`}
		c := newTestClient(t, h)

		doc := configtree.Document{"a": json.Number("1")}
		got, err := c.SaveSiteConfig(t.Context(), domain.SiteConfig{Document: doc, Version: 1})
		require.NoError(t, err)
		assert.Equal(t, http.MethodPut, h.method)
		assert.JSONEq(t, `{"config":{"a":1},"version":1}`, h.body)
		assert.Equal(t, doc, got.Document)
	})

	t.Run("SaveNoContent", func(t *testing.T) {
		h := &testHandler{statusCode: http.StatusNoContent}
		c := newTestClient(t, h)

		doc := configtree.Document{"a": "b"}
		got, err := c.SaveSiteConfig(t.Context(), domain.SiteConfig{Document: doc, Version: 1})
		require.NoError(t, err)
		assert.Equal(t, doc, got.Document)
		assert.Equal(t, 1, got.Version)
	})
}

func TestClient_UploadImage(t *testing.T) {
	var (
		gotName, gotType string
		gotData          []byte
	)
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/images", func(w http.ResponseWriter, r *http.Request) {
		mt, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mt != "multipart/form-data" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		part, err := multipart.NewReader(r.Body, params["boundary"]).NextPart()
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		gotName = part.FileName()
		gotType = part.Header.Get("Content-Type")
		gotData, _ = io.ReadAll(part)
		_, _ = w.Write([]byte(`{"url": "/uploads/logo.png"}`))
	})
	c := newTestClient(t, mux)

	got, err := c.UploadImage(t.Context(), domain.Image{
		Filename: "logo.png", ContentType: "image/png", Size: 3, Data: []byte{1, 2, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/logo.png", got.URL)
	assert.Equal(t, "logo.png", gotName)
	assert.Equal(t, "image/png", gotType)
	assert.Equal(t, []byte{1, 2, 3}, gotData)
}

func TestClient_DeleteImage(t *testing.T) {
	h := &testHandler{statusCode: http.StatusNoContent}
	c := newTestClient(t, h)

	require.NoError(t, c.DeleteImage(t.Context(), "/uploads/a b.png"))
	assert.Equal(t, "/api/images", h.path)
	assert.Equal(t, "url=%2Fuploads%2Fa+b.png", h.query)
}

func TestClient_SendBulkEmail(t *testing.T) {
	h := &testHandler{responseBody: `{"sent": 2, "failed": 1, "errors": ["x@y.z: bounced"]}`}
	c := newTestClient(t, h)

	got, err := c.SendBulkEmail(t.Context(), domain.BulkEmail{
		Subject: "Sale", Body: "<p>hi</p>", Audience: domain.AudienceAll,
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/email/bulk", h.path)
	assert.JSONEq(t, `{"subject":"Sale","body":"<p>hi</p>","audience":"all"}`, h.body)
	assert.Equal(t, domain.EmailResult{Sent: 2, Failed: 1, Errors: []string{"x@y.z: bounced"}}, got)
}

func TestClient_Export(t *testing.T) {
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	req := domain.ExportRequest{
		Kind: domain.ExportOrders, Format: domain.FormatCSV, From: from, To: from.AddDate(0, 1, 0),
	}

	t.Run("FilenameFromHeader", func(t *testing.T) {
		h := &testHandler{
			header: map[string]string{
				"Content-Type":        "text/csv",
				"Content-Disposition": `attachment; filename="orders-2026-02.csv"`,
			},
			responseBody: "id,total\no1,10\n",
		}
		c := newTestClient(t, h)

		got, err := c.Export(t.Context(), req)
		require.NoError(t, err)
		assert.Equal(t, "/api/export/orders", h.path)
		assert.Equal(t, "format=csv&from=2026-02-01&to=2026-03-01", h.query)
		assert.Equal(t, "orders-2026-02.csv", got.Filename)
		assert.Equal(t, "text/csv", got.ContentType)
		assert.True(t, strings.HasPrefix(string(got.Data), "id,total"))
	})

	t.Run("DefaultFilename", func(t *testing.T) {
		h := &testHandler{responseBody: "[]"}
		c := newTestClient(t, h)

		got, err := c.Export(t.Context(), domain.ExportRequest{
			Kind: domain.ExportProducts, Format: domain.FormatJSON,
		})
		require.NoError(t, err)
		assert.Equal(t, "products.json", got.Filename)
		assert.Equal(t, "format=json", h.query)
	})
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := New(srv.URL)

	_, err := c.ListCategories(t.Context())
	assert.ErrorIs(t, err, domain.ErrUpstream)
}
