package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
)

type OrdersHandler struct {
	svc port.OrdersManager
}

func RegisterOrders(mux *http.ServeMux, svc port.OrdersManager) {
	h := OrdersHandler{svc}
	mux.HandleFunc("GET /v1/orders", h.List)
	mux.HandleFunc("GET /v1/orders/{id}", h.Get)
	mux.HandleFunc("PATCH /v1/orders/{id}/status", h.UpdateStatus)
	mux.HandleFunc("POST /v1/orders/{id}/verify-payment", h.VerifyPayment)
}

func (h OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.List"
	log := slog.With("op", op)

	list, err := h.svc.ListOrders(r.Context(), domain.OrderQuery{
		ListQuery: listQuery(r),
		Status:    domain.OrderStatus(r.URL.Query().Get("status")),
	})
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, toListResponse(list, fromOrder))
}

func (h OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.Get"
	log := slog.With("op", op)

	o, err := h.svc.GetOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, fromOrder(o))
}

func (h OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.UpdateStatus"
	log := slog.With("op", op)

	var req OrderStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	o, err := h.svc.UpdateOrderStatus(
		r.Context(), r.PathValue("id"), domain.OrderStatus(req.Status),
	)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, fromOrder(o))
}

func (h OrdersHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.VerifyPayment"
	log := slog.With("op", op)

	var req PaymentDecisionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	o, err := h.svc.VerifyPayment(r.Context(), r.PathValue("id"), domain.PaymentDecision{
		Approved: req.Approved,
		Note:     req.Note,
	})
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, fromOrder(o))
}

type CustomersHandler struct {
	svc port.CustomersViewer
}

func RegisterCustomers(mux *http.ServeMux, svc port.CustomersViewer) {
	h := CustomersHandler{svc}
	mux.HandleFunc("GET /v1/customers", h.List)
	mux.HandleFunc("GET /v1/customers/{id}", h.Get)
}

func (h CustomersHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "CustomersHandler.List"
	log := slog.With("op", op)

	list, err := h.svc.ListCustomers(r.Context(), listQuery(r))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, toListResponse(list, func(c domain.Customer) Customer {
		return Customer(c)
	}))
}

func (h CustomersHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "CustomersHandler.Get"
	log := slog.With("op", op)

	c, err := h.svc.GetCustomer(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, Customer(c))
}
