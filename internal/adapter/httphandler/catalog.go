package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
	"github.com/niksmo/ecom-admin/pkg/paginate"
)

type ProductsHandler struct {
	svc port.ProductsManager
}

func RegisterProducts(mux *http.ServeMux, svc port.ProductsManager) {
	h := ProductsHandler{svc}
	mux.HandleFunc("GET /v1/products", h.List)
	mux.HandleFunc("POST /v1/products", h.Create)
	mux.HandleFunc("GET /v1/products/{id}", h.Get)
	mux.HandleFunc("PUT /v1/products/{id}", h.Update)
	mux.HandleFunc("DELETE /v1/products/{id}", h.Delete)
}

func listQuery(r *http.Request) domain.ListQuery {
	q := r.URL.Query()
	return domain.ListQuery{
		Page:   paginate.FromQuery(q),
		Search: q.Get("search"),
	}
}

func (h ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.List"
	log := slog.With("op", op)

	list, err := h.svc.ListProducts(r.Context(), domain.ProductQuery{
		ListQuery:  listQuery(r),
		CategoryID: r.URL.Query().Get("category"),
	})
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, toListResponse(list, fromProduct))
}

func (h ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Get"
	log := slog.With("op", op)

	p, err := h.svc.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, fromProduct(p))
}

func (h ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Create"
	log := slog.With("op", op)

	var req Product
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	p, err := h.svc.CreateProduct(r.Context(), req.toDomain())
	if err != nil {
		writeError(w, log, err)
		return
	}
	log.Info("product created", "id", p.ID)
	writeJSON(w, http.StatusCreated, fromProduct(p))
}

func (h ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Update"
	log := slog.With("op", op)

	var req Product
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	p, err := h.svc.UpdateProduct(r.Context(), r.PathValue("id"), req.toDomain())
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, fromProduct(p))
}

func (h ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Delete"
	log := slog.With("op", op)

	if err := h.svc.DeleteProduct(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type CategoriesHandler struct {
	svc port.CategoriesManager
}

func RegisterCategories(mux *http.ServeMux, svc port.CategoriesManager) {
	h := CategoriesHandler{svc}
	mux.HandleFunc("GET /v1/categories", h.List)
	mux.HandleFunc("POST /v1/categories", h.Create)
	mux.HandleFunc("PUT /v1/categories/{id}", h.Update)
	mux.HandleFunc("DELETE /v1/categories/{id}", h.Delete)
}

func (h CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "CategoriesHandler.List"
	log := slog.With("op", op)

	cs, err := h.svc.ListCategories(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}

	resp := make([]Category, len(cs))
	for i := range cs {
		resp[i] = Category(cs[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "CategoriesHandler.Create"
	log := slog.With("op", op)

	var req Category
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	c, err := h.svc.CreateCategory(r.Context(), domain.Category(req))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusCreated, Category(c))
}

func (h CategoriesHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "CategoriesHandler.Update"
	log := slog.With("op", op)

	var req Category
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	c, err := h.svc.UpdateCategory(r.Context(), r.PathValue("id"), domain.Category(req))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, Category(c))
}

func (h CategoriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "CategoriesHandler.Delete"
	log := slog.With("op", op)

	if err := h.svc.DeleteCategory(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
