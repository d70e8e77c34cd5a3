package httphandler

import (
	"net/http"

	"github.com/niksmo/ecom-admin/internal/core/port"
)

const healthPath = "/healthz"

// AdminService is everything the admin API drives.
type AdminService interface {
	port.ProductsManager
	port.CategoriesManager
	port.OrdersManager
	port.CustomersViewer
	port.SiteConfigEditor
	port.ImagesManager
	port.EmailSender
	port.ReportExporter
	port.ProductFilterSetter
}

type RouterConfig struct {
	Token         string
	MaxImageBytes int64
}

// NewRouter returns the admin API with its middleware applied.
func NewRouter(svc AdminService, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+healthPath, health)

	RegisterProducts(mux, svc)
	RegisterCategories(mux, svc)
	RegisterOrders(mux, svc)
	RegisterCustomers(mux, svc)
	RegisterSiteConfig(mux, svc)
	RegisterImages(mux, svc, cfg.MaxImageBytes)
	RegisterEmail(mux, svc)
	RegisterExport(mux, svc)
	RegisterFilter(mux, svc)

	return Chain(mux,
		LogRequests,
		RequireToken(cfg.Token),
		WithActor,
		AllowJSON,
	)
}

func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
