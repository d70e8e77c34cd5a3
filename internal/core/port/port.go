package port

import (
	"context"
	"sync"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/pkg/paginate"
)

type (
	runnerContextWg interface {
		Run(context.Context, context.CancelFunc, *sync.WaitGroup)
	}

	closer interface {
		Close()
	}
)

// Inbound ports, driven by the admin HTTP API.

type ProductsManager interface {
	ListProducts(context.Context, domain.ProductQuery) (domain.List[domain.Product], error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	CreateProduct(context.Context, domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, id string, p domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type CategoriesManager interface {
	ListCategories(context.Context) ([]domain.Category, error)
	CreateCategory(context.Context, domain.Category) (domain.Category, error)
	UpdateCategory(ctx context.Context, id string, c domain.Category) (domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type OrdersManager interface {
	ListOrders(context.Context, domain.OrderQuery) (domain.List[domain.Order], error)
	GetOrder(ctx context.Context, id string) (domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, s domain.OrderStatus) (domain.Order, error)
	VerifyPayment(ctx context.Context, id string, d domain.PaymentDecision) (domain.Order, error)
}

type CustomersViewer interface {
	ListCustomers(context.Context, domain.ListQuery) (domain.List[domain.Customer], error)
	GetCustomer(ctx context.Context, id string) (domain.Customer, error)
}

type SiteConfigEditor interface {
	GetSiteConfig(context.Context) (domain.SiteConfig, error)
	OpenDraft(context.Context) (domain.ConfigDraft, error)
	ApplyDraftChange(context.Context, domain.ConfigChange) (draft domain.ConfigDraft, changed bool, err error)
	DiscardDraft(context.Context) error
	PublishDraft(ctx context.Context, note string) (domain.SiteConfig, error)
	ExportSiteConfig(context.Context) (domain.ConfigBackup, error)
	ImportSiteConfig(ctx context.Context, data []byte) (domain.ConfigDraft, error)
	ListRevisions(context.Context, paginate.Page) (domain.List[domain.ConfigRevision], error)
	RestoreRevision(ctx context.Context, id int64) (domain.ConfigDraft, error)
}

type ImagesManager interface {
	UploadImage(context.Context, domain.Image) (domain.UploadedImage, error)
	DeleteImage(ctx context.Context, url string) error
}

type EmailSender interface {
	SendBulkEmail(context.Context, domain.BulkEmail) (domain.EmailResult, error)
}

type ReportExporter interface {
	ExportReport(context.Context, domain.ExportRequest) (domain.Report, error)
}

type ProductFilterSetter interface {
	SetProductFilter(context.Context, domain.ProductFilter) error
	IsProductBlocked(ctx context.Context, productName string) (bool, error)
}

// Outbound ports.

type ProductsBackend interface {
	ListProducts(context.Context, domain.ProductQuery) (domain.List[domain.Product], error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	CreateProduct(context.Context, domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, id string, p domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type CategoriesBackend interface {
	ListCategories(context.Context) ([]domain.Category, error)
	CreateCategory(context.Context, domain.Category) (domain.Category, error)
	UpdateCategory(ctx context.Context, id string, c domain.Category) (domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type OrdersBackend interface {
	ListOrders(context.Context, domain.OrderQuery) (domain.List[domain.Order], error)
	GetOrder(ctx context.Context, id string) (domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, s domain.OrderStatus) (domain.Order, error)
	VerifyPayment(ctx context.Context, id string, d domain.PaymentDecision) (domain.Order, error)
}

type CustomersBackend interface {
	ListCustomers(context.Context, domain.ListQuery) (domain.List[domain.Customer], error)
	GetCustomer(ctx context.Context, id string) (domain.Customer, error)
}

type SiteConfigBackend interface {
	GetSiteConfig(context.Context) (domain.SiteConfig, error)
	SaveSiteConfig(context.Context, domain.SiteConfig) (domain.SiteConfig, error)
}

type ImagesBackend interface {
	UploadImage(context.Context, domain.Image) (domain.UploadedImage, error)
	DeleteImage(ctx context.Context, url string) error
}

type EmailBackend interface {
	SendBulkEmail(context.Context, domain.BulkEmail) (domain.EmailResult, error)
}

type ExportBackend interface {
	Export(context.Context, domain.ExportRequest) (domain.Report, error)
}

// Backend is the storefront REST API as a whole.
type Backend interface {
	ProductsBackend
	CategoriesBackend
	OrdersBackend
	CustomersBackend
	SiteConfigBackend
	ImagesBackend
	EmailBackend
	ExportBackend
}

type DraftsStorage interface {
	LoadDraft(ctx context.Context, editor string) (domain.ConfigDraft, error)
	SaveDraft(context.Context, domain.ConfigDraft) error
	DeleteDraft(ctx context.Context, editor string) error
}

type RevisionsStorage interface {
	AddRevision(context.Context, domain.ConfigRevision) (domain.ConfigRevision, error)
	ListRevisions(ctx context.Context, limit, offset int) (rs []domain.ConfigRevision, total int, err error)
	GetRevision(ctx context.Context, id int64) (domain.ConfigRevision, error)
}

type AdminEventsProducer interface {
	ProduceEvent(context.Context, domain.AdminEvent) error
}

type ProductFilterProducer interface {
	ProduceFilter(context.Context, domain.ProductFilter) error
}

type ProductFilterView interface {
	IsBlocked(productName string) (bool, error)
}

type Archiver interface {
	ArchiveConfig(ctx context.Context, backup []byte) (key string, err error)
	ArchiveReport(ctx context.Context, kind domain.ExportKind, r domain.Report) (key string, err error)
}

type ProductFilterProcessor interface {
	runnerContextWg
	closer
}
