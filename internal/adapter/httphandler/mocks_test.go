package httphandler_test

import (
	"context"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/pkg/paginate"
	"github.com/stretchr/testify/mock"
)

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ListProducts(
	ctx context.Context, q domain.ProductQuery,
) (domain.List[domain.Product], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(domain.List[domain.Product]), args.Error(1)
}

func (m *MockAdminService) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockAdminService) CreateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockAdminService) UpdateProduct(
	ctx context.Context, id string, p domain.Product,
) (domain.Product, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockAdminService) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockAdminService) CreateCategory(
	ctx context.Context, c domain.Category,
) (domain.Category, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockAdminService) UpdateCategory(
	ctx context.Context, id string, c domain.Category,
) (domain.Category, error) {
	args := m.Called(ctx, id, c)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockAdminService) DeleteCategory(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminService) ListOrders(
	ctx context.Context, q domain.OrderQuery,
) (domain.List[domain.Order], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(domain.List[domain.Order]), args.Error(1)
}

func (m *MockAdminService) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockAdminService) UpdateOrderStatus(
	ctx context.Context, id string, s domain.OrderStatus,
) (domain.Order, error) {
	args := m.Called(ctx, id, s)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockAdminService) VerifyPayment(
	ctx context.Context, id string, d domain.PaymentDecision,
) (domain.Order, error) {
	args := m.Called(ctx, id, d)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockAdminService) ListCustomers(
	ctx context.Context, q domain.ListQuery,
) (domain.List[domain.Customer], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(domain.List[domain.Customer]), args.Error(1)
}

func (m *MockAdminService) GetCustomer(ctx context.Context, id string) (domain.Customer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Customer), args.Error(1)
}

func (m *MockAdminService) GetSiteConfig(ctx context.Context) (domain.SiteConfig, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.SiteConfig), args.Error(1)
}

func (m *MockAdminService) OpenDraft(ctx context.Context) (domain.ConfigDraft, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ConfigDraft), args.Error(1)
}

func (m *MockAdminService) ApplyDraftChange(
	ctx context.Context, c domain.ConfigChange,
) (domain.ConfigDraft, bool, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.ConfigDraft), args.Bool(1), args.Error(2)
}

func (m *MockAdminService) DiscardDraft(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockAdminService) PublishDraft(
	ctx context.Context, note string,
) (domain.SiteConfig, error) {
	args := m.Called(ctx, note)
	return args.Get(0).(domain.SiteConfig), args.Error(1)
}

func (m *MockAdminService) ExportSiteConfig(ctx context.Context) (domain.ConfigBackup, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ConfigBackup), args.Error(1)
}

func (m *MockAdminService) ImportSiteConfig(
	ctx context.Context, data []byte,
) (domain.ConfigDraft, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(domain.ConfigDraft), args.Error(1)
}

func (m *MockAdminService) ListRevisions(
	ctx context.Context, p paginate.Page,
) (domain.List[domain.ConfigRevision], error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.List[domain.ConfigRevision]), args.Error(1)
}

func (m *MockAdminService) RestoreRevision(
	ctx context.Context, id int64,
) (domain.ConfigDraft, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.ConfigDraft), args.Error(1)
}

func (m *MockAdminService) UploadImage(
	ctx context.Context, img domain.Image,
) (domain.UploadedImage, error) {
	args := m.Called(ctx, img)
	return args.Get(0).(domain.UploadedImage), args.Error(1)
}

func (m *MockAdminService) DeleteImage(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

func (m *MockAdminService) SendBulkEmail(
	ctx context.Context, e domain.BulkEmail,
) (domain.EmailResult, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(domain.EmailResult), args.Error(1)
}

func (m *MockAdminService) ExportReport(
	ctx context.Context, r domain.ExportRequest,
) (domain.Report, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(domain.Report), args.Error(1)
}

func (m *MockAdminService) SetProductFilter(ctx context.Context, f domain.ProductFilter) error {
	return m.Called(ctx, f).Error(0)
}

func (m *MockAdminService) IsProductBlocked(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}
