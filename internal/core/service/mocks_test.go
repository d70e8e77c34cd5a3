package service_test

import (
	"context"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) ListProducts(
	ctx context.Context, q domain.ProductQuery,
) (domain.List[domain.Product], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(domain.List[domain.Product]), args.Error(1)
}

func (m *MockBackend) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockBackend) CreateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockBackend) UpdateProduct(
	ctx context.Context, id string, p domain.Product,
) (domain.Product, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockBackend) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBackend) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockBackend) CreateCategory(
	ctx context.Context, c domain.Category,
) (domain.Category, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockBackend) UpdateCategory(
	ctx context.Context, id string, c domain.Category,
) (domain.Category, error) {
	args := m.Called(ctx, id, c)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockBackend) DeleteCategory(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBackend) ListOrders(
	ctx context.Context, q domain.OrderQuery,
) (domain.List[domain.Order], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(domain.List[domain.Order]), args.Error(1)
}

func (m *MockBackend) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockBackend) UpdateOrderStatus(
	ctx context.Context, id string, s domain.OrderStatus,
) (domain.Order, error) {
	args := m.Called(ctx, id, s)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockBackend) VerifyPayment(
	ctx context.Context, id string, d domain.PaymentDecision,
) (domain.Order, error) {
	args := m.Called(ctx, id, d)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockBackend) ListCustomers(
	ctx context.Context, q domain.ListQuery,
) (domain.List[domain.Customer], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(domain.List[domain.Customer]), args.Error(1)
}

func (m *MockBackend) GetCustomer(ctx context.Context, id string) (domain.Customer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Customer), args.Error(1)
}

func (m *MockBackend) GetSiteConfig(ctx context.Context) (domain.SiteConfig, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.SiteConfig), args.Error(1)
}

func (m *MockBackend) SaveSiteConfig(
	ctx context.Context, c domain.SiteConfig,
) (domain.SiteConfig, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.SiteConfig), args.Error(1)
}

func (m *MockBackend) UploadImage(
	ctx context.Context, img domain.Image,
) (domain.UploadedImage, error) {
	args := m.Called(ctx, img)
	return args.Get(0).(domain.UploadedImage), args.Error(1)
}

func (m *MockBackend) DeleteImage(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

func (m *MockBackend) SendBulkEmail(
	ctx context.Context, e domain.BulkEmail,
) (domain.EmailResult, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(domain.EmailResult), args.Error(1)
}

func (m *MockBackend) Export(
	ctx context.Context, r domain.ExportRequest,
) (domain.Report, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(domain.Report), args.Error(1)
}

type MockDrafts struct {
	mock.Mock
}

func (m *MockDrafts) LoadDraft(ctx context.Context, editor string) (domain.ConfigDraft, error) {
	args := m.Called(ctx, editor)
	return args.Get(0).(domain.ConfigDraft), args.Error(1)
}

func (m *MockDrafts) SaveDraft(ctx context.Context, d domain.ConfigDraft) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDrafts) DeleteDraft(ctx context.Context, editor string) error {
	return m.Called(ctx, editor).Error(0)
}

type MockRevisions struct {
	mock.Mock
}

func (m *MockRevisions) AddRevision(
	ctx context.Context, r domain.ConfigRevision,
) (domain.ConfigRevision, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(domain.ConfigRevision), args.Error(1)
}

func (m *MockRevisions) ListRevisions(
	ctx context.Context, limit, offset int,
) ([]domain.ConfigRevision, int, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.ConfigRevision), args.Int(1), args.Error(2)
}

func (m *MockRevisions) GetRevision(ctx context.Context, id int64) (domain.ConfigRevision, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.ConfigRevision), args.Error(1)
}

type MockEvents struct {
	mock.Mock
}

func (m *MockEvents) ProduceEvent(ctx context.Context, e domain.AdminEvent) error {
	return m.Called(ctx, e).Error(0)
}

type MockFilterProducer struct {
	mock.Mock
}

func (m *MockFilterProducer) ProduceFilter(ctx context.Context, pf domain.ProductFilter) error {
	return m.Called(ctx, pf).Error(0)
}

type MockFilterView struct {
	mock.Mock
}

func (m *MockFilterView) IsBlocked(productName string) (bool, error) {
	args := m.Called(productName)
	return args.Bool(0), args.Error(1)
}

type MockArchiver struct {
	mock.Mock
}

func (m *MockArchiver) ArchiveConfig(ctx context.Context, backup []byte) (string, error) {
	args := m.Called(ctx, backup)
	return args.String(0), args.Error(1)
}

func (m *MockArchiver) ArchiveReport(
	ctx context.Context, kind domain.ExportKind, r domain.Report,
) (string, error) {
	args := m.Called(ctx, kind, r)
	return args.String(0), args.Error(1)
}
