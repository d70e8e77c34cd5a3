package domain

import (
	"testing"
	"time"

	"github.com/niksmo/ecom-admin/pkg/configtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderPending, OrderProcessing, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderShipped, false},
		{OrderProcessing, OrderShipped, true},
		{OrderProcessing, OrderCancelled, true},
		{OrderShipped, OrderDelivered, true},
		{OrderShipped, OrderCancelled, false},
		{OrderDelivered, OrderPending, false},
		{OrderCancelled, OrderProcessing, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestValidationError(t *testing.T) {
	err := Product{Price: ProductPrice{Amount: -1}, Stock: -2}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)

	var v *ValidationError
	require.ErrorAs(t, err, &v)
	assert.Len(t, v.Fields, 3)
	assert.Contains(t, err.Error(), "name is required")

	assert.NoError(t, Product{Name: "Shirt"}.Validate())
}

func TestCategoryValidate(t *testing.T) {
	assert.NoError(t, Category{ID: "c1", Name: "Shoes"}.Validate())
	assert.ErrorIs(t, Category{ID: "c1", Name: "Shoes", ParentID: "c1"}.Validate(), ErrInvalid)
}

func TestBulkEmailValidate(t *testing.T) {
	tests := []struct {
		name    string
		email   BulkEmail
		wantErr bool
	}{
		{"AllCustomers", BulkEmail{Subject: "Sale", Body: "<p>hi</p>", Audience: AudienceAll}, false},
		{"MissingSubject", BulkEmail{Body: "b", Audience: AudienceAll}, true},
		{"CustomWithoutRecipients", BulkEmail{Subject: "s", Body: "b", Audience: AudienceCustom}, true},
		{"CustomBadAddress", BulkEmail{Subject: "s", Body: "b", Audience: AudienceCustom, Recipients: []string{"nope"}}, true},
		{"CustomOK", BulkEmail{Subject: "s", Body: "b", Audience: AudienceCustom, Recipients: []string{"a@b.co"}}, false},
		{"UnknownAudience", BulkEmail{Subject: "s", Body: "b", Audience: "vip"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.email.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestExportRequestValidate(t *testing.T) {
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	assert.NoError(t, ExportRequest{Kind: ExportOrders, Format: FormatCSV, From: from, To: to}.Validate())
	assert.ErrorIs(t, ExportRequest{Kind: ExportOrders, Format: FormatCSV, From: to, To: from}.Validate(), ErrInvalid)
	assert.ErrorIs(t, ExportRequest{Kind: "invoices", Format: FormatCSV}.Validate(), ErrInvalid)
	assert.ErrorIs(t, ExportRequest{Kind: ExportOrders, Format: "pdf"}.Validate(), ErrInvalid)
}

func TestConfigChangeApply(t *testing.T) {
	doc := configtree.Document{"navigation": map[string]any{"links": []any{"a"}}}

	got := ConfigChange{Op: ConfigAppend, Path: "navigation.links", Value: "b"}.Apply(doc)
	v, _ := configtree.Get(got, "navigation.links")
	assert.Equal(t, []any{"a", "b"}, v)

	got = ConfigChange{Op: ConfigRemove, Path: "navigation.links", Index: 0}.Apply(got)
	v, _ = configtree.Get(got, "navigation.links")
	assert.Equal(t, []any{"b"}, v)

	got = ConfigChange{Op: ConfigSet, Path: "branding.name", Value: "Shop"}.Apply(got)
	v, _ = configtree.Get(got, "branding.name")
	assert.Equal(t, "Shop", v)

	assert.ErrorIs(t, ConfigChange{Op: "merge", Path: "a"}.Validate(), ErrInvalid)
	assert.ErrorIs(t, ConfigChange{Op: ConfigSet}.Validate(), ErrInvalid)
}

func TestPaymentDecision(t *testing.T) {
	assert.Equal(t, PaymentVerified, PaymentDecision{Approved: true}.Status())
	assert.Equal(t, PaymentRejected, PaymentDecision{}.Status())
	assert.ErrorIs(t, PaymentDecision{}.Validate(), ErrInvalid)
	assert.True(t, PaymentPending.Verifiable())
	assert.False(t, PaymentVerified.Verifiable())
}
