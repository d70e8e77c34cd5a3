package domain

import "time"

type ExportKind string

const (
	ExportProducts  ExportKind = "products"
	ExportOrders    ExportKind = "orders"
	ExportCustomers ExportKind = "customers"
)

type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatJSON ExportFormat = "json"
	FormatXLSX ExportFormat = "xlsx"
)

type ExportRequest struct {
	Kind   ExportKind
	Format ExportFormat
	From   time.Time
	To     time.Time
}

func (r ExportRequest) Validate() error {
	var v ValidationError
	switch r.Kind {
	case ExportProducts, ExportOrders, ExportCustomers:
	default:
		v.Add("kind", "must be one of products, orders, customers")
	}
	switch r.Format {
	case FormatCSV, FormatJSON, FormatXLSX:
	default:
		v.Add("format", "must be one of csv, json, xlsx")
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.From.After(r.To) {
		v.Add("from", "must not be after to")
	}
	return v.Err()
}

type Report struct {
	Filename    string
	ContentType string
	Data        []byte
	ArchivedAt  time.Time
}
