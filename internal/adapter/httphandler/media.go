package httphandler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
)

const (
	imagesPath     = "/v1/images"
	imageFormField = "file"

	// multipart framing on top of the image itself
	uploadOverhead = 64 << 10
)

type ImagesHandler struct {
	svc      port.ImagesManager
	maxBytes int64
}

// RegisterImages mounts the image routes. Upload bodies larger than
// maxBytes are cut off before they reach the service.
func RegisterImages(mux *http.ServeMux, svc port.ImagesManager, maxBytes int64) {
	h := ImagesHandler{svc, maxBytes}
	mux.HandleFunc("POST "+imagesPath, h.Upload)
	mux.HandleFunc("DELETE "+imagesPath, h.Delete)
}

func (h ImagesHandler) Upload(w http.ResponseWriter, r *http.Request) {
	const op = "ImagesHandler.Upload"
	log := slog.With("op", op)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+uploadOverhead)
	f, fh, err := r.FormFile(imageFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, log, domain.Invalid(imageFormField, "is too large"))
			return
		}
		writeError(w, log, domain.Invalid(imageFormField, "is required"))
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn("failed to close uploaded file", "err", err)
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		writeError(w, log, domain.Invalid(imageFormField, "cannot be read"))
		return
	}

	img, err := h.svc.UploadImage(r.Context(), domain.Image{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Data:        data,
	})
	if err != nil {
		writeError(w, log, err)
		return
	}
	log.Info("image uploaded", "url", img.URL, "size", fh.Size)
	writeJSON(w, http.StatusCreated, UploadedImage(img))
}

func (h ImagesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "ImagesHandler.Delete"
	log := slog.With("op", op)

	if err := h.svc.DeleteImage(r.Context(), r.URL.Query().Get("url")); err != nil {
		writeError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type EmailHandler struct {
	svc port.EmailSender
}

func RegisterEmail(mux *http.ServeMux, svc port.EmailSender) {
	h := EmailHandler{svc}
	mux.HandleFunc("POST /v1/email/bulk", h.SendBulk)
}

func (h EmailHandler) SendBulk(w http.ResponseWriter, r *http.Request) {
	const op = "EmailHandler.SendBulk"
	log := slog.With("op", op)

	var req BulkEmailRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	res, err := h.svc.SendBulkEmail(r.Context(), domain.BulkEmail{
		Subject:    req.Subject,
		Body:       req.Body,
		Audience:   domain.Audience(req.Audience),
		Recipients: req.Recipients,
	})
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, EmailResult{
		Sent:   res.Sent,
		Failed: res.Failed,
		Errors: nonNil(res.Errors),
	})
}

type ExportHandler struct {
	svc port.ReportExporter
}

func RegisterExport(mux *http.ServeMux, svc port.ReportExporter) {
	h := ExportHandler{svc}
	mux.HandleFunc("GET /v1/export/{kind}", h.Export)
}

func (h ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	const op = "ExportHandler.Export"
	log := slog.With("op", op)

	q := r.URL.Query()
	req := domain.ExportRequest{
		Kind:   domain.ExportKind(r.PathValue("kind")),
		Format: domain.ExportFormat(q.Get("format")),
	}
	if req.Format == "" {
		req.Format = domain.FormatCSV
	}

	var v domain.ValidationError
	req.From = parseDate(q.Get("from"), "from", &v)
	req.To = parseDate(q.Get("to"), "to", &v)
	if err := v.Err(); err != nil {
		writeError(w, log, err)
		return
	}

	rep, err := h.svc.ExportReport(r.Context(), req)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeAttachment(w, rep.Filename, rep.ContentType, rep.Data)
}

func parseDate(s, field string, v *domain.ValidationError) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		v.Add(field, "must be a date in YYYY-MM-DD format")
	}
	return t
}

type FilterHandler struct {
	svc port.ProductFilterSetter
}

func RegisterFilter(mux *http.ServeMux, svc port.ProductFilterSetter) {
	h := FilterHandler{svc}
	mux.HandleFunc("POST /v1/filter/product", h.SetProductFilter)
	mux.HandleFunc("GET /v1/filter/product", h.Status)
}

func (h FilterHandler) SetProductFilter(w http.ResponseWriter, r *http.Request) {
	const op = "FilterHandler.SetProductFilter"
	log := slog.With("op", op)

	var req FilterRule
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	err := h.svc.SetProductFilter(r.Context(), domain.ProductFilter{
		ProductName: req.Name,
		Blocked:     req.Blocked,
	})
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusAccepted, req)
}

func (h FilterHandler) Status(w http.ResponseWriter, r *http.Request) {
	const op = "FilterHandler.Status"
	log := slog.With("op", op)

	name := r.URL.Query().Get("name")
	blocked, err := h.svc.IsProductBlocked(r.Context(), name)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, FilterRule{Name: name, Blocked: blocked})
}
