package httphandler

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
	"github.com/niksmo/ecom-admin/pkg/paginate"
)

const backupFilename = "site-config.json"

type SiteConfigHandler struct {
	svc port.SiteConfigEditor
}

func RegisterSiteConfig(mux *http.ServeMux, svc port.SiteConfigEditor) {
	h := SiteConfigHandler{svc}
	mux.HandleFunc("GET /v1/site-config", h.Get)
	mux.HandleFunc("GET /v1/site-config/draft", h.OpenDraft)
	mux.HandleFunc("PATCH /v1/site-config/draft", h.ChangeDraft)
	mux.HandleFunc("DELETE /v1/site-config/draft", h.DiscardDraft)
	mux.HandleFunc("POST /v1/site-config/draft/publish", h.Publish)
	mux.HandleFunc("GET /v1/site-config/export", h.Export)
	mux.HandleFunc("POST /v1/site-config/import", h.Import)
	mux.HandleFunc("GET /v1/site-config/revisions", h.ListRevisions)
	mux.HandleFunc("POST /v1/site-config/revisions/{id}/restore", h.RestoreRevision)
}

func (h SiteConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "SiteConfigHandler.Get"
	log := slog.With("op", op)

	c, err := h.svc.GetSiteConfig(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, fromSiteConfig(c))
}

func (h SiteConfigHandler) OpenDraft(w http.ResponseWriter, r *http.Request) {
	const op = "SiteConfigHandler.OpenDraft"
	log := slog.With("op", op)

	d, err := h.svc.OpenDraft(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, fromDraft(d))
}

func (h SiteConfigHandler) ChangeDraft(w http.ResponseWriter, r *http.Request) {
	const op = "SiteConfigHandler.ChangeDraft"
	log := slog.With("op", op)

	var req ConfigChange
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	d, changed, err := h.svc.ApplyDraftChange(r.Context(), domain.ConfigChange{
		Op:    domain.ConfigOp(req.Op),
		Path:  req.Path,
		Value: req.Value,
		Index: req.Index,
	})
	if err != nil {
		writeError(w, log, err)
		return
	}

	resp := fromDraft(d)
	resp.Changed = &changed
	writeJSON(w, http.StatusOK, resp)
}

func (h SiteConfigHandler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	const op = "SiteConfigHandler.DiscardDraft"
	log := slog.With("op", op)

	if err := h.svc.DiscardDraft(r.Context()); err != nil {
		writeError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h SiteConfigHandler) Publish(w http.ResponseWriter, r *http.Request) {
	const op = "SiteConfigHandler.Publish"
	log := slog.With("op", op)

	var req PublishRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, log, err)
			return
		}
	}

	c, err := h.svc.PublishDraft(r.Context(), req.Note)
	if err != nil {
		writeError(w, log, err)
		return
	}
	log.Info("site config published", "actor", domain.ActorFrom(r.Context()))
	writeJSON(w, http.StatusOK, fromSiteConfig(c))
}

func (h SiteConfigHandler) Export(w http.ResponseWriter, r *http.Request) {
	const op = "SiteConfigHandler.Export"
	log := slog.With("op", op)

	b, err := h.svc.ExportSiteConfig(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}
	data, err := domain.MarshalBackup(b)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeAttachment(w, backupFilename, "application/json", data)
}

func (h SiteConfigHandler) Import(w http.ResponseWriter, r *http.Request) {
	const op = "SiteConfigHandler.Import"
	log := slog.With("op", op)

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	if err != nil {
		writeError(w, log, domain.Invalid("body", "is too large"))
		return
	}

	d, err := h.svc.ImportSiteConfig(r.Context(), data)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, fromDraft(d))
}

func (h SiteConfigHandler) ListRevisions(w http.ResponseWriter, r *http.Request) {
	const op = "SiteConfigHandler.ListRevisions"
	log := slog.With("op", op)

	list, err := h.svc.ListRevisions(r.Context(), paginate.FromQuery(r.URL.Query()))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, toListResponse(list, fromRevision))
}

func (h SiteConfigHandler) RestoreRevision(w http.ResponseWriter, r *http.Request) {
	const op = "SiteConfigHandler.RestoreRevision"
	log := slog.With("op", op)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, log, domain.Invalid("id", "must be a positive integer"))
		return
	}

	d, err := h.svc.RestoreRevision(r.Context(), id)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, fromDraft(d))
}

func writeAttachment(w http.ResponseWriter, filename, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write attachment", "op", "httphandler.writeAttachment", "err", err)
	}
}
