package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"time"

	"github.com/niksmo/ecom-admin/internal/core/domain"
)

const imagesPath = "/api/images"

func (c *Client) UploadImage(
	ctx context.Context, img domain.Image,
) (domain.UploadedImage, error) {
	const op = "Client.UploadImage"

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{
		"name":     "file",
		"filename": img.Filename,
	}))
	h.Set("Content-Type", img.ContentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return domain.UploadedImage{}, fmt.Errorf("%s: %w", op, err)
	}
	if _, err := part.Write(img.Data); err != nil {
		return domain.UploadedImage{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := mw.Close(); err != nil {
		return domain.UploadedImage{}, fmt.Errorf("%s: %w", op, err)
	}

	respBody, _, err := c.do(
		ctx, http.MethodPost, imagesPath, &body, mw.FormDataContentType(),
	)
	if err != nil {
		return domain.UploadedImage{}, fmt.Errorf("%s: %w", op, err)
	}

	var resp struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(respBody, &resp); err != nil || resp.URL == "" {
		return domain.UploadedImage{}, fmt.Errorf(
			"%s: %w: upload response has no url", op, domain.ErrUpstream,
		)
	}
	return domain.UploadedImage{URL: resp.URL}, nil
}

func (c *Client) DeleteImage(ctx context.Context, imageURL string) error {
	const op = "Client.DeleteImage"

	v := url.Values{"url": {imageURL}}
	if err := c.doJSON(ctx, http.MethodDelete, imagesPath+"?"+v.Encode(), nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) SendBulkEmail(
	ctx context.Context, e domain.BulkEmail,
) (domain.EmailResult, error) {
	const op = "Client.SendBulkEmail"

	body := bulkEmailJSON{
		Subject:    e.Subject,
		Body:       e.Body,
		Audience:   string(e.Audience),
		Recipients: e.Recipients,
	}

	var resp emailResultJSON
	if err := c.doJSON(ctx, http.MethodPost, "/api/email/bulk", body, &resp); err != nil {
		return domain.EmailResult{}, fmt.Errorf("%s: %w", op, err)
	}
	return domain.EmailResult(resp), nil
}

// Export downloads a report. The file name comes from Content-Disposition
// and falls back to "<kind>.<format>".
func (c *Client) Export(
	ctx context.Context, r domain.ExportRequest,
) (domain.Report, error) {
	const op = "Client.Export"

	v := url.Values{"format": {string(r.Format)}}
	if !r.From.IsZero() {
		v.Set("from", r.From.Format(time.DateOnly))
	}
	if !r.To.IsZero() {
		v.Set("to", r.To.Format(time.DateOnly))
	}
	path := "/api/export/" + url.PathEscape(string(r.Kind)) + "?" + v.Encode()

	data, header, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return domain.Report{}, fmt.Errorf("%s: %w", op, err)
	}

	report := domain.Report{
		Filename:    fmt.Sprintf("%s.%s", r.Kind, r.Format),
		ContentType: header.Get("Content-Type"),
		Data:        data,
	}
	if _, params, err := mime.ParseMediaType(header.Get("Content-Disposition")); err == nil {
		if name := params["filename"]; name != "" {
			report.Filename = name
		}
	}
	if report.ContentType == "" {
		report.ContentType = "application/octet-stream"
	}
	return report, nil
}
