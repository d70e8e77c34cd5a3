package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/niksmo/ecom-admin/internal/core/domain"
)

const siteConfigPath = "/api/site-config"

func (c *Client) GetSiteConfig(ctx context.Context) (domain.SiteConfig, error) {
	const op = "Client.GetSiteConfig"

	var resp siteConfigJSON
	if err := c.getJSON(ctx, siteConfigPath, &resp); err != nil {
		return domain.SiteConfig{}, fmt.Errorf("%s: %w", op, err)
	}
	return resp.toDomain(), nil
}

// SaveSiteConfig replaces the whole live configuration.
func (c *Client) SaveSiteConfig(
	ctx context.Context, cfg domain.SiteConfig,
) (domain.SiteConfig, error) {
	const op = "Client.SaveSiteConfig"

	body := siteConfigJSON{Config: cfg.Document, Version: cfg.Version}
	if body.Config == nil {
		body.Config = map[string]any{}
	}

	var resp siteConfigJSON
	if err := c.doJSON(ctx, http.MethodPut, siteConfigPath, body, &resp); err != nil {
		return domain.SiteConfig{}, fmt.Errorf("%s: %w", op, err)
	}
	if resp.Config == nil {
		resp.Config = body.Config
		resp.Version = body.Version
	}
	return resp.toDomain(), nil
}
