package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/niksmo/ecom-admin/pkg/configtree"
)

type backupFile struct {
	Version    int                 `json:"version"`
	ExportedAt time.Time           `json:"exported_at"`
	Config     configtree.Document `json:"config"`
}

// MarshalBackup encodes b as the indented JSON backup file.
func MarshalBackup(b ConfigBackup) ([]byte, error) {
	return json.MarshalIndent(backupFile{
		Version:    b.Version,
		ExportedAt: b.ExportedAt.UTC(),
		Config:     configtree.Clone(b.Config),
	}, "", "  ")
}

// UnmarshalBackup decodes a backup file.
//
// A file without both a "version" number and a "config" object is taken to be
// the configuration itself. Numbers are kept as [json.Number] so they round-trip unchanged.
func UnmarshalBackup(data []byte) (ConfigBackup, error) {
	root, err := DecodeDocument(data)
	if err != nil {
		return ConfigBackup{}, err
	}

	cfg, isObject := root["config"].(map[string]any)
	version, isNumber := root["version"].(json.Number)
	if !isObject || !isNumber {
		return ConfigBackup{Version: SiteConfigVersion, Config: root}, nil
	}

	b := ConfigBackup{Version: SiteConfigVersion, Config: cfg}
	if v, err := version.Int64(); err == nil {
		b.Version = int(v)
	}
	if s, ok := root["exported_at"].(string); ok {
		if at, err := time.Parse(time.RFC3339Nano, s); err == nil {
			b.ExportedAt = at
		}
	}
	return b, nil
}

// DecodeDocument decodes a JSON object into a configuration document.
func DecodeDocument(data []byte) (configtree.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc configtree.Document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Join(Invalid("config", "must be a JSON object"), err)
	}
	if doc == nil {
		return nil, Invalid("config", "must be a JSON object")
	}
	return doc, nil
}
