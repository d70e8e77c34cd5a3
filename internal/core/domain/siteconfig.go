package domain

import (
	"time"

	"github.com/niksmo/ecom-admin/pkg/configtree"
)

// SiteConfigVersion is sent with every save of the site configuration.
const SiteConfigVersion = 1

type SiteConfig struct {
	Document  configtree.Document
	Version   int
	UpdatedAt time.Time
}

type ConfigDraft struct {
	Editor      string
	Document    configtree.Document
	BaseVersion int
	UpdatedAt   time.Time
}

type ConfigRevision struct {
	ID          int64
	Document    configtree.Document
	PublishedBy string
	Note        string
	PublishedAt time.Time
}

type ConfigOp string

const (
	ConfigSet    ConfigOp = "set"
	ConfigAppend ConfigOp = "append"
	ConfigRemove ConfigOp = "remove"
)

// A ConfigChange is a single edit made from a settings tab.
type ConfigChange struct {
	Op    ConfigOp
	Path  string
	Value any
	Index int
}

func (c ConfigChange) Validate() error {
	var v ValidationError
	switch c.Op {
	case ConfigSet, ConfigAppend, ConfigRemove:
	default:
		v.Add("op", "must be one of set, append, remove")
	}
	if c.Path == "" {
		v.Add("path", "is required")
	}
	return v.Err()
}

// Apply returns doc with the change applied. doc is not modified.
func (c ConfigChange) Apply(doc configtree.Document) configtree.Document {
	switch c.Op {
	case ConfigAppend:
		return configtree.Append(doc, c.Path, c.Value)
	case ConfigRemove:
		return configtree.RemoveAt(doc, c.Path, c.Index)
	default:
		return configtree.Set(doc, c.Path, c.Value)
	}
}

// ConfigBackup is the export/import file of the site configuration.
type ConfigBackup struct {
	Version    int
	ExportedAt time.Time
	Config     configtree.Document
}
