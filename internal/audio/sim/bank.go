package sim

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// defaultBank is the bank used when no manifest path is configured.
//
//go:embed banks/default.yaml
var defaultBank embed.FS

const defaultBankName = "banks/default.yaml"

// EventInfo is one authored event in a bank manifest.
type EventInfo struct {
	Path    string        `yaml:"path"`
	Is3D    bool          `yaml:"is_3d"`
	Length  time.Duration `yaml:"length"`
	Fadeout time.Duration `yaml:"fadeout"`
}

// Bank is a parsed bank manifest.
type Bank struct {
	Name   string      `yaml:"name"`
	Events []EventInfo `yaml:"events"`
}

// ParseBank decodes and validates a YAML bank manifest.
func ParseBank(data []byte) (*Bank, error) {
	var b Bank
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing bank: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// LoadBankFS reads the manifest at name from fsys.
func LoadBankFS(fsys fs.FS, name string) (*Bank, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading bank %s: %w", name, err)
	}
	return ParseBank(data)
}

// LoadBankFile reads the manifest at path. An empty path loads the embedded
// default bank.
func LoadBankFile(path string) (*Bank, error) {
	if path == "" {
		return DefaultBank()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bank %s: %w", path, err)
	}
	return ParseBank(data)
}

// DefaultBank returns the embedded default bank.
func DefaultBank() (*Bank, error) {
	return LoadBankFS(defaultBank, defaultBankName)
}

// Validate checks the manifest for missing or duplicate event paths.
func (b *Bank) Validate() error {
	seen := make(map[string]struct{}, len(b.Events))
	for i, ev := range b.Events {
		if ev.Path == "" {
			return fmt.Errorf("event %d: path is required", i)
		}
		if _, dup := seen[ev.Path]; dup {
			return fmt.Errorf("event %d (%s): duplicate path", i, ev.Path)
		}
		if ev.Length < 0 || ev.Fadeout < 0 {
			return fmt.Errorf("event %d (%s): durations must not be negative", i, ev.Path)
		}
		seen[ev.Path] = struct{}{}
	}
	return nil
}
