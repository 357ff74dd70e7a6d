// Package production provides production integrations for unisync: snapshot
// dumping, transition publishing, visualization. Implements core interfaces
// using stdlib where possible.
package production

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/comalice/unisync/internal/core"
)

// JSONDumper is a stdlib-only file-based dumper using JSON serialization.
type JSONDumper struct {
	dir string
}

// NewJSONDumper creates a JSONDumper, ensuring the directory exists.
func NewJSONDumper(dir string) (*JSONDumper, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &JSONDumper{dir: dir}, nil
}

func (d *JSONDumper) Dump(ctx context.Context, snapshot core.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}

	fn := filepath.Join(d.dir, snapshot.SetID+".json")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}

	return nil
}

func (d *JSONDumper) Load(ctx context.Context, setID string) (core.Snapshot, error) {
	fn := filepath.Join(d.dir, setID+".json")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return core.Snapshot{}, fmt.Errorf("set %q: %w", setID, os.ErrNotExist)
		}
		return core.Snapshot{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var snapshot core.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return core.Snapshot{}, fmt.Errorf("json unmarshal: %w", err)
	}
	snapshot.SetID = setID // Ensure ID

	return snapshot, nil
}

// YAMLDumper is a file-based dumper using YAML serialization for Snapshot.
type YAMLDumper struct {
	dir string
}

// NewYAMLDumper creates a YAMLDumper, ensuring the directory exists.
func NewYAMLDumper(dir string) (*YAMLDumper, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &YAMLDumper{dir: dir}, nil
}

func (d *YAMLDumper) Dump(ctx context.Context, snapshot core.Snapshot) error {
	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}

	fn := filepath.Join(d.dir, snapshot.SetID+".yaml")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}

	return nil
}

func (d *YAMLDumper) Load(ctx context.Context, setID string) (core.Snapshot, error) {
	fn := filepath.Join(d.dir, setID+".yaml")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return core.Snapshot{}, fmt.Errorf("set %q: %w", setID, os.ErrNotExist)
		}
		return core.Snapshot{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var snapshot core.Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return core.Snapshot{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	snapshot.SetID = setID

	return snapshot, nil
}
