package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the built-in SageMaker catalog.
func Default() (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(defaultYAML, &c); err != nil {
		return Catalog{}, fmt.Errorf("decode default catalog: %w", err)
	}
	return c, nil
}

// Load reads a catalog file based on its extension.
// Supports: .yaml/.yml, .json, .toml. A leading '~' expands to the home directory.
func Load(path string) (Catalog, error) {
	var c Catalog
	if path == "" {
		return c, fmt.Errorf("empty catalog path")
	}
	p, err := expandHome(path)
	if err != nil {
		return c, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return c, fmt.Errorf("read catalog: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(p)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &c)
	case ".json":
		err = json.Unmarshal(b, &c)
	case ".toml":
		err = toml.Unmarshal(b, &c)
	default:
		return c, fmt.Errorf("unsupported catalog extension: %s", ext)
	}
	if err != nil {
		return Catalog{}, fmt.Errorf("decode catalog %s: %w", p, err)
	}
	return c, nil
}

// LoadOverlay loads path and merges it over the default catalog.
// An empty path yields the default catalog unchanged.
func LoadOverlay(path string) (Catalog, error) {
	base, err := Default()
	if err != nil {
		return Catalog{}, err
	}
	if path == "" {
		return base, nil
	}
	over, err := Load(path)
	if err != nil {
		return Catalog{}, err
	}
	return Merge(base, over), nil
}

// expandHome expands a leading '~' to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" { return path, nil }
	if path[0] != '~' { return path, nil }
	home, err := os.UserHomeDir()
	if err != nil { return "", fmt.Errorf("home dir: %w", err) }
	if path == "~" { return home, nil }
	// handle cases like ~/catalogs/sagemaker.yaml
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}
