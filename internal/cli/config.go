package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	prettytable "github.com/wikander/pretty-table"
)

// loadConfig reads a table config from a YAML or TOML file, chosen by
// extension. Unknown keys are rejected.
func loadConfig(path string) (prettytable.Config, error) {
	var cfg prettytable.Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("%w: %s: %s", prettytable.ErrInvalidConfig, path, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s: %s", prettytable.ErrInvalidConfig, path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return cfg, fmt.Errorf("%w: %s: unknown keys %s", prettytable.ErrInvalidConfig, path, strings.Join(keys, ", "))
		}
	default:
		return cfg, fmt.Errorf("%w: %s: unsupported config extension %q", prettytable.ErrInvalidConfig, path, ext)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
