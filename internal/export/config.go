// Package export generates and writes libman export trees: a package
// file, its library files, and the index entries that point at them.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigName is the file name of the export manifest inside a project.
const ConfigName = "libman.toml"

// ConfigVersion is the current supported manifest schema version.
const ConfigVersion = 1

// Config defines the package a project exports.
type Config struct {
	Version int `toml:"version"`

	Package struct {
		Name      string   `toml:"name"`
		Namespace string   `toml:"namespace"`
		Requires  []string `toml:"requires"`
	} `toml:"package"`

	// LibraryDirs are the directories searched when resolving link
	// names to linkable files, relative to the config file.
	LibraryDirs []string `toml:"library_dirs"`

	Libraries []ConfigLibrary `toml:"library"`
}

// ConfigLibrary defines one library entry in the export manifest.
type ConfigLibrary struct {
	Name string `toml:"name"`
	// Path is an explicit linkable, relative to the config file.
	// When empty, Links entries are resolved by discovery instead.
	Path     string   `toml:"path"`
	Includes []string `toml:"includes"`
	Defines  []string `toml:"defines"`
	// Uses are libman usage references ("<Namespace>/<Library>").
	Uses []string `toml:"uses"`
	// Links are raw link names (as passed to a linker, e.g. "z" or
	// "pthread") to be resolved against LibraryDirs or mapped to
	// special requirements.
	Links []string `toml:"links"`
}

// LoadConfig reads and parses an export manifest from the project root.
// Returns (nil, nil) if the manifest is not present.
func LoadConfig(projectRoot string) (*Config, error) {
	path := filepath.Join(projectRoot, ConfigName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading export manifest: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Version != ConfigVersion {
		return nil, fmt.Errorf("unsupported manifest version %d (supported: %d)", cfg.Version, ConfigVersion)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Package.Name == "" {
		return fmt.Errorf("package.name is required")
	}
	if c.Package.Namespace == "" {
		return fmt.Errorf("package.namespace is required")
	}
	seen := map[string]bool{}
	for _, lib := range c.Libraries {
		if lib.Name == "" {
			return fmt.Errorf("every library needs a name")
		}
		if seen[lib.Name] {
			return fmt.Errorf("library %q declared more than once", lib.Name)
		}
		seen[lib.Name] = true
	}
	return nil
}
