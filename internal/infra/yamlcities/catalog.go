// Package yamlcities resolves city names to CSV files. A built-in
// registry covers the published datasets; a cities.yaml in the data
// directory can extend or override it.
package yamlcities

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nreyesp/cityride/internal/domain"
	"github.com/nreyesp/cityride/internal/ports"
)

const registryFile = "cities.yaml"

// defaultCities maps the cities the published datasets cover.
var defaultCities = map[string]string{
	"chicago":       "chicago.csv",
	"new york city": "new_york_city.csv",
	"washington":    "washington.csv",
}

type Catalog struct {
	registryFile string
}

func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{registryFile: registryFile}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type Option func(*Catalog)

func WithRegistryFile(name string) Option {
	return func(c *Catalog) { c.registryFile = name }
}

var _ ports.CityCatalog = (*Catalog)(nil)

func (c *Catalog) ListCities(dataDir string) ([]domain.CityRef, error) {
	files, err := c.cityFiles(dataDir)
	if err != nil {
		return nil, err
	}

	refs := make([]domain.CityRef, 0, len(files))
	for name, file := range files {
		refs = append(refs, domain.CityRef{
			Name: name,
			Path: resolvePath(dataDir, file),
		})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func (c *Catalog) Resolve(dataDir, name string) (domain.CityRef, error) {
	files, err := c.cityFiles(dataDir)
	if err != nil {
		return domain.CityRef{}, err
	}

	key := strings.ToLower(strings.TrimSpace(name))
	file, ok := files[key]
	if !ok {
		known := make([]string, 0, len(files))
		for n := range files {
			known = append(known, n)
		}
		sort.Strings(known)
		return domain.CityRef{}, &domain.OpError{
			Op:   "yamlcities.resolve",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("unknown city %q (expected one of: %s)", name, strings.Join(known, ", ")),
		}
	}

	return domain.CityRef{Name: key, Path: resolvePath(dataDir, file)}, nil
}

// cityFiles merges the built-in registry with cities.yaml when present.
func (c *Catalog) cityFiles(dataDir string) (map[string]string, error) {
	files := make(map[string]string, len(defaultCities))
	for name, file := range defaultCities {
		files[name] = file
	}

	path := filepath.Join(dataDir, c.registryFile)
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return files, nil
		}
		return nil, &domain.OpError{
			Op:   "yamlcities.load",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	var y yamlRegistry
	if err := yaml.Unmarshal(b, &y); err != nil {
		return nil, &domain.OpError{
			Op:   "yamlcities.load",
			Kind: domain.KindBadData,
			Path: path,
			Err:  err,
		}
	}

	for i, entry := range y.Cities {
		name := strings.ToLower(strings.TrimSpace(entry.Name))
		file := strings.TrimSpace(entry.File)
		if name == "" || file == "" {
			return nil, &domain.OpError{
				Op:   "yamlcities.load",
				Kind: domain.KindBadData,
				Path: path,
				Err:  fmt.Errorf("cities[%d]: name and file are required", i),
			}
		}
		files[name] = file
	}
	return files, nil
}

func resolvePath(dataDir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dataDir, file)
}

type yamlRegistry struct {
	Cities []yamlCity `yaml:"cities"`
}

type yamlCity struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}
