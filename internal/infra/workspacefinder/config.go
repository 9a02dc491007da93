package workspacefinder

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nreyesp/cityride/internal/domain"
)

// LoadConfig loads cityride.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, "cityride.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindBadData,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Cityride.Defaults.City != "" {
		cfg.Defaults.City = y.Cityride.Defaults.City
	}
	if y.Cityride.Paths.DataDir != "" {
		cfg.Paths.DataDir = y.Cityride.Paths.DataDir
	}
	if y.Cityride.Paths.ReportsDir != "" {
		cfg.Paths.ReportsDir = y.Cityride.Paths.ReportsDir
	}

	return cfg, nil
}

type yamlConfig struct {
	Cityride struct {
		Defaults struct {
			City string `yaml:"city"`
		} `yaml:"defaults"`

		Paths struct {
			DataDir    string `yaml:"data_dir"`
			ReportsDir string `yaml:"reports_dir"`
		} `yaml:"paths"`
	} `yaml:"cityride"`
}
