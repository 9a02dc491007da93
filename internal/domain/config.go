package domain

// Config represents the minimal cityride configuration loaded from cityride.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
}

type DefaultsConfig struct {
	City string
}

type PathsConfig struct {
	DataDir    string
	ReportsDir string
}

// DefaultConfig provides sane defaults if cityride.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			City: "chicago",
		},
		Paths: PathsConfig{
			DataDir:    "data",
			ReportsDir: "reports",
		},
	}
}

// WorkspaceSpec describes a workspace to initialize.
type WorkspaceSpec struct {
	Root string
}
