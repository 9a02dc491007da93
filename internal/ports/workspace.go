package ports

import "github.com/nreyesp/cityride/internal/domain"

// WorkspaceLocator finds a cityride workspace root starting from an arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
