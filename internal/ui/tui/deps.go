package tui

import (
	"log/slog"

	"github.com/nreyesp/cityride/internal/ports"
	"github.com/nreyesp/cityride/internal/usecase"
)

// Deps carries everything the TUI needs; the CLI wires it up.
type Deps struct {
	Catalog      ports.CityCatalog
	LoadCity     *usecase.LoadCity
	ComputeStats *usecase.ComputeStats

	DataDir string
	Logger  *slog.Logger
	Debug   bool
}
