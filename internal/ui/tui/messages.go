package tui

import "github.com/nreyesp/cityride/internal/domain"

// statsMsg carries a finished computation back into the update loop.
type statsMsg struct {
	dataset domain.Dataset
	report  domain.Report
}

// errMsg carries a load or compute failure.
type errMsg struct {
	err error
}
