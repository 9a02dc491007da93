package ports

import "github.com/nreyesp/cityride/internal/domain"

// ReportStore persists computed reports for later reference.
type ReportStore interface {
	SaveReport(report domain.Report) (id string, err error)
}
