package ports

import "github.com/nreyesp/cityride/internal/domain"

// CityCatalog resolves configured cities to their CSV files.
type CityCatalog interface {
	ListCities(dataDir string) ([]domain.CityRef, error)
	Resolve(dataDir, name string) (domain.CityRef, error)
}
