package ports

import "github.com/nreyesp/cityride/internal/domain"

// TripSource loads a city's trips from a source (e.g., filesystem CSV).
type TripSource interface {
	Load(city domain.CityRef) (domain.Dataset, error)
}
