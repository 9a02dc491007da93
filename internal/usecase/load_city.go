package usecase

import (
	"context"

	"github.com/nreyesp/cityride/internal/domain"
	"github.com/nreyesp/cityride/internal/ports"
)

// LoadCity resolves a city name against the catalog and loads its trips.
type LoadCity struct {
	catalog ports.CityCatalog
	source  ports.TripSource
}

func NewLoadCity(catalog ports.CityCatalog, source ports.TripSource) *LoadCity {
	return &LoadCity{catalog: catalog, source: source}
}

func (uc *LoadCity) Execute(ctx context.Context, dataDir, cityName string) (domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return domain.Dataset{}, err
	}

	city, err := uc.catalog.Resolve(dataDir, cityName)
	if err != nil {
		return domain.Dataset{}, err
	}

	if err := ctx.Err(); err != nil {
		return domain.Dataset{}, err
	}

	ds, err := uc.source.Load(city)
	if err != nil {
		return domain.Dataset{}, err
	}
	return ds, nil
}
