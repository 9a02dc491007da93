package usecase

import (
	"github.com/nreyesp/cityride/internal/domain"
)

type fakeCatalog struct {
	city domain.CityRef
	err  error
}

func (f fakeCatalog) ListCities(dataDir string) ([]domain.CityRef, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []domain.CityRef{f.city}, nil
}

func (f fakeCatalog) Resolve(dataDir, name string) (domain.CityRef, error) {
	if f.err != nil {
		return domain.CityRef{}, f.err
	}
	return f.city, nil
}

type fakeSource struct {
	ds  domain.Dataset
	err error
}

func (f fakeSource) Load(city domain.CityRef) (domain.Dataset, error) {
	if f.err != nil {
		return domain.Dataset{}, f.err
	}
	ds := f.ds
	ds.City = city
	return ds, nil
}

type fakeStore struct {
	saved []domain.Report
	id    string
	err   error
}

func (f *fakeStore) SaveReport(report domain.Report) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved = append(f.saved, report)
	return f.id, nil
}
