package yamlcities

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nreyesp/cityride/internal/domain"
)

func TestListCities_Defaults(t *testing.T) {
	dir := t.TempDir()

	refs, err := NewCatalog().ListCities(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"chicago", "new york city", "washington"}
	if len(refs) != len(want) {
		t.Fatalf("got %d cities, want %d", len(refs), len(want))
	}
	for i, name := range want {
		if refs[i].Name != name {
			t.Errorf("city %d = %q, want %q", i, refs[i].Name, name)
		}
	}
	if refs[1].Path != filepath.Join(dir, "new_york_city.csv") {
		t.Errorf("path = %q", refs[1].Path)
	}
}

func TestResolve_CaseInsensitive(t *testing.T) {
	dir := t.TempDir()

	ref, err := NewCatalog().Resolve(dir, "  New York City ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Name != "new york city" {
		t.Errorf("name = %q", ref.Name)
	}
}

func TestResolve_Unknown(t *testing.T) {
	_, err := NewCatalog().Resolve(t.TempDir(), "atlantis")
	if err == nil {
		t.Fatal("expected error for unknown city")
	}
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected KindInvalidInput, got %v", err)
	}
}

func TestRegistryFile_ExtendsAndOverrides(t *testing.T) {
	dir := t.TempDir()
	registry := `cities:
  - name: Boston
    file: boston.csv
  - name: chicago
    file: chicago_2018.csv
`
	if err := os.WriteFile(filepath.Join(dir, "cities.yaml"), []byte(registry), 0o644); err != nil {
		t.Fatalf("write registry: %v", err)
	}

	cat := NewCatalog()

	ref, err := cat.Resolve(dir, "boston")
	if err != nil {
		t.Fatalf("new city should resolve: %v", err)
	}
	if ref.Path != filepath.Join(dir, "boston.csv") {
		t.Errorf("path = %q", ref.Path)
	}

	ref, err = cat.Resolve(dir, "chicago")
	if err != nil {
		t.Fatalf("override should resolve: %v", err)
	}
	if ref.Path != filepath.Join(dir, "chicago_2018.csv") {
		t.Errorf("override path = %q", ref.Path)
	}

	refs, err := cat.ListCities(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 4 {
		t.Fatalf("got %d cities, want 4", len(refs))
	}
}

func TestRegistryFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "cities.yaml"), []byte("cities: ["), 0o644); err != nil {
		t.Fatalf("write registry: %v", err)
	}

	_, err := NewCatalog().ListCities(dir)
	if err == nil {
		t.Fatal("expected error for malformed registry")
	}
	if !domain.IsKind(err, domain.KindBadData) {
		t.Fatalf("expected KindBadData, got %v", err)
	}
}

func TestRegistryFile_MissingFields(t *testing.T) {
	dir := t.TempDir()
	registry := `cities:
  - name: boston
`
	if err := os.WriteFile(filepath.Join(dir, "cities.yaml"), []byte(registry), 0o644); err != nil {
		t.Fatalf("write registry: %v", err)
	}

	_, err := NewCatalog().ListCities(dir)
	if err == nil {
		t.Fatal("expected error for entry without file")
	}
	if !domain.IsKind(err, domain.KindBadData) {
		t.Fatalf("expected KindBadData, got %v", err)
	}
}
