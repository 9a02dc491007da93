package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nreyesp/cityride/internal/domain"
)

func TestInit_CreatesLayout(t *testing.T) {
	root := t.TempDir()

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: root}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	for _, p := range []string{
		"data",
		"reports",
		filepath.Join(".cityride", "logs"),
	} {
		info, err := os.Stat(filepath.Join(root, p))
		if err != nil || !info.IsDir() {
			t.Errorf("expected directory %s: %v", p, err)
		}
	}

	if _, err := os.Stat(filepath.Join(root, "cityride.yaml")); err != nil {
		t.Errorf("expected cityride.yaml: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "data", "cities.yaml")); err != nil {
		t.Errorf("expected data/cities.yaml: %v", err)
	}
}

func TestInit_DoesNotOverwriteWithoutForce(t *testing.T) {
	root := t.TempDir()
	custom := []byte("cityride:\n  defaults:\n    city: washington\n")
	if err := os.WriteFile(filepath.Join(root, "cityride.yaml"), custom, 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: root}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(root, "cityride.yaml"))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(b) != string(custom) {
		t.Fatalf("Init overwrote existing config without force")
	}
}

func TestInit_ForceOverwrites(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "cityride.yaml"), []byte("old"), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: root}, true); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(root, "cityride.yaml"))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(b) == "old" {
		t.Fatalf("force Init should overwrite the template file")
	}
}

func TestInit_GitignoreAppendsMissingEntries(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("reports/\n"), 0o644); err != nil {
		t.Fatalf("seed gitignore: %v", err)
	}

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: root}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		t.Fatalf("read gitignore: %v", err)
	}
	content := string(b)
	for _, want := range []string{"reports/", ".cityride/", "data/*.csv"} {
		if !strings.Contains(content, want) {
			t.Errorf("gitignore missing %q:\n%s", want, content)
		}
	}
	if strings.Count(content, "reports/") != 1 {
		t.Errorf("gitignore duplicated existing entry:\n%s", content)
	}
}
