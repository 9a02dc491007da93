package reportstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nreyesp/cityride/internal/domain"
)

func sampleReport(ts time.Time) domain.Report {
	return domain.Report{
		City:       "new york city",
		Month:      "january",
		Day:        domain.DayAll,
		Rows:       2,
		ComputedAt: ts,
		Duration:   domain.DurationStats{TotalSeconds: 1200, MeanSeconds: 600},
	}
}

func TestSaveReport_CreatesJSONFile(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig())

	ts := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	id, err := store.SaveReport(sampleReport(ts))
	if err != nil {
		t.Fatalf("SaveReport error: %v", err)
	}

	wantFile := filepath.Join(tmp, "reports", "20260203T101112Z_new-york-city.json")
	if _, err := os.Stat(wantFile); err != nil {
		t.Fatalf("expected file at %s, stat err=%v (id=%s)", wantFile, err, id)
	}

	b, err := os.ReadFile(wantFile)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	var decoded domain.Report
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.City != "new york city" || decoded.Rows != 2 {
		t.Fatalf("decoded = %+v", decoded)
	}
	if decoded.Duration.TotalSeconds != 1200 {
		t.Fatalf("duration total = %v", decoded.Duration.TotalSeconds)
	}
}

func TestSaveReport_UsesConfiguredDir(t *testing.T) {
	tmp := t.TempDir()
	cfg := domain.DefaultConfig()
	cfg.Paths.ReportsDir = "out"
	store := NewJSONStore(tmp, cfg)

	id, err := store.SaveReport(sampleReport(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("SaveReport error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmp, "out", id+".json")); err != nil {
		t.Fatalf("expected file under out/: %v", err)
	}
}

func TestSaveReport_ZeroTimestampUsesNow(t *testing.T) {
	tmp := t.TempDir()
	now := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithNow(func() time.Time { return now }))

	report := sampleReport(time.Time{})
	id, err := store.SaveReport(report)
	if err != nil {
		t.Fatalf("SaveReport error: %v", err)
	}
	if !strings.HasPrefix(id, "20260506T070809Z_") {
		t.Fatalf("id = %q, want injected timestamp prefix", id)
	}
}

func TestSaveReport_AppendsIndex(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithIndex(true))

	if _, err := store.SaveReport(sampleReport(time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC))); err != nil {
		t.Fatalf("SaveReport error: %v", err)
	}
	if _, err := store.SaveReport(sampleReport(time.Date(2026, 2, 3, 11, 0, 0, 0, time.UTC))); err != nil {
		t.Fatalf("SaveReport error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, "reports", "index.jsonl"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("index lines = %d, want 2", len(lines))
	}

	var entry struct {
		ID   string `json:"id"`
		City string `json:"city"`
		Rows int    `json:"rows"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("unmarshal index line: %v", err)
	}
	if entry.City != "new york city" || entry.Rows != 2 {
		t.Fatalf("index entry = %+v", entry)
	}
}
