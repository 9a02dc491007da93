package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nreyesp/cityride/internal/domain"
	"github.com/nreyesp/cityride/internal/infra/gotacsv"
	"github.com/nreyesp/cityride/internal/infra/reportstore"
	"github.com/nreyesp/cityride/internal/infra/workspacefinder"
	"github.com/nreyesp/cityride/internal/infra/yamlcities"
	"github.com/nreyesp/cityride/internal/ports"
	"github.com/nreyesp/cityride/internal/usecase"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	catalog ports.CityCatalog
	source  ports.TripSource
	store   ports.ReportStore

	loadCity     *usecase.LoadCity
	computeStats *usecase.ComputeStats
}

func (ws *workspaceCtx) dataDir() string {
	return filepath.Join(ws.root, ws.cfg.Paths.DataDir)
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		// A root passed via flag may have no config file yet; keep defaults.
		if !domain.IsKind(err, domain.KindNotFound) || workspaceFlag == "" {
			return nil, err
		}
	}

	catalog := yamlcities.NewCatalog()
	source := gotacsv.NewLoader()
	store := reportstore.NewJSONStore(root, cfg, reportstore.WithIndex(true))

	return &workspaceCtx{
		root:         root,
		cfg:          cfg,
		catalog:      catalog,
		source:       source,
		store:        store,
		loadCity:     usecase.NewLoadCity(catalog, source),
		computeStats: usecase.NewComputeStats(store),
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `cityride init`): %w", wd, err)
	}
	return root, nil
}

func resolveRoot(locator ports.WorkspaceLocator, workspaceFlag, wd string) (string, error) {
	if w := strings.TrimSpace(workspaceFlag); w != "" {
		return filepath.Abs(w)
	}
	return locator.FindRoot(wd)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
