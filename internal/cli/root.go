package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nreyesp/cityride/internal/buildinfo"
	"github.com/nreyesp/cityride/internal/infra/logger"
	"github.com/nreyesp/cityride/internal/infra/workspacefinder"
	"github.com/nreyesp/cityride/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var workspace string

	cmd := &cobra.Command{
		Use:          "cityride",
		Short:        "cityride — explore US bikeshare trip data from the terminal",
		Version:      buildinfo.String(),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			finder := workspacefinder.NewFinder()

			logRoot := wd
			if root, ferr := resolveRoot(finder, workspace, wd); ferr == nil && root != "" {
				logRoot = root
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  logRoot,
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			deps := tui.Deps{
				Catalog:      ws.catalog,
				LoadCity:     ws.loadCity,
				ComputeStats: ws.computeStats,
				DataDir:      ws.dataDir(),
				Logger:       logger.L(),
				Debug:        debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .cityride/logs/cityride.log")
	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(statsCmd())
	cmd.AddCommand(citiesCmd())
	cmd.AddCommand(initCmd())

	return cmd
}
