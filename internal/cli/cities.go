package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func citiesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "cities",
		Short: "Manage the city registry of a workspace",
	}

	c.AddCommand(citiesListCmd())
	return c
}

func citiesListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured cities and whether their CSV files exist",
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.catalog.ListCities(ws.dataDir())
			if err != nil {
				return err
			}

			if len(refs) == 0 {
				fmt.Println("(no cities configured)")
				return nil
			}

			fmt.Printf("Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				status := "missing"
				if fileExists(r.Path) {
					status = "ok"
				}
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Printf("- %-15s %-8s (%s)\n", r.Name, status, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}
