package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nreyesp/cityride/internal/infra/fsworkspace"
	"github.com/nreyesp/cityride/internal/usecase"
)

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a cityride workspace (cityride.yaml, data/, reports/)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
				root = args[0]
			}
			abs, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("invalid directory: %w", err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(abs, force); err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Workspace ready at %s\n", abs)
			fmt.Fprintln(os.Stdout, "Drop the city CSV files into data/ and run `cityride`.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite template files that already exist")
	return cmd
}
