package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karimzidan/devatlas/internal/config"
	"github.com/karimzidan/devatlas/internal/progress"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static site",
	Long:  `Renders every catalog page into the output directory as plain HTML, along with the stylesheet, client script and search index.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := buildSite(cfg, progress.NewReporter(), false); err != nil {
			return err
		}
		fmt.Printf("Site written to %s\n", cfg.OutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
