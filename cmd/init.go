package cmd

import (
	"github.com/spf13/cobra"

	"github.com/karimzidan/devatlas/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize devatlas configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure devatlas for your notes and writes a .devatlas.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
