package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "devatlas",
	Short: "A personal reference site for backend topics and language study",
	Long: `DevAtlas bundles a curated catalog of backend engineering notes —
Java, Spring, databases, architecture — plus a few language-learning
pages, and turns it into a browsable site. Build it statically, serve
it live with search and verb lookup, or query the catalog from the
terminal.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".devatlas.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
