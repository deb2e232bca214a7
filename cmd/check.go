package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karimzidan/devatlas/internal/config"
	"github.com/karimzidan/devatlas/internal/content"
	"github.com/karimzidan/devatlas/internal/render"
)

// interactivePaths are catalog entries served by dedicated pages, not
// by a document with the same key.
var interactivePaths = map[string]bool{
	"/german/cases":      true,
	"/german/adjectives": true,
	"/french/verbs":      true,
	"/french/vocabulary": true,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the catalog against the loaded documents",
	Long: `Verifies that every catalog entry resolves to a document (or an
interactive page) and that every document renders cleanly. Run this
after editing overlay content.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		store, err := loadStore(cfg)
		if err != nil {
			return err
		}

		renderer := render.New()
		problems := 0

		for _, e := range content.AllEntries() {
			if interactivePaths[e.Path] {
				continue
			}
			section, topic, ok := content.SplitPath(e.Path)
			if !ok {
				fmt.Printf("BAD PATH  %s (%s)\n", e.Path, e.Title)
				problems++
				continue
			}
			doc, err := store.Get(section, topic)
			if err != nil {
				fmt.Printf("MISSING   %s (%s)\n", e.Path, e.Title)
				problems++
				continue
			}
			if _, err := renderer.Render(doc); err != nil {
				fmt.Printf("RENDER    %s: %v\n", e.Path, err)
				problems++
				continue
			}
			if verbose {
				fmt.Printf("OK        %s\n", e.Path)
			}
		}

		// Documents nothing links to are worth knowing about too.
		linked := make(map[content.TopicKey]bool)
		for _, e := range content.AllEntries() {
			if section, topic, ok := content.SplitPath(e.Path); ok {
				linked[content.TopicKey{Section: section, Topic: topic}] = true
			}
		}
		for _, k := range store.Keys() {
			if !linked[k] {
				fmt.Printf("ORPHAN    /%s/%s (no catalog entry)\n", k.Section, k.Topic)
			}
		}

		if problems > 0 {
			return fmt.Errorf("%d problem(s) found", problems)
		}
		fmt.Printf("Catalog OK: %d entries, %d documents.\n", len(content.AllEntries()), store.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
