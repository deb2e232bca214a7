package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/karimzidan/devatlas/internal/config"
	"github.com/karimzidan/devatlas/internal/content"
	"github.com/karimzidan/devatlas/internal/progress"
	"github.com/karimzidan/devatlas/internal/site"
)

// loadStore assembles the document store: bundled content first, then
// the configured content directory overlaid on top.
func loadStore(cfg *config.Config) (*content.Store, error) {
	store, err := content.NewStore()
	if err != nil {
		return nil, fmt.Errorf("loading bundled content: %w", err)
	}
	if cfg.ContentDir != "" {
		if _, statErr := os.Stat(cfg.ContentDir); statErr == nil {
			n, err := store.LoadDir(cfg.ContentDir, cfg.Include, cfg.Exclude)
			if err != nil {
				return nil, fmt.Errorf("loading %s: %w", cfg.ContentDir, err)
			}
			if verbose && n > 0 {
				fmt.Printf("Overlaid %d documents from %s\n", n, cfg.ContentDir)
			}
		}
	}
	return store, nil
}

// buildSite runs a full static build into cfg.OutputDir. With
// liveReload the pages include the reload script used by serve mode.
func buildSite(cfg *config.Config, reporter progress.Reporter, liveReload bool) error {
	store, err := loadStore(cfg)
	if err != nil {
		return err
	}
	shell := site.NewShell(cfg.SiteName)
	shell.LiveReload = liveReload
	b := site.NewBuilder(store, shell, reporter, cfg.DefaultLang)
	return b.Build(cfg.OutputDir)
}

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
