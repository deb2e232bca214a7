package cmd

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/karimzidan/devatlas/internal/config"
	"github.com/karimzidan/devatlas/internal/progress"
	"github.com/karimzidan/devatlas/internal/server"
)

const rebuildDebounce = 500 * time.Millisecond

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site, serve it locally and rebuild on changes",
	Long: `Performs an initial build, then serves the output directory over HTTP.
The content directory is watched; edits trigger a debounced rebuild and
connected browsers reload automatically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		log.Println("Performing initial build...")
		if err := buildSite(cfg, progress.NewReporter(), true); err != nil {
			return fmt.Errorf("initial build: %w", err)
		}

		hub := server.NewReloadHub()

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("creating file watcher: %w", err)
		}
		defer watcher.Close()

		go watchAndRebuild(watcher, cfg, hub)

		if cfg.ContentDir != "" {
			if err := watchTree(watcher, cfg.ContentDir); err != nil {
				log.Printf("Not watching %s: %v", cfg.ContentDir, err)
			}
		}

		mux := http.NewServeMux()
		mux.Handle("/ws/reload", hub)
		mux.Handle("/", http.FileServer(http.Dir(cfg.OutputDir)))

		url := fmt.Sprintf("http://localhost:%d", cfg.Port)
		if cfg.OpenBrowser {
			go openBrowser(url)
		}
		log.Printf("Serving site from %s at %s", cfg.OutputDir, url)
		log.Println("Press Ctrl+C to stop.")
		return http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), mux)
	},
}

// watchAndRebuild coalesces bursts of filesystem events into one
// rebuild, then tells connected browsers to reload.
func watchAndRebuild(watcher *fsnotify.Watcher, cfg *config.Config, hub *server.ReloadHub) {
	var timer *time.Timer

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Printf("Change detected: %s (%s)", event.Name, event.Op)

			// New subdirectories are not watched automatically.
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := watcher.Add(event.Name); err != nil {
					log.Printf("Watching %s: %v", event.Name, err)
				}
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(rebuildDebounce, func() {
				log.Println("Rebuilding...")
				if err := buildSite(cfg, progress.NullReporter{}, true); err != nil {
					log.Printf("Rebuild failed: %v", err)
					return
				}
				log.Println("Rebuilt.")
				hub.Broadcast()
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// watchTree adds dir and every subdirectory to the watcher.
func watchTree(watcher *fsnotify.Watcher, dir string) error {
	if _, err := os.Stat(dir); err != nil {
		return err
	}
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if werr := watcher.Add(path); werr != nil {
				log.Printf("Watching %s: %v", path, werr)
			}
		}
		return nil
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
