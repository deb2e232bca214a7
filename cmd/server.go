package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/karimzidan/devatlas/internal/config"
	"github.com/karimzidan/devatlas/internal/conjugation"
	"github.com/karimzidan/devatlas/internal/db"
	"github.com/karimzidan/devatlas/internal/prefs"
	"github.com/karimzidan/devatlas/internal/server"
)

var serverAllowAll bool

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the live site server",
	Long: `Serves the catalog dynamically: pages are rendered per request, the
search API is live, language preferences persist, and French verbs can
be looked up and saved. State lives in a SQLite database under the data
directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
		database, err := db.Open(filepath.Join(cfg.DataDir, "devatlas.db"))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		store, err := loadStore(cfg)
		if err != nil {
			return err
		}

		srv := server.New(
			server.Config{
				Port:     cfg.Port,
				SiteName: cfg.SiteName,
				AllowAll: serverAllowAll || cfg.AllowAll,
			},
			store,
			prefs.NewStore(database, cfg.DefaultLang),
			conjugation.NewStore(database),
			conjugation.NewClient(cfg.ProxyBase),
		)

		if cfg.OpenBrowser {
			go openBrowser(fmt.Sprintf("http://localhost:%d", cfg.Port))
		}

		errc := make(chan error, 1)
		go func() {
			if err := srv.Start(); err != nil && err != http.ErrServerClosed {
				errc <- err
			}
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errc:
			return err
		case sig := <-stop:
			log.Printf("Received %s, shutting down...", sig)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}

func init() {
	serverCmd.Flags().BoolVar(&serverAllowAll, "allow-all", false, "allow all CORS origins (dev mode)")
	rootCmd.AddCommand(serverCmd)
}
