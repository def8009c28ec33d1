package cmd

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ayush27641/portfolio/internal/analytics"
	"github.com/Ayush27641/portfolio/internal/config"
	"github.com/Ayush27641/portfolio/internal/contact"
	"github.com/Ayush27641/portfolio/internal/db"
	"github.com/Ayush27641/portfolio/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE:  runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.Mode)

	catalog, err := loadCatalog(cfg.ContentPath)
	if err != nil {
		return err
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return errors.Wrap(err, "opening database")
	}
	defer database.Close()

	adminToken, err := web.NewToken()
	if err != nil {
		return err
	}
	salt, err := web.NewToken()
	if err != nil {
		return err
	}

	tracker := analytics.NewTracker(database, salt, cfg.VisitorRetention)
	messages := contact.NewStore(database)

	if cfg.Admin.UsesDefaults() && gin.Mode() == gin.DebugMode {
		log.Println("WARNING: Using default admin credentials. Set ADMIN_USERNAME and ADMIN_PASSWORD.")
	}
	if !cfg.SMTP.Configured() {
		log.Println("SMTP credentials not configured: contact messages will only be stored")
	}

	server, err := web.New(web.Options{
		Catalog:    catalog,
		Tracker:    tracker,
		Contact:    contact.NewService(messages, contact.NewSMTPSender(cfg.SMTP)),
		Messages:   messages,
		Admin:      cfg.Admin,
		AdminToken: adminToken,
		ImagesDir:  "./images",
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		removed, err := tracker.Cleanup(ctx)
		if err != nil {
			log.Printf("Error cleaning up old visitor data: %v", err)
			return
		}
		if removed > 0 {
			log.Printf("Privacy cleanup: removed %d visitor records older than %s", removed, cfg.VisitorRetention)
		}
	}()

	log.Printf("Admin access available at: /admin/login")
	log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "http server")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Println("Shutting down")
	return errors.Wrap(srv.Shutdown(shutdownCtx), "shutdown")
}
