package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"bootcamp-landing/pkg/api"
	"bootcamp-landing/pkg/clients/sheetdb"
	"bootcamp-landing/pkg/config"
	"bootcamp-landing/pkg/content"
	"bootcamp-landing/pkg/form"
	"bootcamp-landing/pkg/logging"
	"bootcamp-landing/pkg/middleware"
	"bootcamp-landing/pkg/services"
	"bootcamp-landing/pkg/shell"
	"bootcamp-landing/pkg/web"
)

const (
	shutdownTimeout  = 10 * time.Second
	janitorInterval  = time.Minute
	visitorIdleLimit = 10 * time.Minute
)

// CSRF does not apply to the JSON registration endpoint, which is meant for
// server-to-server callers.
var csrfExempt = []string{"/api/registrations"}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the landing page web server. Configuration is read from the
environment and from a .env file in the working directory.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	envErr := godotenv.Load()

	cfg := config.LoadConfig()
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Port = port
	}

	logger := logging.New(os.Stdout, cfg.LogLevel)
	if envErr != nil {
		logger.Debug("no .env file loaded", "error", envErr)
	}
	gin.SetMode(ginMode(cfg.GinMode))

	handler, cleanup, err := buildHandler(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Slog().Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "gin_mode", gin.Mode())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	return nil
}

// buildHandler wires clients, services and routes. cleanup stops background
// janitors and closes every open form.
func buildHandler(cfg *config.Config, logger *logging.Logger) (http.Handler, func(), error) {
	library, err := content.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("error loading content: %w", err)
	}
	tmpl, err := web.Templates()
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing templates: %w", err)
	}

	// Initialize API clients
	sheetClient := sheetdb.NewClient(cfg.SheetDBURL, sheetdb.WithTimeout(cfg.HTTPClientTimeout))
	if !sheetClient.Configured() {
		logger.Warn("SHEETDB_URL is not set, registrations will fail with a configuration error")
	}

	// Initialize services
	submissions := services.NewSubmissionService(sheetClient, logger)
	sessions := services.NewFormSessions(func() *form.Holder {
		return form.NewHolder(submissions, form.WithResetDelay(cfg.SuccessResetDelay))
	}, cfg.SessionTTL)
	sessions.StartJanitor(janitorInterval)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	stopLimiter := make(chan struct{})
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				limiter.Cleanup(visitorIdleLimit)
			case <-stopLimiter:
				return
			}
		}
	}()

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		sessions.Close()
		close(stopLimiter)
		return nil, nil, fmt.Errorf("error setting trusted proxies: %w", err)
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins...))
	router.SetHTMLTemplate(tmpl)

	handlers := api.NewHandlers(sessions, shell.New(library, cfg.SuccessResetDelay), logger, api.Options{
		CookieSecure: cfg.CookieSecure,
		SessionTTL:   cfg.SessionTTL,
	})
	handlers.Register(router, limiter.Middleware())

	var handler http.Handler = router
	if cfg.CSRFEnabled() {
		handler = middleware.CSRF(router, []byte(cfg.CSRFKey), cfg.CookieSecure, csrfExempt...)
	} else {
		logger.Warn("CSRF_KEY is not a 32-byte key, form posts are not CSRF-protected")
	}

	cleanup := func() {
		close(stopLimiter)
		sessions.Close()
	}
	return handler, cleanup, nil
}

func ginMode(mode string) string {
	switch mode {
	case gin.ReleaseMode, gin.TestMode:
		return mode
	default:
		return gin.DebugMode
	}
}
