package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aura-platform/contact-api/app/composer"
	"github.com/aura-platform/contact-api/app/controller"
	"github.com/aura-platform/contact-api/app/dto"
	"github.com/aura-platform/contact-api/app/provider"
	"github.com/aura-platform/contact-api/app/service"
	"github.com/aura-platform/contact-api/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Start the Echo HTTP server exposing the contact-form endpoints.",
	Run:   runServe,
}

// init registers the serve command.
func init() {
	rootCmd.AddCommand(serveCmd)
}

// runServe wires dependencies and starts the HTTP server.
func runServe(_ *cobra.Command, _ []string) {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	if !cfg.EmailConfigured() {
		log.Warn("MAIL_USERNAME / MAIL_PASSWORD not set; email delivery will fail")
	}

	emailProvider, err := buildEmailProvider(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to build email provider")
	}
	verifyTransport(emailProvider, log)

	contactService := service.NewContactService(composer.New(senderAddress(cfg)), emailProvider, log)
	contactController := controller.NewContactController(contactService, cfg.EmailConfigured(), !cfg.IsProduction())

	e := setupHTTPServer(contactController, log)

	go func() {
		httpAddr := net.JoinHostPort(cfg.Host, cfg.Port)
		log.WithFields(logrus.Fields{
			"addr":        httpAddr,
			"destination": composer.DestinationEmail,
			"environment": cfg.Environment,
		}).Info("Starting HTTP server")
		if err := e.Start(httpAddr); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("HTTP shutdown error")
	}

	log.Info("Server stopped")
}

// setupHTTPServer configures the Echo HTTP server, routes, and the top-level
// error boundary.
func setupHTTPServer(contactController *controller.ContactController, log *logrus.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) &&
			(httpErr.Code == http.StatusNotFound || httpErr.Code == http.StatusMethodNotAllowed) {
			_ = c.JSON(http.StatusNotFound, dto.NotFoundResponse{
				Error:              "Ruta no encontrada",
				AvailableEndpoints: controller.AvailableEndpoints,
			})
			return
		}
		log.WithError(err).Error("Unhandled request error")
		_ = c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Error interno del servidor"})
	}

	e.GET("/", contactController.Root)

	api := e.Group("/api")
	api.POST("/contact", contactController.Contact)
	api.GET("/health", contactController.Health)

	return e
}

// buildEmailProvider selects the outbound transport from configuration.
func buildEmailProvider(cfg *config.Config) (provider.EmailProvider, error) {
	switch strings.ToLower(cfg.EmailProvider) {
	case "", "smtp":
		return provider.NewSMTPProvider(cfg.SMTPHost, cfg.SMTPPort, cfg.MailUsername, cfg.MailPassword), nil
	case "ses":
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return nil, err
		}
		return provider.NewSESProvider(awsCfg), nil
	case "noop":
		return provider.NewNoopProvider(), nil
	default:
		return nil, fmt.Errorf("unsupported EMAIL_PROVIDER: %s", cfg.EmailProvider)
	}
}

// senderAddress picks the From address matching the selected transport.
func senderAddress(cfg *config.Config) string {
	if strings.ToLower(cfg.EmailProvider) == "ses" && cfg.SESSourceEmail != "" {
		return cfg.SESSourceEmail
	}
	return cfg.MailUsername
}

// verifyTransport checks transport reachability at startup. A failure is
// logged but does not abort: health reporting stays available either way.
func verifyTransport(emailProvider provider.EmailProvider, log *logrus.Logger) {
	verifier, ok := emailProvider.(provider.Verifier)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := verifier.Verify(ctx); err != nil {
		log.WithError(err).Warn("Email transport verification failed")
		return
	}
	log.Info("Email transport ready")
}
