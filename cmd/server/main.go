package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/docextract/backend/internal/api"
	"github.com/docextract/backend/internal/config"
	"github.com/docextract/backend/internal/extract"
	"github.com/docextract/backend/internal/web"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

const configFileName = "docextract.config.xml"

func main() {
	// Config lives next to the executable
	exePath, err := os.Executable()
	if err != nil {
		fmt.Printf("Failed to get executable path: %v\n", err)
		os.Exit(1)
	}
	configPath := filepath.Join(filepath.Dir(exePath), configFileName)

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	e, err := newServer(cfg, Version)
	if err != nil {
		fmt.Printf("Failed to initialize server: %v\n", err)
		os.Exit(1)
	}

	s := &http.Server{
		Addr:         cfg.GetServerAddr(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	printBanner(cfg, configPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.StartServer(s); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	e.Logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal(err)
	}
}

// newServer wires middleware, the API and the page server into a fresh Echo instance.
func newServer(cfg *config.AppConfig, version string) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(logLevel(cfg.Advanced.LogLevel))

	api.SetupMiddleware(e, cfg)

	handlers := api.NewHandlers(&api.Dependencies{
		Extractor: extract.NewExtractor(),
		Version:   version,
	})
	api.RegisterRoutes(e, handlers)

	if err := web.RegisterStaticRoutes(e, web.Options{
		TemplateDir: cfg.Web.TemplateDirectory,
		StaticDir:   cfg.Web.StaticDirectory,
		Version:     version,
	}); err != nil {
		return nil, fmt.Errorf("registering page routes: %w", err)
	}

	return e, nil
}

// logLevel maps a config log level name to the Echo logger level.
func logLevel(name string) log.Lvl {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}

func printBanner(cfg *config.AppConfig, configPath string) {
	assets := "embedded"
	if cfg.Web.TemplateDirectory != "" || cfg.Web.StaticDirectory != "" {
		assets = "directory override"
	}

	fmt.Printf("\n")
	fmt.Printf("╔═══════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║           Document Extract Server                         ║\n")
	fmt.Printf("╠═══════════════════════════════════════════════════════════╣\n")
	fmt.Printf("║  Version:    %-45s║\n", Version)
	fmt.Printf("║  Build Time: %-45s║\n", BuildTime)
	fmt.Printf("║  Assets:     %-45s║\n", assets)
	fmt.Printf("╠═══════════════════════════════════════════════════════════╣\n")
	fmt.Printf("║  Config:    %-46s║\n", configPath)
	fmt.Printf("║  Listen:    http://%-38s║\n", cfg.GetServerAddr())
	fmt.Printf("╚═══════════════════════════════════════════════════════════╝\n")
	fmt.Printf("\n")
	fmt.Printf("Local development only. Open http://localhost:%d in your browser\n\n", cfg.Server.Port)
}
