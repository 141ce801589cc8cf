// SkyPath Globe Server
// Serves the flight globe REST API + WebSocket snapshot stream
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skypath/skypath/internal/server"
	"github.com/skypath/skypath/pkg/config"
	"github.com/skypath/skypath/pkg/flightdata"
)

var (
	configPath = flag.String("config", "configs/config.json", "Path to configuration file")
	port       = flag.String("port", "", "HTTP server port (overrides config)")
	demoMode   = flag.Bool("demo", false, "Force simulated traffic (overrides config)")
)

func main() {
	flag.Parse()

	log.Println("🚀 Starting SkyPath Globe Server...")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *demoMode {
		cfg.Source.Mode = "demo"
	}

	source := buildSource(cfg)
	defer source.Close()

	srv := server.New(cfg, source)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Run(ctx)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      srv.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("📡 Server listening on http://localhost:%s", cfg.Server.Port)
		log.Printf("🌍 Flight refresh every %ds, solar every %ds", cfg.Refresh.FlightsSeconds, cfg.Refresh.SolarSeconds)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("\n👋 Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped")
}

// buildSource wires the flight data source from config. Live mode keeps
// the demo generator as a fallback so an OpenSky outage never blanks
// the globe.
func buildSource(cfg *config.Config) flightdata.Source {
	demo := flightdata.NewDemoSource(cfg.Source.DemoSeed)

	if cfg.Source.Mode == "demo" {
		log.Println("✈️  Using simulated traffic")
		return demo
	}

	opensky := flightdata.NewOpenSkyClient(flightdata.OpenSkyConfig{
		BaseURL:           cfg.Source.BaseURL,
		CacheDuration:     time.Duration(cfg.Source.CacheSeconds) * time.Second,
		RequestsPerMinute: cfg.Source.RequestsPerMinute,
	})
	log.Println("✈️  Using OpenSky Network with demo fallback")

	return &flightdata.FallbackSource{
		Primary:   opensky,
		Secondary: demo,
		Retry:     flightdata.DefaultRetryConfig(),
		OnFallback: func(err error) {
			log.Printf("⚠️  OpenSky unavailable, serving simulated traffic: %v", err)
		},
	}
}
