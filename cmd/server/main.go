package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/you/go-safar-pricing/internal/auth"
	"github.com/you/go-safar-pricing/internal/config"
	"github.com/you/go-safar-pricing/internal/geo"
	"github.com/you/go-safar-pricing/internal/httpx"
	"github.com/you/go-safar-pricing/internal/pricing"
	"github.com/you/go-safar-pricing/internal/service"
)

func main() {

	// Loading config
	cfg := config.Load()

	// The engine over the built-in city registry and provider tables
	engine := pricing.NewEngine(
		geo.DefaultRegistry(),
		pricing.DefaultFlightProviders(),
		pricing.DefaultHotelProviders(),
	)

	// Creating services
	quoteSvc := service.NewQuoteService(engine, cfg.CacheTTL)
	trendSvc := service.NewTrendService(engine)

	publicMux := http.NewServeMux()

	// Public: login to get JWT
	publicMux.HandleFunc("/auth/login", auth.LoginHandler(cfg))

	// Protected group with JWT
	protectedMux := http.NewServeMux()
	protectedMux.HandleFunc("/pricing/flights", httpx.FlightsHandler(quoteSvc))
	protectedMux.HandleFunc("/pricing/hotels", httpx.HotelsHandler(quoteSvc))
	protectedMux.HandleFunc("/pricing/trip", httpx.TripHandler(quoteSvc))
	protectedMux.HandleFunc("/pricing/trend", httpx.TrendHandler(trendSvc))
	protectedMux.HandleFunc("/sse/", httpx.SubscribeSSEHandler(quoteSvc, cfg.StreamPeriod)) // /sse/Delhi/Goa?date=2025-10-01
	protectedMux.HandleFunc("/ws/", httpx.SubscribeWSHandler(quoteSvc, cfg.StreamPeriod))

	// handler to control authenticated routes
	root := auth.JWTMiddleware(publicMux, protectedMux, cfg)

	// Creation of HTTP server
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           root,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      0,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Running http server on a secondary thread
	go func() {
		log.Printf("\n➡️ Pricing service listening on http://localhost%s\n", srv.Addr)
		if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
			log.Println("🔐 TLS enabled")
			log.Fatal(srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile))
		} else {
			log.Fatal(srv.ListenAndServe())
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
