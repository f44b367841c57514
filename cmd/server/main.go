package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"colormind/internal/api"
	"colormind/internal/config"
	"colormind/internal/rules"
	"colormind/internal/service"
	"colormind/internal/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ruleStore, err := rules.NewStore(cfg.RulesPath)
	if err != nil {
		log.Fatalf("load rules: %v", err)
	}

	hub := ws.NewHub()
	go hub.Run()

	colorSvc := service.NewColorService(cfg)
	namer := service.NewNamer(time.Now().UnixNano())
	paletteSvc := service.NewPaletteService(ruleStore, namer)

	router := api.NewRouter(cfg, colorSvc, paletteSvc, hub)
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
