package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"educagenda/internal/auth"
	"educagenda/internal/config"
	"educagenda/internal/db"
	httpx "educagenda/internal/http"
	"educagenda/internal/jobs"
	"educagenda/internal/notify"
	"educagenda/internal/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrateAndIndexes(gdb); err != nil {
		log.Fatal(err)
	}

	jwtSvc := auth.NewJWT(cfg.JWTSecret)
	hub := notify.NewHub()

	store := settings.NewStore()
	go func() {
		ch := store.Subscribe()
		defer store.Unsubscribe(ch)
		for snap := range ch {
			log.Printf("settings changed: font_scale=%.2f high_contrast=%v tts=%v\n",
				snap.FontScale, snap.HighContrast, snap.TTSEnabled)
		}
	}()

	r := httpx.NewRouter(cfg, gdb, jwtSvc, hub, store)

	// reminder worker
	jobsRepo := &jobs.Repo{DB: gdb}
	worker := &jobs.Worker{ID: "worker-1", Repo: jobsRepo, DB: gdb}

	ctx, cancel := context.WithCancel(context.Background())
	go worker.Run(ctx)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("listening on %s\n", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
