package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zengzengppp/Voice-order-generator/internal/ai"
	"github.com/zengzengppp/Voice-order-generator/internal/app"
	"github.com/zengzengppp/Voice-order-generator/internal/config"
	"github.com/zengzengppp/Voice-order-generator/internal/httpx"
	"github.com/zengzengppp/Voice-order-generator/internal/store"
)

func main() {
	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var blobs store.Blobs
	if cfg.PostgresDSN != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer pool.Close()
		if _, err := pool.Exec(ctx, store.Schema); err != nil {
			log.Fatalf("postgres schema: %v", err)
		}
		blobs = store.NewPG(pool)
	} else {
		blobs = store.NewMemory()
	}

	normalizer := ai.NewClient(cfg.QwenURL, cfg.QwenAPIKey, cfg.QwenModel)

	a, err := app.New(ctx, normalizer, blobs, cfg.FlushDelay)
	if err != nil {
		log.Fatalf("load state: %v", err)
	}

	r := gin.New()
	r.Use(httpx.RequestID(), httpx.Logger(), gin.Recovery())
	registerRoutes(r, a, normalizer)

	srv := &http.Server{Addr: cfg.Addr, Handler: r}
	go func() {
		log.Printf("server listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	// Flush pending state before exiting.
	if err := a.Close(shutCtx); err != nil {
		log.Printf("close: %v", err)
	}
}

func registerRoutes(r *gin.Engine, a *app.App, n app.Normalizer) {
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	api := r.Group("/api")
	api.POST("/process-order", processOrderHandler(n))

	api.POST("/draft", startDraftHandler(a))
	api.GET("/draft", getDraftHandler(a))
	api.DELETE("/draft", cancelDraftHandler(a))
	api.POST("/draft/items", addRowHandler(a))
	api.PUT("/draft/items/:index", editItemHandler(a))
	api.DELETE("/draft/items/:index", removeRowHandler(a))
	api.POST("/draft/normalize", normalizeHandler(a))
	api.POST("/draft/save", saveDraftHandler(a))

	api.GET("/customers", listCustomersHandler(a))
	api.POST("/customers", createCustomerHandler(a))
	api.DELETE("/customers/:id", deleteCustomerHandler(a))

	api.GET("/orders", listOrdersHandler(a))
	api.GET("/orders/today", todayOrdersHandler(a))
	api.GET("/stats", statsHandler(a))
	api.GET("/report/print", printReportHandler(a))
}
