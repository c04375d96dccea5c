package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pizza-pos/config"
	"pizza-pos/internal/api"
	"pizza-pos/internal/broker"
	"pizza-pos/internal/cart"
	"pizza-pos/internal/ledger"
	"pizza-pos/internal/receipt"
	"pizza-pos/internal/redisclient"
	"pizza-pos/internal/service"
	"pizza-pos/internal/store"
	"pizza-pos/internal/util"
	"pizza-pos/internal/worker"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env, cfg.Server.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting pizza POS service")

	tp, err := util.InitTracer("pizza-pos", cfg.Server.Env, cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	// Mode probe: one attempt at startup decides connected vs fallback for
	// the whole session. Mid-session failures never switch modes silently.
	var src store.Source
	fallback := false

	db, err := store.NewStore(cfg.Database.URL)
	if err != nil {
		logger.Warn("Database unreachable, running in fallback mode with sample data", zap.Error(err))
		src = store.NewMemStore()
		fallback = true
	} else {
		defer db.Close()
		src = db
		logger.Info("Database connected")
	}

	var cache *redisclient.Client
	var publisher *broker.EventPublisher
	printer := receipt.LogPrinter{}

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	var receiptWorker *worker.ReceiptWorker

	if !fallback {
		cache, err = redisclient.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Warn("Redis unreachable, catalog cache disabled", zap.Error(err))
			cache = nil
		} else {
			defer cache.Close()
			logger.Info("Redis connected")
		}

		orderProducer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicOrder)
		defer orderProducer.Close()
		receiptProducer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicReceipt)
		defer receiptProducer.Close()
		publisher = broker.NewEventPublisher(orderProducer, receiptProducer)
		logger.Info("Kafka producers initialized")

		receiptConsumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.TopicReceipt, cfg.Kafka.ConsumerGroup)
		receiptWorker = worker.NewReceiptWorker(receiptConsumer, printer, cfg.Business.TaxRate)
		go func() {
			if err := receiptWorker.Start(workerCtx); err != nil {
				logger.Warn("Receipt worker stopped", zap.Error(err))
			}
		}()
	}

	posCart := cart.New(cfg.Business.TaxRate)
	orderLedger := ledger.New()

	catalogService := service.NewCatalogService(src, cache, posCart)
	couponService := service.NewCouponService(src)
	checkoutService := service.NewCheckoutService(src, posCart, orderLedger, publisher, printer, cfg.Business)

	checkoutService.SeedLedger(context.Background())

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handler := api.NewHandler(catalogService, checkoutService, couponService, posCart, fallback)
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Server forced to shutdown", zap.Error(err))
	}

	workerCancel()
	if receiptWorker != nil {
		receiptWorker.Stop()
	}

	logger.Info("Server exited")
}
