package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "gift_contribution/docs"
	"gift_contribution/internal/adapter/http/handlers"
	"gift_contribution/internal/adapter/http/routes"
	"gift_contribution/internal/adapter/persistence/repository"
	"gift_contribution/internal/infrastructure/config"
	"gift_contribution/internal/infrastructure/database"
	"gift_contribution/internal/infrastructure/logger"
	"gift_contribution/internal/infrastructure/notification"
	"gift_contribution/internal/infrastructure/payments"
	"gift_contribution/internal/infrastructure/scheduler"
	"gift_contribution/internal/infrastructure/telemetry"
	"gift_contribution/internal/usecase"
	"gift_contribution/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// @title           Gift Contribution API
// @version         1.0
// @description     Collaborative gift funding and fulfillment backed by DynamoDB or Bolt.

// @host localhost:8080

// @BasePath  /v1

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zlog := logger.NewForEnvironment(cfg.AppEnv, cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = zlog.Sync() }()

	if err := run(ctx, cfg, zlog); err != nil {
		zlog.Fatal("[app] stopped with error", zap.Error(err))
	}
	zlog.Info("[app] stopped")
}

type stores struct {
	contributions interfaces.IContributionRepository
	orders        interfaces.IFulfillmentOrderRepository
	close         func() error
}

func run(ctx context.Context, cfg config.Config, zlog *zap.Logger) error {
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg.Otel, cfg.AppEnv, zlog)
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracer(sctx); err != nil {
			zlog.Warn("[app] tracer shutdown failed", zap.Error(err))
		}
	}()

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			zlog.Warn("[app] store close failed", zap.Error(err))
		}
	}()

	publisher, closePublisher, err := newPublisher(ctx, cfg, zlog)
	if err != nil {
		return err
	}
	defer closePublisher()

	links, err := payments.NewMercadoPagoLinkProvider(cfg.Payments.MercadoPagoAccessToken, cfg.PublicBaseURL, cfg.PaymentsMocked(), zlog.Named("payments"))
	if err != nil {
		return fmt.Errorf("payment links: %w", err)
	}

	settings := usecase.Settings{
		MaxAttempts:     cfg.Gift.MaxAttempts,
		MaxParticipants: cfg.Gift.MaxParticipants,
		DefaultDeadline: cfg.Gift.DefaultDeadline,
		Currency:        cfg.Gift.Currency,
		DispatchGrace:   cfg.Jobs.DispatchRetryGrace,
	}

	dispatcher := usecase.NewOrderDispatcher(st.contributions, st.orders, publisher, zlog.Named("dispatch"), settings)
	detector := usecase.NewCompletionDetector(st.contributions, dispatcher, zlog.Named("completion"), settings)
	recorder := usecase.NewPaymentRecorder(st.contributions, detector, zlog.Named("payment"), settings)
	contributions := usecase.NewContributionUseCase(st.contributions, links, publisher, zlog.Named("gift"), settings)
	fulfillment := usecase.NewFulfillmentUseCase(st.orders, publisher, zlog.Named("order"), settings)
	reaper := usecase.NewDeadlineReaper(st.contributions, publisher, zlog.Named("reaper"))
	retrier := usecase.NewDispatchRetrier(st.contributions, detector, dispatcher, zlog.Named("retrier"), settings)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.NewRouter(routes.Options{
		ServiceName: cfg.Otel.ServiceName,
		CORSOrigins: cfg.CORSOrigins,
		Logger:      zlog.Named("http"),
	}, routes.Handlers{
		Contribution: handlers.NewContributionHandler(contributions, recorder, zlog.Named("gift")),
		Fulfillment:  handlers.NewFulfillmentHandler(fulfillment, zlog.Named("order")),
	})
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zlog.Info("[app] http server listening", zap.String("addr", srv.Addr), zap.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	if cfg.Jobs.ReaperEnabled {
		reaperJob := scheduler.NewSweepScheduler("deadline-reaper", cfg.Jobs.ReaperInterval, reaper.Sweep, zlog)
		g.Go(func() error { return reaperJob.Run(gctx) })
	}
	retrierJob := scheduler.NewSweepScheduler("dispatch-retrier", cfg.Jobs.DispatchRetryInterval, retrier.Sweep, zlog)
	g.Go(func() error { return retrierJob.Run(gctx) })

	return g.Wait()
}

func openStores(ctx context.Context, cfg config.Config) (stores, error) {
	switch cfg.Store.Driver {
	case config.StoreBolt:
		db, err := database.OpenBolt(cfg.Store.BoltPath)
		if err != nil {
			return stores{}, err
		}
		contributions, err := repository.NewContributionBoltRepository(db)
		if err != nil {
			db.Close()
			return stores{}, err
		}
		orders, err := repository.NewFulfillmentOrderBoltRepository(db)
		if err != nil {
			db.Close()
			return stores{}, err
		}
		return stores{contributions: contributions, orders: orders, close: db.Close}, nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.Store)
		if err != nil {
			return stores{}, err
		}
		return stores{
			contributions: repository.NewContributionDynamoRepository(ddb, cfg.Store.ContributionsTable),
			orders:        repository.NewFulfillmentOrderDynamoRepository(ddb, cfg.Store.OrdersTable),
			close:         func() error { return nil },
		}, nil
	}
}

func newPublisher(ctx context.Context, cfg config.Config, zlog *zap.Logger) (interfaces.INotificationPublisher, func(), error) {
	if cfg.Redis.Addr == "" {
		return notification.NewLogPublisher(zlog.Named("notify")), func() {}, nil
	}
	client, err := notification.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("redis: %w", err)
	}
	pub := notification.NewRedisStreamPublisher(client, cfg.Redis.Stream, zlog.Named("notify"))
	return pub, func() { _ = client.Close() }, nil
}
