package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"

	config "github.com/happi-pos/backend/internal/cfg"
	v1Http "github.com/happi-pos/backend/internal/delivery/v1/http"
	"github.com/happi-pos/backend/internal/infrastructure/kafka"
	minioInfra "github.com/happi-pos/backend/internal/infrastructure/minio"
	"github.com/happi-pos/backend/internal/infrastructure/report"
	s3Repo "github.com/happi-pos/backend/internal/repository/minio"
	"github.com/happi-pos/backend/internal/repository/pgdb"
	pgdbConv "github.com/happi-pos/backend/internal/repository/pgdb/converter"
	"github.com/happi-pos/backend/internal/repository/redis"
	redisConv "github.com/happi-pos/backend/internal/repository/redis/converter"
	"github.com/happi-pos/backend/internal/session"
	"github.com/happi-pos/backend/internal/usecase"
	"github.com/happi-pos/backend/pkg/clients"
	"github.com/happi-pos/backend/pkg/closer"
	"github.com/happi-pos/backend/pkg/e"
	"github.com/happi-pos/backend/pkg/logger"
	"github.com/happi-pos/backend/pkg/postgres"
)

// App связывает все слои сервиса и владеет их жизненным циклом.
type App struct {
	cfg    *config.Config
	logger logger.Logger
}

func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	return &App{cfg: cfg, logger: logger}, nil
}

// Run поднимает зависимости, запускает HTTP-сервер и outbox-воркер
// и блокируется до сигнала завершения либо фатальной ошибки сервера.
// Ресурсы закрываются через closer в обратном порядке регистрации.
func (a *App) Run() error {
	log := a.logger
	cfg := a.cfg

	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())
	defer shutdownCancel()

	cl := closer.NewCloser(10 * time.Second)

	db, err := initPGDB(log, cfg)
	if err != nil {
		log.Errorf(err, "failed to initialize database")
		return err
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	catConv := pgdbConv.NewCategoryConverterImpl()
	prConv := pgdbConv.NewProductConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	summaryConv := redisConv.NewTodaySummaryConverterImpl()

	categoryRepo := pgdb.NewCategoryRepo(db.Pool, catConv)
	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	saleRepo := pgdb.NewSaleRepo(db.Pool)
	dashboardRepo := pgdb.NewDashboardRepo(db.Pool)
	userRepo := pgdb.NewUserRepo(db.Pool)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		log.Errorf(err, "failed to initialize minio client")
		return err
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		log.Errorf(err, "failed to initialize MinIO bucket")
		return err
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, log, shutdownCtx)
	cl.Add(func(ctx context.Context) error {
		return imagesInfra.WaitForCleanup(ctx)
	})

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = redisClient.Ping(redisCtx)
	redisCancel()
	if err != nil {
		log.Errorf(err, "failed to connect to redis")
		return err
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	cacheRepo := redis.NewCacheRepo(redisClient, summaryConv, cfg.Redis, log)
	sessions := session.NewRedisStore(redisClient, cfg.Auth)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		log.Errorf(err, "failed to initialize kafka producer")
		return err
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		log.Warnf("kafka topic check failed, events will retry: %v", err)
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	worker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)
	worker.Start(shutdownCtx)
	cl.Add(func(ctx context.Context) error {
		worker.Stop()
		return nil
	})

	renderer := report.NewRenderer()

	catalogUC := usecase.NewCatalogUC(categoryRepo, productRepo, imagesInfra, log)
	saleUC := usecase.NewSaleUC(saleRepo, productRepo, outboxRepo, db.Pool, cacheRepo, log)
	dashboardUC := usecase.NewDashboardUC(dashboardRepo, cacheRepo, renderer, log)
	authUC := usecase.NewAuthUC(userRepo, sessions, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(catalogUC, saleUC, dashboardUC, authUC, sessions)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	errCh := make(chan error, 1)
	go func() {
		log.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		log.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		log.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCancel()

	closeCtx, closeCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer closeCancel()
	if err := cl.Close(closeCtx); err != nil {
		log.Warnf("shutdown finished with errors: %v", err)
	} else {
		log.Infof("Application shutdown complete")
	}

	return appErr
}

func initPGDB(log logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(log); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
