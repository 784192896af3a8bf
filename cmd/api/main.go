package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/clearpipe/outreach-insights-api/infrastructure/database/postgres"
	"github.com/clearpipe/outreach-insights-api/infrastructure/integrator/instantly"
	"github.com/clearpipe/outreach-insights-api/infrastructure/integrator/instantly/instantlyclient"
	"github.com/clearpipe/outreach-insights-api/infrastructure/integrator/lemlist"
	"github.com/clearpipe/outreach-insights-api/infrastructure/integrator/lemlist/lemlistclient"
	"github.com/clearpipe/outreach-insights-api/infrastructure/repository"
	"github.com/clearpipe/outreach-insights-api/internal/api"
	"github.com/clearpipe/outreach-insights-api/internal/config"
	"github.com/clearpipe/outreach-insights-api/internal/scheduler"
	"github.com/clearpipe/outreach-insights-api/internal/usecases/authenticating"
	"github.com/clearpipe/outreach-insights-api/internal/usecases/dashboarding"
	"github.com/clearpipe/outreach-insights-api/internal/usecases/summarizing"
	"github.com/clearpipe/outreach-insights-api/internal/usecases/tenancy"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	tenantRepo := repository.NewTenantRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	tenantResolver := tenancy.NewService(tenantRepo)

	instantlyClient := instantlyclient.NewClient(cfg)
	instantlyIntegrator := instantly.New(cfg, instantlyClient)

	lemlistClient := lemlistclient.NewClient(cfg)
	lemlistIntegrator := lemlist.New(cfg, lemlistClient)

	dashboardService := dashboarding.NewService(cfg, instantlyIntegrator, lemlistIntegrator)
	summaryService := summarizing.NewService(dashboardService)

	credentialCheckService := scheduler.NewCredentialCheckService(
		tenantRepo,
		instantlyIntegrator,
		lemlistIntegrator,
		cfg,
	)

	if err := credentialCheckService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start credential check scheduler")
	}

	server, err := api.New(
		cfg,
		tenantRepo,
		tenantResolver,
		dashboardService,
		summaryService,
		authenticator,
		credentialCheckService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
