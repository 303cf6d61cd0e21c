package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/niya-shroff/folio/client"
	"github.com/niya-shroff/folio/internal/config"
	"github.com/niya-shroff/folio/internal/infra/database"
	"github.com/niya-shroff/folio/internal/infra/gateway"
	"github.com/niya-shroff/folio/internal/infra/repository"
	"github.com/niya-shroff/folio/internal/infra/storage"
	"github.com/niya-shroff/folio/internal/mail"
	"github.com/niya-shroff/folio/internal/present/rest"
	"github.com/niya-shroff/folio/internal/present/rest/middleware"
	"github.com/niya-shroff/folio/internal/search"
	"github.com/niya-shroff/folio/internal/service"
	"github.com/niya-shroff/folio/internal/trace"
	"github.com/niya-shroff/folio/internal/usecase"
)

func main() {
	ctx := context.Background()

	configPath := os.Getenv("FOLIO_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	conf, err := config.Load(configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	if conf.Server.EnableTrace {
		shutdown, err := trace.SetupTraceProvider(ctx, conf.Server.TraceEndpoint, "folio")
		if err != nil {
			panic("failed to setup trace provider: " + err.Error())
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			shutdown(ctx)
		}()
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		panic("failed to connect database")
	}

	err = database.MigratePostgres(db)
	if err != nil {
		panic("failed to migrate database")
	}

	rdb := database.NewRedis(conf.Server.RedisAddr, conf.Server.RedisPassword, conf.Server.RedisDB)
	mc := database.NewMemcached(conf.Server.MemcachedAddr)

	store, err := storage.NewS3Store(ctx, conf.Server.Storage)
	if err != nil {
		panic("failed to setup object storage: " + err.Error())
	}

	contentRepo := repository.NewContentRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	githubGateway := gateway.NewGitHubGateway(client.New())

	contentUsecase := usecase.NewContentUsecase(contentRepo, store)
	projectUsecase := usecase.NewProjectUsecase(githubGateway, conf.Site.GithubUser)

	authService := service.NewAuthService(profileRepo, service.NewRedisTokenStore(rdb))
	signalService := service.NewSignalService(rdb)
	mailer := mail.NewMailer(conf.Server.SMTP, conf.Site.ContactRecipient)

	catalog := search.NewCatalog(conf.Site.GithubUser, githubGateway, contentUsecase)
	sessions := search.NewManager(search.NewAssembler(catalog))

	e := echo.New()
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("folio"))
	}

	authMW := middleware.NewAuthMiddleware(authService)
	handler := rest.NewHandler(
		conf.Site,
		sessions,
		contentUsecase,
		projectUsecase,
		authService,
		signalService,
		mailer,
		mc,
	)
	handler.RegisterRoutes(e, authMW.RequireAdmin)

	slog.Info(
		"Starting server",
		slog.String("listen", conf.Server.Listen),
		slog.String("module", "main"),
	)

	e.Logger.Fatal(e.Start(conf.Server.Listen))
}
