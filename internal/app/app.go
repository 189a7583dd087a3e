package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/stokpilot/stokpilot/config"
	"github.com/stokpilot/stokpilot/internal/adapter/authtoken"
	"github.com/stokpilot/stokpilot/internal/adapter/httphandler"
	"github.com/stokpilot/stokpilot/internal/adapter/storage"
	"github.com/stokpilot/stokpilot/internal/core/service"
)

type App struct {
	ctx        context.Context
	cfg        config.Config
	sqlDB      storage.SQLDB
	service    service.Service
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initStorage()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStorage() {
	const op = "App.initStorage"

	sqlDB, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.sqlDB = sqlDB
}

func (app *App) initCoreService() {
	app.service = service.New(
		storage.NewUsersRepository(app.sqlDB),
		storage.NewProductsRepository(app.sqlDB),
		storage.NewCategoriesRepository(app.sqlDB),
		storage.NewBrandsRepository(app.sqlDB),
		authtoken.NewJWT(app.cfg.Auth.JWTSecret, app.cfg.Auth.TokenTTL),
		authtoken.NewBcryptHasher(),
	)
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr

	mux := http.NewServeMux()
	httphandler.RegisterAuth(mux, app.service)

	authed := http.NewServeMux()
	httphandler.RegisterProducts(authed, app.service)
	httphandler.RegisterTaxonomy(authed, app.service)
	mux.Handle("/api/", httphandler.Authenticate(app.service)(authed))

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(addr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.sqlDB.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
