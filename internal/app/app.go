package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/niksmo/ecom-admin/config"
	"github.com/niksmo/ecom-admin/internal/adapter"
	"github.com/niksmo/ecom-admin/internal/adapter/archive"
	"github.com/niksmo/ecom-admin/internal/adapter/backend"
	"github.com/niksmo/ecom-admin/internal/adapter/httphandler"
	"github.com/niksmo/ecom-admin/internal/adapter/kafka"
	"github.com/niksmo/ecom-admin/internal/adapter/storage"
	"github.com/niksmo/ecom-admin/internal/core/port"
	"github.com/niksmo/ecom-admin/internal/core/service"
	"github.com/niksmo/ecom-admin/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type serdes struct {
	adminEvent    schema.Serde
	productFilter schema.Serde
}

type producers struct {
	adminEvents   kafka.AdminEventsProducer
	productFilter kafka.ProductFilterProducer
}

type processors struct {
	productFilter port.ProductFilterProcessor
	view          *kafka.ProductFilterView
}

type repositories struct {
	drafts    storage.DraftsRepository
	revisions storage.RevisionsRepository
}

type App struct {
	ctx          context.Context
	cfg          config.Config
	security     kafka.Security
	sqlDB        storage.SQLDB
	repositories repositories
	backend      *backend.Client
	archiver     port.Archiver
	serdes       serdes
	producers    producers
	processors   processors
	service      service.Service
	httpServer   httphandler.HTTPServer
	wg           *sync.WaitGroup
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg, wg: new(sync.WaitGroup)}

	app.initLogger()
	app.initSecurity()
	app.initStorage()
	app.initBackend()
	app.initArchiver()
	app.initSerdes()
	app.initProducers()
	app.initProcessors()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initSecurity() {
	const op = "App.initSecurity"

	tlsCfg := app.cfg.Broker.TLS
	sasl := app.cfg.Broker.SASL

	sec := kafka.Security{User: sasl.User, Pass: sasl.Pass}
	if tlsCfg.Enabled() {
		tc, err := adapter.MakeTLSConfig(tlsCfg.CAFile, tlsCfg.CertFile, tlsCfg.KeyFile)
		if err != nil {
			app.fallDown(op, err)
		}
		sec.TLS = tc
	}
	sec.ApplyGoka()
	app.security = sec
}

func (app *App) initStorage() {
	const op = "App.initStorage"

	sqlDB, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.sqlDB = sqlDB
	app.repositories.drafts = storage.NewDraftsRepository(sqlDB)
	app.repositories.revisions = storage.NewRevisionsRepository(sqlDB)
}

func (app *App) initBackend() {
	cfg := app.cfg.Backend
	app.backend = backend.New(
		cfg.BaseURL,
		backend.TokenOpt(cfg.Token),
		backend.TimeoutOpt(cfg.Timeout),
		backend.MaxAttemptsOpt(cfg.MaxAttempts),
	)
}

func (app *App) initArchiver() {
	const op = "App.initArchiver"
	log := slog.With("op", op)

	cfg := app.cfg.Archive
	if cfg.Bucket == "" {
		log.Info("archiving is disabled")
		return
	}

	a, err := archive.NewS3Archiver(app.ctx, archive.Config{
		Bucket:   cfg.Bucket,
		Prefix:   cfg.Prefix,
		Region:   cfg.Region,
		Endpoint: cfg.Endpoint,
	})
	if err != nil {
		app.fallDown(op, err)
	}
	app.archiver = a
}

func (app *App) initSerdes() {
	const op = "App.initSerdes"
	urls := app.cfg.Broker.SchemaRegistryURLs
	ctx := app.ctx

	srClient, err := sr.NewClient(sr.URLs(urls...))
	if err != nil {
		app.fallDown(op, err)
	}

	schemaIdentifier := schema.NewSchemaIdentifier(srClient)

	adminEventSS := app.cfg.Broker.Topics.AdminEvents + "-value"
	adminEventSerde, err := schema.NewSerdeAdminEventV1(
		ctx,
		schema.SubjectOpt(adminEventSS),
		schema.SchemaIdentifierOpt(schemaIdentifier),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	productFilterSS := app.cfg.Broker.Topics.FilterProductStream + "-value"
	productFilterSerde, err := schema.NewSerdeProductFilterV1(
		ctx,
		schema.SubjectOpt(productFilterSS),
		schema.SchemaIdentifierOpt(schemaIdentifier),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.serdes.adminEvent = adminEventSerde
	app.serdes.productFilter = productFilterSerde
}

func (app *App) initProducers() {
	const op = "App.initProducers"

	ctx := app.ctx
	seedBrokers := app.cfg.Broker.SeedBrokers
	topics := app.cfg.Broker.Topics

	adminEventsProducer, err := kafka.NewAdminEventsProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, topics.AdminEvents, app.security),
		kafka.ProducerEncoderOpt(app.serdes.adminEvent),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	productFilterProducer, err := kafka.NewProductFilterProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, topics.FilterProductStream, app.security),
		kafka.ProducerEncoderOpt(app.serdes.productFilter),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.producers.adminEvents = adminEventsProducer
	app.producers.productFilter = productFilterProducer
}

func (app *App) initProcessors() {
	const op = "App.initProcessors"

	seedBrokers := app.cfg.Broker.SeedBrokers
	group := app.cfg.Broker.Consumers.FilterProductGroup

	proc, err := kafka.NewProductFilterProc(
		seedBrokers,
		app.cfg.Broker.Topics.FilterProductStream,
		group,
		app.serdes.productFilter,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	view, err := kafka.NewProductFilterView(seedBrokers, group)
	if err != nil {
		app.fallDown(op, err)
	}

	app.processors.productFilter = proc
	app.processors.view = view
}

func (app *App) initCoreService() {
	adapters := service.Adapters{
		Backend:        app.backend,
		Drafts:         app.repositories.drafts,
		Revisions:      app.repositories.revisions,
		Events:         app.producers.adminEvents,
		FilterProducer: app.producers.productFilter,
		FilterView:     app.processors.view,
		Archiver:       app.archiver,
	}

	app.service = service.New(
		adapters,
		service.MaxImageBytesOpt(app.cfg.Uploads.MaxImageBytes),
	)
}

func (app *App) initInboundAdapters() {
	handler := httphandler.NewRouter(app.service, httphandler.RouterConfig{
		Token:         app.cfg.Admin.Token,
		MaxImageBytes: app.cfg.Uploads.MaxImageBytes,
	})
	app.httpServer = httphandler.NewHTTPServer(
		app.cfg.HTTPServerAddr, handler, app.cfg.HTTPRequestTimeout,
	)
}

func (app *App) Run(stopFn context.CancelFunc) {
	app.wg.Add(2)
	go app.processors.productFilter.Run(app.ctx, stopFn, app.wg)
	go app.processors.view.Run(app.ctx, stopFn, app.wg)
	app.wg.Wait()

	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.processors.productFilter.Close()
	app.processors.view.Close()
	app.producers.adminEvents.Close()
	app.producers.productFilter.Close()
	app.sqlDB.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
