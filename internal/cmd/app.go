package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"pos/config"
	"pos/internal/delivery"
	"pos/internal/delivery/api"
	"pos/internal/domain/service"
	"pos/internal/infra/auth"
	"pos/internal/infra/backup"
	logs "pos/internal/infra/log"
	"pos/internal/infra/metrics"
	"pos/internal/infra/persistence"
	"pos/internal/infra/persistence/kv"
	"pos/internal/infra/pubsub"
	"pos/internal/infra/qrcode"
	"pos/internal/state"
	"pos/internal/usecase"
	"pos/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Ctx        context.Context
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

// coreOptions builds everything except the HTTP delivery: the register
// state, its persistence, the side services and the usecases.
func coreOptions() fx.Option {
	return fx.Options(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			loadInitialData,
			observeState,
		),
	)
}

// serverOptions is the full application run by `pos serve`.
func serverOptions() fx.Option {
	return fx.Options(
		coreOptions(),
		injectDelivery(),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Invoke(startServer),
	)
}

// cliOptions runs the core without a server and keeps stdout free for
// command output by logging to stderr.
func cliOptions() fx.Option {
	return fx.Options(
		coreOptions(),
		fx.Provide(
			fx.Annotate(
				func() io.Writer { return os.Stderr },
				fx.ResultTags(`name:"logOutput"`),
			),
		),
		fx.NopLogger,
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		func(m *metrics.Metrics) kv.FailureRecorder { return m },
		func(m *metrics.Metrics) service.SalesMetrics { return m },
		state.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		persistence.Module,
		backup.Module,
		fx.Provide(
			auth.NewConfigCashierRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewBootstrapService,
			impl.NewSessionService,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewOrderService,
			impl.NewReportService,
			impl.NewSettingsService,
			impl.NewBackupService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		api.Module,
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// loadInitialData fills the store from persistence before anything serves requests.
func loadInitialData(lc fx.Lifecycle, bootstrap usecase.BootstrapUsecase) {
	lc.Append(fx.Hook{
		OnStart: bootstrap.LoadInitialData,
	})
}

func observeState(lc fx.Lifecycle, store *state.Store, m *metrics.Metrics) {
	unsubscribe := store.Subscribe("metrics", state.AllEvents, func(e state.Event) error {
		keys := make([]string, len(e.Keys))
		for i, k := range e.Keys {
			keys[i] = string(k)
		}
		m.StateChanged(e.Kind.String(), keys)

		return nil
	})

	lc.Append(fx.StopHook(unsubscribe))
}

func startServer(params startServerParams) {
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(params.Ctx); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						_ = params.Shutdowner.Shutdown(fx.ExitCode(1))
					}
				}()
			}

			return nil
		},
	})
}
