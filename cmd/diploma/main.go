package main

import (
	"context"
	"log/slog"
	"os"

	"diploma/config"
	"diploma/internal/delivery"
	"diploma/internal/delivery/http"
	"diploma/internal/delivery/http/middleware"
	"diploma/internal/delivery/http/router/handler"
	"diploma/internal/infra/auth"
	logs "diploma/internal/infra/log"
	"diploma/internal/infra/persistence/postgres"
	"diploma/internal/infra/pubsub"
	"diploma/internal/infra/qrcode"
	"diploma/internal/infra/render"
	"diploma/internal/infra/storage"
	"diploma/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCertificateRepository,
			postgres.NewCourseContentSource,
			postgres.NewProgressSource,
			postgres.NewIdentitySource,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			render.NewPNGRenderer,
			storage.NewDocumentStore,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCertificateService,
			impl.NewVerificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCertificateHandler,
			handler.NewVerificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
