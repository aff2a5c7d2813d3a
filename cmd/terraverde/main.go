package main

import (
	"context"
	"log/slog"
	"os"

	"terraverde/config"
	"terraverde/internal/delivery"
	"terraverde/internal/delivery/http"
	"terraverde/internal/delivery/http/middleware"
	"terraverde/internal/delivery/http/router/handler"
	"terraverde/internal/infra/auth"
	"terraverde/internal/infra/auth/google"
	logs "terraverde/internal/infra/log"
	"terraverde/internal/infra/persistence/postgres"
	"terraverde/internal/infra/storage"
	"terraverde/internal/usecase/impl"

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
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewBlogRepository,
			postgres.NewServiceRepository,
			postgres.NewEventRepository,
			postgres.NewNewsRepository,
			postgres.NewConsultationRepository,
			postgres.NewFavoriteRepository,
			postgres.NewReviewRepository,
			postgres.NewCartRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			google.NewAuthService,
			storage.NewMinioStorage,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewUserAdminService,
			impl.NewProductService,
			impl.NewOrderService,
			impl.NewBlogService,
			impl.NewOfferingService,
			impl.NewEventService,
			impl.NewNewsService,
			impl.NewConsultationService,
			impl.NewFavoriteService,
			impl.NewReviewService,
			impl.NewCartService,
			impl.NewSearchService,
			impl.NewMediaService,
			impl.NewSeedService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
			handler.NewBlogHandler,
			handler.NewOfferingHandler,
			handler.NewEventHandler,
			handler.NewNewsHandler,
			handler.NewConsultationHandler,
			handler.NewFavoriteHandler,
			handler.NewReviewHandler,
			handler.NewCartHandler,
			handler.NewSearchHandler,
			handler.NewAdminHandler,
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
