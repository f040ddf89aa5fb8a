package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/Akashi23/anime-quote/config"
	"github.com/Akashi23/anime-quote/internal/delivery"
	"github.com/Akashi23/anime-quote/internal/delivery/http"
	"github.com/Akashi23/anime-quote/internal/delivery/http/middleware"
	"github.com/Akashi23/anime-quote/internal/delivery/http/router/handler"
	"github.com/Akashi23/anime-quote/internal/domain/service"
	"github.com/Akashi23/anime-quote/internal/infra/auth"
	logs "github.com/Akashi23/anime-quote/internal/infra/log"
	"github.com/Akashi23/anime-quote/internal/infra/persistence/postgres"
	"github.com/Akashi23/anime-quote/internal/infra/session"
	"github.com/Akashi23/anime-quote/internal/usecase/impl"
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
			postgres.NewQuoteRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			session.NewMemoryStore,
		),
	)
}

// newPasswordHasher builds the argon2id hasher from configured cost
// parameters, falling back to the package defaults when unset.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Argon2 == nil {
		return auth.NewArgon2Hasher()
	}

	return auth.NewArgon2HasherWithParams(
		cfg.Argon2.Time,
		cfg.Argon2.MemoryKB,
		cfg.Argon2.Threads,
		cfg.Argon2.KeyLen,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewQuoteService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewQuoteHandler,
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
		delivery := delivery
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
