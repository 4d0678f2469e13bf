package di

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	activityRepo "github.com/reshetovitsme/tg-restricted-relay/internal/modules/activity/repository"
	activityService "github.com/reshetovitsme/tg-restricted-relay/internal/modules/activity/service"
	identityDomain "github.com/reshetovitsme/tg-restricted-relay/internal/modules/identity/domain"
	identityRepo "github.com/reshetovitsme/tg-restricted-relay/internal/modules/identity/repository"
	identityService "github.com/reshetovitsme/tg-restricted-relay/internal/modules/identity/service"
	linkService "github.com/reshetovitsme/tg-restricted-relay/internal/modules/link/service"
	resolveCache "github.com/reshetovitsme/tg-restricted-relay/internal/modules/resolve/cache"
	resolveService "github.com/reshetovitsme/tg-restricted-relay/internal/modules/resolve/service"
	userRepo "github.com/reshetovitsme/tg-restricted-relay/internal/modules/user/repository"
	userService "github.com/reshetovitsme/tg-restricted-relay/internal/modules/user/service"
	"github.com/reshetovitsme/tg-restricted-relay/internal/shared/config"
	telegramHandler "github.com/reshetovitsme/tg-restricted-relay/internal/transport/telegram"
	httpServer "github.com/reshetovitsme/tg-restricted-relay/internal/transport/http"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register User Repository
	do.Provide(injector, func(i do.Injector) (userRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := userRepo.NewFileStorage(cfg.StoragePath)
		if err != nil {
			return nil, oops.With("storage_path", cfg.StoragePath, "context", "failed to initialize user repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Activity Repository
	do.Provide(injector, func(i do.Injector) (activityRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := activityRepo.NewFileStorage(cfg.StoragePath)
		if err != nil {
			return nil, oops.With("storage_path", cfg.StoragePath, "context", "failed to initialize activity repository").Wrap(err)
		}
		return repo, nil
	})

	// Register User Service
	do.Provide(injector, func(i do.Injector) (*userService.Service, error) {
		repo := do.MustInvoke[userRepo.Repository](i)
		return userService.New(repo), nil
	})

	// Register Activity Service
	do.Provide(injector, func(i do.Injector) (*activityService.Service, error) {
		repo := do.MustInvoke[activityRepo.Repository](i)
		return activityService.New(repo), nil
	})

	// Register Link Parser
	do.Provide(injector, func(i do.Injector) (*linkService.Parser, error) {
		return linkService.New(), nil
	})

	// Register Service Identity (bot client is attached once the bot is created)
	do.Provide(injector, func(i do.Injector) (*identityRepo.BotAPI, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return identityRepo.NewDeferredBotAPI(identityDomain.RoleService, cfg.RelayChatID), nil
	})

	// Register Identity Router
	do.Provide(injector, func(i do.Injector) (*identityService.Router, error) {
		cfg := do.MustInvoke[*config.Config](i)
		serviceIdentity := do.MustInvoke[*identityRepo.BotAPI](i)

		var fullAccess identityDomain.Identity
		if cfg.HasFullAccess() {
			opts := []bot.Option{bot.WithSkipGetMe()}
			if cfg.FullAccessAPIURL != "" {
				opts = append(opts, bot.WithServerURL(cfg.FullAccessAPIURL))
			}

			client, err := bot.New(cfg.FullAccessToken, opts...)
			if err != nil {
				return nil, oops.With("context", "failed to create full access client").Wrap(err)
			}
			fullAccess = identityRepo.NewBotAPI(identityDomain.RoleFullAccess, client, cfg.RelayChatID)
		}

		return identityService.New(cfg, serviceIdentity, fullAccess), nil
	})

	// Register Resolution Cache
	do.Provide(injector, func(i do.Injector) (*resolveCache.Cache, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return resolveCache.New(cfg.CacheSize, cfg.CacheTTLDuration()), nil
	})

	// Register Resolution Engine
	do.Provide(injector, func(i do.Injector) (*resolveService.Engine, error) {
		router := do.MustInvoke[*identityService.Router](i)
		cache := do.MustInvoke[*resolveCache.Cache](i)
		return resolveService.New(router, cache), nil
	})

	// Register Telegram Handler
	do.Provide(injector, func(i do.Injector) (*telegramHandler.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		parser := do.MustInvoke[*linkService.Parser](i)
		engine := do.MustInvoke[*resolveService.Engine](i)
		userService := do.MustInvoke[*userService.Service](i)
		activityService := do.MustInvoke[*activityService.Service](i)
		return telegramHandler.New(cfg, parser, engine, userService, activityService), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		activityService := do.MustInvoke[*activityService.Service](i)
		server := httpServer.New(cfg, activityService)
		server.SetLogger(slog.Default())
		return server, nil
	})

	// Register Bot (needs to be initialized after handlers are ready)
	do.Provide(injector, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)
		telegramHandler := do.MustInvoke[*telegramHandler.Handler](i)

		opts := []bot.Option{
			bot.WithDefaultHandler(telegramHandler.HandleUpdate),
		}
		if cfg.TelegramAPIURL != "" {
			opts = append(opts, bot.WithServerURL(cfg.TelegramAPIURL))
		}

		b, err := bot.New(cfg.TelegramBotToken, opts...)
		if err != nil {
			return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
		}

		// Register bot commands
		telegramHandler.RegisterCommands(b)

		// The service identity fetches through the same bot that handles updates
		serviceIdentity := do.MustInvoke[*identityRepo.BotAPI](i)
		serviceIdentity.SetClient(b)

		return b, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	ctx := context.Background()

	// Shutdown bot if it exists
	if b, err := do.Invoke[*bot.Bot](injector); err == nil && b != nil {
		b.Close(ctx)
	}

	return nil
}
