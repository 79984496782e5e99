package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/srgjo27/attraction_wishlist/internal/adapter/catalog"
	"github.com/srgjo27/attraction_wishlist/internal/adapter/handler"
	"github.com/srgjo27/attraction_wishlist/internal/adapter/repository/file"
	"github.com/srgjo27/attraction_wishlist/internal/adapter/repository/postgres"
	"github.com/srgjo27/attraction_wishlist/internal/adapter/repository/redis"
	"github.com/srgjo27/attraction_wishlist/internal/core/domain"
	"github.com/srgjo27/attraction_wishlist/internal/core/ports"
	"github.com/srgjo27/attraction_wishlist/internal/core/services"
	"github.com/srgjo27/attraction_wishlist/internal/platform/config"
	"github.com/srgjo27/attraction_wishlist/internal/platform/database"
	"github.com/srgjo27/attraction_wishlist/internal/platform/logger"
)

const (
	serviceName     = "attraction-wishlist"
	shutdownTimeout = 5 * time.Second
)

const usage = `Usage: wishlist <command> [arguments]

Commands:
  list [-type T] [-q text]   browse the catalog
  show <id>                  show one attraction
  wishlist                   list saved attractions
  add <id>                   save an attraction
  remove <id>                remove a saved attraction
  toggle <id>                add or remove an attraction
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	log := logger.New(serviceName, cfg.LogLevel, cfg.LogFile)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to open wishlist store", zap.String("store", cfg.Store), zap.Error(err))
		fmt.Fprintf(stderr, "Could not open wishlist storage: %v\n", err)
		return 1
	}
	defer closeStore()

	var loader ports.CatalogLoader = catalog.NewBundledLoader(log)
	if cfg.CatalogDir != "" {
		loader = catalog.NewLoader(afero.NewOsFs(), cfg.CatalogDir, log)
	}

	catalogSvc := services.NewCatalogService(loader, cfg.CatalogName, log)
	wishlistSvc := services.NewWishlistService(ctx, store, log)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := wishlistSvc.Close(shutdownCtx); err != nil {
			log.Error("Wishlist not flushed before exit", zap.Error(err))
		}
	}()

	h := handler.NewAttractionHandler(catalogSvc, wishlistSvc, stdout)

	if err := dispatch(ctx, h, args, stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 2
		}
		log.Debug("Command failed", zap.String("command", args[0]), zap.Error(err))
		return 1
	}

	return 0
}

func dispatch(ctx context.Context, h *handler.AttractionHandler, args []string, stderr io.Writer) error {
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "list":
		fs := flag.NewFlagSet("list", flag.ContinueOnError)
		fs.SetOutput(stderr)
		typeName := fs.String("type", "", "only show attractions of this type (Exhibition or Venue)")
		query := fs.String("q", "", "case-insensitive text search")
		if err := fs.Parse(rest); err != nil {
			return err
		}

		typ, err := handler.ParseType(*typeName)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return err
		}

		return h.List(ctx, domain.Filter{Type: typ, Query: *query})
	case "wishlist":
		return h.Wishlist(ctx)
	case "show", "add", "remove", "toggle":
		if len(rest) != 1 {
			fmt.Fprintf(stderr, "%s needs exactly one attraction id\n", cmd)
			return flag.ErrHelp
		}

		id := rest[0]
		switch cmd {
		case "show":
			return h.Show(ctx, id)
		case "add":
			return h.Add(ctx, id)
		case "remove":
			return h.Remove(ctx, id)
		default:
			return h.Toggle(ctx, id)
		}
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", cmd, usage)
		return flag.ErrHelp
	}
}

func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (ports.WishlistStore, func(), error) {
	switch cfg.Store {
	case config.StoreRedis:
		log.Info("Connecting to Redis", zap.String("addr", cfg.RedisAddr()))

		client := goredis.NewClient(&goredis.Options{
			Addr: cfg.RedisAddr(),
			DB:   cfg.RedisDB,
		})

		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}

		return redis.NewWishlistStore(client, cfg.RedisKey), func() { client.Close() }, nil
	case config.StorePostgres:
		db, err := database.NewPostgresDB(ctx, cfg.Database(), log)
		if err != nil {
			return nil, nil, err
		}

		repo := postgres.NewWishlistRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}

		return repo, func() { db.Close() }, nil
	default:
		path, err := cfg.WishlistPath()
		if err != nil {
			// Without a data directory there is nowhere to keep the wishlist.
			log.Fatal("Cannot resolve wishlist data directory", zap.Error(err))
		}

		store := file.NewWishlistStore(afero.NewOsFs(), path)
		log.Debug("Using file wishlist store", zap.String("path", store.Path()))

		return store, func() {}, nil
	}
}
