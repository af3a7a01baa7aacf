package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/linskybing/support-tracker/internal/api/middleware"
	"github.com/linskybing/support-tracker/internal/api/routes"
	"github.com/linskybing/support-tracker/internal/application"
	"github.com/linskybing/support-tracker/internal/config"
	"github.com/linskybing/support-tracker/internal/config/db"
	"github.com/linskybing/support-tracker/internal/cron"
	"github.com/linskybing/support-tracker/internal/repository"
	"github.com/linskybing/support-tracker/pkg/storage"
	"github.com/spf13/pflag"
)

// @title Support Tracker API
// @version 1.0
// @description Clients file support tickets; admins triage them with statuses, tags and replies.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	port     string
	seed     bool
	seedFile string
}

// parseFlags reads command line overrides on top of the loaded config.
func parseFlags(args []string) (options, error) {
	var opts options
	flagSet := pflag.NewFlagSet("support-tracker", pflag.ContinueOnError)
	flagSet.StringVar(&opts.port, "port", config.ServerPort, "HTTP listen port")
	flagSet.BoolVar(&opts.seed, "seed", true, "insert default statuses, tags and the admin account on startup")
	flagSet.StringVar(&opts.seedFile, "seed-file", config.SeedFile, "YAML file with statuses, tags and admin credentials to seed")
	err := flagSet.Parse(args)
	return opts, err
}

func run() error {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	logger := config.SetupLogger()
	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.Init(config.SessionSecret)

	if err := db.Init(); err != nil {
		return err
	}

	if opts.seed {
		data := db.DefaultSeedData()
		if opts.seedFile != "" {
			var err error
			if data, err = db.LoadSeedFile(opts.seedFile); err != nil {
				return err
			}
		}
		if err := db.Seed(db.DB, data); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos := repository.NewRepositories(db.DB)
	if config.SessionBackend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer client.Close()
		repos.Session = repository.NewRedisSessionRepo(client)
		logger.Info("using redis session store", "addr", config.RedisAddr)
	}

	var store application.ObjectStore
	if config.MinioEndpoint != "" {
		minioStore, err := storage.NewMinioStore(ctx, storage.MinioConfig{
			Endpoint:   config.MinioEndpoint,
			AccessKey:  config.MinioAccessKey,
			SecretKey:  config.MinioSecretKey,
			Bucket:     config.MinioBucket,
			UseSSL:     config.MinioUseSSL,
			SkipVerify: config.MinioSkipTLS,
		})
		if err != nil {
			return err
		}
		store = minioStore
	} else {
		logger.Info("MINIO_ENDPOINT not set, attachments disabled")
	}

	services := application.New(repos, store)
	cron.StartSessionCleanup(ctx, services.Auth, config.SessionSweep)
	router := routes.NewRouter(services, logger)

	srv := &http.Server{
		Addr:              ":" + opts.port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting API server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
