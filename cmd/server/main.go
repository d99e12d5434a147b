package main

import (
	"context"
	"log"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/libraryshop/books-api/books"
	"github.com/libraryshop/books-api/handlers"
	"github.com/libraryshop/books-api/pkg/config"
	"github.com/libraryshop/books-api/pkg/logger"
	"github.com/libraryshop/books-api/pkg/metrics"
	"github.com/libraryshop/books-api/pkg/transport"
)

func main() {
	configPath := os.Getenv("CONFIG_FILE_PATH")
	if configPath == "" {
		configPath = "service.yaml"
	}

	if err := run(context.Background(), configPath); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func run(ctx context.Context, cfgPath string) error {
	cfg, err := config.LoadFile(cfgPath)
	if err != nil {
		return err
	}

	logg := logger.Configure(cfg.Logging)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return err
	}

	provider, err := metrics.New(cfg.Metrics)
	if err != nil {
		return err
	}

	repo := books.NewRepository(dynamodb.NewFromConfig(awsCfg), cfg.TableName)
	h := handlers.New(repo, cfg.Stage)

	return transport.StartHTTPServer(cfg.Server.Port, h, logg, provider)
}
