package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
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
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	logg := logger.Configure(cfg.Logging)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatalf("FATAL: aws configuration error: %v", err)
	}

	provider, err := metrics.New(cfg.Metrics)
	if err != nil {
		log.Fatalf("FATAL: metrics setup error: %v", err)
	}

	repo := books.NewRepository(dynamodb.NewFromConfig(awsCfg), cfg.TableName)
	h := handlers.New(repo, cfg.Stage)

	adapter := transport.NewLambdaAdapter("get_books", h.List, logg, provider)
	lambda.Start(adapter.Handle)
}
