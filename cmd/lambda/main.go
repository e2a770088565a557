package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/quiz-arena/internal/config"
	"github.com/saulo-duarte/quiz-arena/internal/container"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to load config")
	}
	config.InitLogger(cfg.LogLevel)

	c, err := container.New(context.Background(), cfg)
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to build application")
	}

	adapter := httpadapter.New(c.Handler())
	lambda.Start(adapter.ProxyWithContext)
}
