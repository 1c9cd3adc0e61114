package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"roastmyjob/internal/config"
	"roastmyjob/internal/handlers"
)

func main() {
	ctx := context.Background()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("load aws config: %v", err)
	}
	cfg, err := config.Load(ctx, awsCfg)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	h := handlers.NewAuditHandler(cfg)

	lambda.Start(h.Handle)
}
