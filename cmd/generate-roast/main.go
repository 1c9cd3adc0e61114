package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"roastmyjob/internal/config"
	"roastmyjob/internal/handlers"
	"roastmyjob/internal/roast"
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

	client := roast.NewOpenAIClient(cfg.OpenAIKey(), cfg.ChatModel(), cfg.ImageModel())
	h := handlers.NewRoastHandler(roast.NewGenerator(client, client))

	lambda.Start(h.Handle)
}
