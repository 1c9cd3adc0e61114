package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"roastmyjob/internal/config"
	"roastmyjob/internal/fulfillment"
	"roastmyjob/internal/handlers"
	"roastmyjob/internal/orders"
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

	// Fulfillment is an extension point; the default just marks paid orders
	// in the logs. With a topic configured, paid orders are published to SNS.
	var fulfiller fulfillment.Handler = fulfillment.LogHandler{}
	if arn := cfg.OrderAlertsTopicARN(); arn != "" {
		fulfiller = fulfillment.NewSNSNotifier(sns.NewFromConfig(awsCfg), arn)
	}

	var recorder *orders.Recorder
	if tbl := cfg.OrdersTable(); tbl != "" {
		recorder = orders.NewRecorder(dynamodb.NewFromConfig(awsCfg), tbl)
	}

	h := handlers.NewWebhookHandler(cfg, fulfiller, recorder)

	lambda.Start(h.Handle)
}
