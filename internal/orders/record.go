package orders

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"roastmyjob/internal/fulfillment"
)

// PutItemAPI is the slice of the DynamoDB client the recorder uses.
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Record mirrors the DynamoDB item for one paid checkout session.
type Record struct {
	PK        string `dynamodbav:"PK"`
	Product   string `dynamodbav:"Product"`
	VariantID string `dynamodbav:"VariantId"`
	Size      string `dynamodbav:"Size,omitempty"`
	Color     string `dynamodbav:"Color,omitempty"`
	Style     string `dynamodbav:"Style,omitempty"`
	Roast     string `dynamodbav:"Roast,omitempty"`
	PaidAt    string `dynamodbav:"PaidAt"`
}

type Recorder struct {
	ddb   PutItemAPI
	table string
}

func NewRecorder(ddb PutItemAPI, table string) *Recorder {
	return &Recorder{ddb: ddb, table: table}
}

// RecordPaid writes the paid-order marker with a conditional put keyed by the
// checkout session id. Returns (true, nil) when the session was already
// recorded, so redelivered webhooks can be detected without extra state.
func (r *Recorder) RecordPaid(ctx context.Context, o fulfillment.Order) (bool, error) {
	item, err := attributevalue.MarshalMap(Record{
		PK:        "SESSION#" + o.SessionID,
		Product:   o.Product,
		VariantID: o.VariantID,
		Size:      o.Size,
		Color:     o.Color,
		Style:     o.Style,
		Roast:     o.Roast,
		PaidAt:    time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}
