package fulfillment

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// Order is the verified metadata echoed back by the payment provider for one
// completed checkout session.
type Order struct {
	SessionID string `json:"session_id"`
	Product   string `json:"product"`
	VariantID string `json:"variant"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
	Roast     string `json:"roast,omitempty"`
	Style     string `json:"style,omitempty"`
}

// Handler receives paid orders. Actual fulfillment (Printful order creation,
// artwork upload, shipping) is not implemented anywhere; implementations of
// this interface are the extension point for it.
type Handler interface {
	Fulfill(ctx context.Context, o Order) error
}

// LogHandler is the default handler: it marks the order as paid in the logs
// and does nothing else.
type LogHandler struct{}

func (LogHandler) Fulfill(ctx context.Context, o Order) error {
	log.Printf("order paid: session=%s product=%s variant=%s size=%s color=%s", o.SessionID, o.Product, o.VariantID, o.Size, o.Color)
	return nil
}

// PublishAPI is the slice of the SNS client the notifier uses.
type PublishAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSNotifier publishes each paid order to a topic. Email subscribers confirm
// once, then receive order alerts.
type SNSNotifier struct {
	client   PublishAPI
	topicARN string
}

func NewSNSNotifier(client PublishAPI, topicARN string) *SNSNotifier {
	return &SNSNotifier{client: client, topicARN: topicARN}
}

func (n *SNSNotifier) Fulfill(ctx context.Context, o Order) error {
	b, err := json.Marshal(o)
	if err != nil {
		return err
	}
	_, err = n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String("Order paid: " + o.Product),
		Message:  aws.String(string(b)),
	})
	return err
}
