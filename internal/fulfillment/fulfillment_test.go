package fulfillment

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublish struct {
	in *sns.PublishInput
}

func (f *fakePublish) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.in = params
	return &sns.PublishOutput{}, nil
}

func TestSNSNotifierPublishesOrder(t *testing.T) {
	client := &fakePublish{}
	n := NewSNSNotifier(client, "arn:aws:sns:eu-west-1:123:orders")

	err := n.Fulfill(context.Background(), Order{
		SessionID: "cs_123",
		Product:   "tee",
		VariantID: "42",
		Size:      "M",
		Color:     "black",
	})
	require.NoError(t, err)

	require.NotNil(t, client.in)
	assert.Equal(t, "arn:aws:sns:eu-west-1:123:orders", aws.ToString(client.in.TopicArn))
	assert.Equal(t, "Order paid: tee", aws.ToString(client.in.Subject))

	var got Order
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(client.in.Message)), &got))
	assert.Equal(t, "cs_123", got.SessionID)
	assert.Equal(t, "42", got.VariantID)
}

func TestLogHandlerIsNoop(t *testing.T) {
	assert.NoError(t, LogHandler{}.Fulfill(context.Background(), Order{SessionID: "cs_1"}))
}
