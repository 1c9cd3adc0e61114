package config

import (
	"context"
	"log"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"roastmyjob/internal/merch"
)

// Config is the process configuration snapshot built once per cold start and
// handed to handler constructors. Lookups go through a function value so tests
// can inject their own table instead of process env.
type Config struct {
	lookup func(string) string
}

func New(lookup func(string) string) *Config {
	if lookup == nil {
		lookup = os.Getenv
	}
	return &Config{lookup: lookup}
}

// Load builds the Config from the environment. When SECRETS_SSM_PATH is set,
// parameters under that path are fetched with decryption and overlay the
// environment (parameter base name = env key).
func Load(ctx context.Context, awsCfg aws.Config) (*Config, error) {
	prefix := strings.TrimSpace(os.Getenv("SECRETS_SSM_PATH"))
	if prefix == "" {
		return New(nil), nil
	}

	client := ssm.NewFromConfig(awsCfg)
	overlay := map[string]string{}
	var next *string
	for {
		out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
			Path:           aws.String(prefix),
			Recursive:      aws.Bool(true),
			WithDecryption: aws.Bool(true),
			NextToken:      next,
		})
		if err != nil {
			return nil, err
		}
		for _, p := range out.Parameters {
			overlay[path.Base(aws.ToString(p.Name))] = aws.ToString(p.Value)
		}
		if out.NextToken == nil {
			break
		}
		next = out.NextToken
	}
	log.Printf("config: loaded %d parameters from %s", len(overlay), prefix)

	return New(func(key string) string {
		if v, ok := overlay[key]; ok {
			return v
		}
		return os.Getenv(key)
	}), nil
}

func (c *Config) get(key string) string { return strings.TrimSpace(c.lookup(key)) }

func (c *Config) StripeSecretKey() string     { return c.get("STRIPE_SECRET_KEY") }
func (c *Config) StripeWebhookSecret() string { return c.get("STRIPE_WEBHOOK_SECRET") }
func (c *Config) OpenAIKey() string           { return c.get("OPENAI_API_KEY") }

// ChatModel and ImageModel carry the defaults the storefront launched with.
func (c *Config) ChatModel() string {
	if m := c.get("MODEL"); m != "" {
		return m
	}
	return "gpt-4o"
}

func (c *Config) ImageModel() string {
	if m := c.get("IMAGE_MODEL"); m != "" {
		return m
	}
	return "dall-e-3"
}

// URLHost is the public base URL checkout redirects point back to.
func (c *Config) URLHost() string {
	return strings.TrimRight(c.get("URL_HOST"), "/")
}

// Variant resolves the fulfillment variant id and price entry for one derived
// key pair. Either value is empty when unconfigured.
func (c *Config) Variant(keys merch.EnvKeyPair) (variantID, price string) {
	return c.get(keys.VariantKey), c.get(keys.PriceKey)
}

// Optional side channels; empty means disabled.
func (c *Config) OrdersTable() string         { return c.get("ORDERS_TABLE") }
func (c *Config) OrderAlertsTopicARN() string { return c.get("ORDER_ALERTS_TOPIC_ARN") }
