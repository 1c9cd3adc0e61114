package handlers

import (
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"roastmyjob/internal/config"
)

func httpReq(method, body string) events.APIGatewayV2HTTPRequest {
	return events.APIGatewayV2HTTPRequest{
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{Method: method},
		},
		Body: body,
	}
}

func postReq(body string) events.APIGatewayV2HTTPRequest {
	return httpReq(http.MethodPost, body)
}

func cfgFromMap(vals map[string]string) *config.Config {
	return config.New(func(k string) string { return vals[k] })
}
