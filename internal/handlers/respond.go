package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"roastmyjob/internal/apperr"
)

func jsonResp(status int, v any) (events.APIGatewayV2HTTPResponse, error) {
	b, _ := json.Marshal(v)
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers: map[string]string{
			"content-type":                "application/json",
			"access-control-allow-origin": "*",
		},
		Body: string(b),
	}, nil
}

func errResp(status int, msg string) (events.APIGatewayV2HTTPResponse, error) {
	return jsonResp(status, map[string]any{
		"error": msg,
	})
}

func textResp(status int, body string) (events.APIGatewayV2HTTPResponse, error) {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers: map[string]string{
			"content-type": "text/plain",
		},
		Body: body,
	}, nil
}

// fail converts a classified error into the boundary response.
func fail(err error) (events.APIGatewayV2HTTPResponse, error) {
	return errResp(apperr.Status(err), err.Error())
}

func isPost(req events.APIGatewayV2HTTPRequest) bool {
	return req.RequestContext.HTTP.Method == http.MethodPost
}
