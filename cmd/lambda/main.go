package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/procfile-cnb/parser/internal/parser"
	"github.com/procfile-cnb/parser/internal/result"
)

// LambdaEvent is the invocation payload (e.g. from API Gateway).
type LambdaEvent struct {
	Body     string `json:"body"` // Procfile text (raw or base64 if isBase64)
	IsBase64 bool   `json:"isBase64,omitempty"`
	Strict   *bool  `json:"strict,omitempty"`
	EmitHCL  *bool  `json:"emitHcl,omitempty"`
}

// LambdaResponse is returned to the client (API Gateway).
type LambdaResponse struct {
	StatusCode int               `json:"statusCode"`
	Success    bool              `json:"success"`
	Processes  []result.Process  `json:"processes,omitempty"`
	Default    string            `json:"default,omitempty"`
	Errors     []result.Error    `json:"errors,omitempty"`
	Warnings   []result.Warning  `json:"warnings,omitempty"`
	Files      map[string]string `json:"files,omitempty"` // filename -> content (base64)
}

// APIGatewayResponse is the shape expected by API Gateway proxy integration (body = JSON string).
type APIGatewayResponse struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body"`
}

func invalidInput(msg string) LambdaResponse {
	return LambdaResponse{
		StatusCode: 400,
		Errors:     []result.Error{{Type: result.ErrorInput, Severity: "error", Message: msg}},
	}
}

func handler(ctx context.Context, event LambdaEvent) (APIGatewayResponse, error) {
	body := event.Body
	if event.IsBase64 {
		dec, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return wrap(invalidInput("invalid base64 body: " + err.Error())), nil
		}
		body = string(dec)
	}
	if !utf8.ValidString(body) {
		return wrap(invalidInput("Procfile is not valid UTF-8")), nil
	}

	opts := parser.DefaultOptions()
	if event.Strict != nil {
		opts.Strict = *event.Strict
	}
	if event.EmitHCL != nil {
		opts.EmitHCL = *event.EmitHCL
	}
	res, err := parser.New(opts).Parse(body)
	if err != nil {
		return wrap(LambdaResponse{
			StatusCode: 500,
			Errors:     []result.Error{{Type: result.ErrorParse, Severity: "error", Message: err.Error()}},
		}), nil
	}

	out := LambdaResponse{
		StatusCode: 200,
		Success:    res.Success,
		Processes:  res.Processes,
		Default:    res.Default,
		Errors:     res.Errors,
		Warnings:   res.Warnings,
	}
	if res.Success && len(res.Files) > 0 {
		out.Files = make(map[string]string)
		for name, content := range res.Files {
			out.Files[name] = base64.StdEncoding.EncodeToString(content)
		}
	}
	if !res.Success {
		out.StatusCode = 422
	}
	return wrap(out), nil
}

func wrap(out LambdaResponse) APIGatewayResponse {
	bodyBytes, _ := json.Marshal(out)
	return APIGatewayResponse{
		StatusCode: out.StatusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(bodyBytes),
	}
}

func main() {
	lambda.Start(handler)
}
