package lambda

import (
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Content types used by handler responses
const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain"
)

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
	PathParams  map[string]string `json:"path_params"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// FromAPIGateway converts an API Gateway proxy event into a generic request
func FromAPIGateway(event events.APIGatewayProxyRequest) *Request {
	return &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        []byte(event.Body),
		PathParams:  event.PathParameters,
	}
}

// ToAPIGateway converts a generic response into an API Gateway proxy response
func (r *Response) ToAPIGateway() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       string(r.Body),
	}
}

// PathParam returns a path parameter, or "" when absent
func (r *Request) PathParam(name string) string {
	if r == nil || r.PathParams == nil {
		return ""
	}
	return r.PathParams[name]
}

// QueryParam returns a query string parameter, or "" when absent
func (r *Request) QueryParam(name string) string {
	if r == nil || r.QueryParams == nil {
		return ""
	}
	return r.QueryParams[name]
}

// JSON builds a JSON response. A value that cannot be encoded yields a 500.
func JSON(status int, v interface{}) *Response {
	body, err := json.Marshal(v)
	if err != nil {
		return &Response{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": ContentTypeJSON},
			Body:       []byte(`{"error":"Failed to marshal response"}`),
		}
	}
	return &Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": ContentTypeJSON},
		Body:       body,
	}
}

// Text builds a plain text response
func Text(status int, body string) *Response {
	return &Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": ContentTypeText},
		Body:       []byte(body),
	}
}

// Error builds a JSON error response in the {"error","message"} shape
func Error(status int, errMsg, message string) *Response {
	payload := map[string]string{"error": errMsg}
	if message != "" {
		payload["message"] = message
	}
	return JSON(status, payload)
}

// InternalError is the response returned when a handler fails unexpectedly
func InternalError() *Response {
	return Error(http.StatusInternalServerError, "Internal server error", "")
}
