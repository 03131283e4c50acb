package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/kbukum/wonderwords/errors"
	"github.com/kbukum/wonderwords/transcript"
)

// Event is an API-gateway style HTTP invocation.
type Event struct {
	HTTPMethod                      string              `json:"httpMethod"`
	Path                            string              `json:"path"`
	QueryStringParameters           map[string]string   `json:"queryStringParameters"`
	MultiValueQueryStringParameters map[string][]string `json:"multiValueQueryStringParameters"`
	PathParameters                  map[string]string   `json:"pathParameters"`
}

// Response is the gateway response shape.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// HandleEvent resolves a gateway event. The video id comes from the path
// parameter or the video_id query parameter; languages from "languages" or
// "lang". An empty method is treated as GET.
func (h *Handler) HandleEvent(ctx context.Context, ev Event) Response {
	switch ev.HTTPMethod {
	case http.MethodOptions:
		return eventResponse(http.StatusNoContent, nil)
	case "", http.MethodGet:
	default:
		appErr := errors.MethodNotAllowed(ev.HTTPMethod)
		return eventResponse(appErr.HTTPStatus, appErr.ToResponse())
	}

	q := url.Values{}
	for k, v := range ev.MultiValueQueryStringParameters {
		q[k] = append(q[k], v...)
	}
	for k, v := range ev.QueryStringParameters {
		if _, ok := q[k]; !ok {
			q.Set(k, v)
		}
	}

	id := firstNonEmpty(ev.PathParameters["video_id"], q.Get("video_id"))
	res, err := h.resolver.Execute(ctx, requestFrom(id, q))
	return eventResponse(envelope(res, err))
}

func requestFrom(videoID string, q url.Values) transcript.Request {
	return transcript.Request{VideoID: videoID, Languages: languagesFrom(q)}
}

func eventResponse(status int, body any) Response {
	headers := map[string]string{"Content-Type": "application/json"}
	for k, v := range corsHeaders {
		headers[k] = v
	}
	resp := Response{StatusCode: status, Headers: headers}
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			data, _ = json.Marshal(errors.Internal(err).ToResponse())
			resp.StatusCode = http.StatusInternalServerError
		}
		resp.Body = string(data)
	}
	return resp
}
