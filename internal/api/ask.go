package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/Samit-B/school-management/internal/errors"
	"github.com/Samit-B/school-management/internal/models"
)

const contentTypeJSON = "application/json"

// Ask routes a message and returns the bot's reply.
// The status code does not decide success: the backend answers errors with a
// 500 that still carries a reply. Only transport failures and non-JSON bodies fail.
func (c *Client) Ask(ctx context.Context, message string) (*models.Reply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, apierrors.ErrEmptyMessage
	}

	route := RouteFor(message)
	contentType := ""
	if route.Body != nil {
		contentType = contentTypeJSON
	}

	resp, err := c.do(ctx, route.Method, route.Path, route.Query, route.Body, contentType)
	if err != nil {
		return nil, err
	}

	return decodeReply(route.Path, resp, ChatReplyPaths, nil, models.MsgNoResponse)
}

// AnalyzeURL asks the backend to fetch and store the content of a web page
func (c *Client) AnalyzeURL(ctx context.Context, link string) (*models.Reply, error) {
	link = strings.TrimRight(strings.TrimSpace(link), ".")
	if link == "" {
		return nil, apierrors.ErrEmptyMessage
	}

	body, err := json.Marshal(struct {
		URL string `json:"url"`
	}{URL: link})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.do(ctx, fhttp.MethodPost, models.PathAnalyzeURL, "", body, contentTypeJSON)
	if err != nil {
		return nil, err
	}

	return decodeReply(models.PathAnalyzeURL, resp, AnalyzeOKPaths, AnalyzeErrorPaths, models.MsgNoResponse)
}

// ProcessVideo asks the backend to fetch and store a video transcript
func (c *Client) ProcessVideo(ctx context.Context, link string) (*models.Reply, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil, apierrors.ErrEmptyMessage
	}

	body, err := json.Marshal(struct {
		VideoLink string `json:"video_link"`
	}{VideoLink: link})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.do(ctx, fhttp.MethodPost, models.PathProcessVideo, "", body, contentTypeJSON)
	if err != nil {
		return nil, err
	}

	return decodeReply(models.PathProcessVideo, resp, VideoOKPaths, VideoErrorPaths, models.MsgNoResponse)
}

// decodeReply picks the first truthy field of okPaths, then of errPaths (flagged
// as error), then falls back to fallback (flagged as error).
func decodeReply(endpoint string, resp *rawResponse, okPaths, errPaths []string, fallback string) (*models.Reply, error) {
	if !gjson.ValidBytes(resp.Body) {
		return nil, apierrors.NewParseError(endpoint, resp.StatusCode, "response is not valid JSON")
	}
	if !gjson.ParseBytes(resp.Body).IsObject() {
		return nil, apierrors.NewParseError(endpoint, resp.StatusCode, "response is not a JSON object")
	}

	if text, field, ok := firstTruthy(resp.Body, okPaths); ok {
		return &models.Reply{Text: text, Field: field, StatusCode: resp.StatusCode}, nil
	}
	if text, field, ok := firstTruthy(resp.Body, errPaths); ok {
		return &models.Reply{Text: text, Field: field, IsError: true, StatusCode: resp.StatusCode}, nil
	}

	return &models.Reply{Text: fallback, IsError: true, StatusCode: resp.StatusCode}, nil
}

func firstTruthy(body []byte, paths []string) (text, field string, ok bool) {
	for _, p := range paths {
		r := gjson.GetBytes(body, p)
		if truthy(r) {
			return resultText(r), p, true
		}
	}
	return "", "", false
}

// truthy mirrors the browser's truthiness of a JSON value
func truthy(r gjson.Result) bool {
	if !r.Exists() {
		return false
	}
	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	default:
		return true
	}
}

// resultText renders a field for display; objects and arrays keep their JSON form
func resultText(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.JSON:
		return r.Raw
	default:
		return r.String()
	}
}
