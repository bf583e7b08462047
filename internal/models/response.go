package models

import "net/http"

// Route is the outcome of the routing decision for one message
type Route struct {
	Method string
	Path   string
	// Query is the raw, already encoded query string (without '?')
	Query string
	// Body is the JSON request body, nil for GET
	Body []byte
}

// IsDocumentQuery reports whether the route targets the document endpoint
func (r Route) IsDocumentQuery() bool {
	return r.Method == http.MethodGet && r.Path == PathAsk
}

// URL joins the route with the given base URL
func (r Route) URL(baseURL string) string {
	u := baseURL + r.Path
	if r.Query != "" {
		u += "?" + r.Query
	}
	return u
}

// Reply is the decoded bot answer to a message
type Reply struct {
	Text string
	// IsError is set when none of the expected fields carried a value
	IsError bool
	// Field names the JSON field the text came from, empty for the fallback
	Field      string
	StatusCode int
}

// UploadResult is the decoded body of an upload endpoint
type UploadResult struct {
	Message    string
	Text       string
	Error      string
	StatusCode int
}
