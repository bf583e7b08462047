package commands

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	apierrors "github.com/Samit-B/school-management/internal/errors"
)

func TestFormatErrorMessage_Nil(t *testing.T) {
	if got := formatErrorMessage(nil, "ctx"); got != "" {
		t.Fatalf("expected empty for nil error, got %s", got)
	}
}

func TestFormatErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "api error",
			err:  apierrors.NewAPIError(500, "/upload-pdf", "internal error"),
			want: []string{"HTTP Status: 500", "Endpoint: /upload-pdf"},
		},
		{
			name: "network error",
			err:  apierrors.NewNetworkError("/chatbot", errors.New("connection refused")),
			want: []string{"connection refused", "Endpoint: /chatbot", "Hint: Check the backend is running"},
		},
		{
			name: "parse error",
			err:  apierrors.NewParseError("/ask", 200, "not json"),
			want: []string{"Endpoint: /ask", "did not answer with JSON"},
		},
		{
			name: "upload error",
			err:  apierrors.NewUploadError("notes.pdf", errors.New("boom")),
			want: []string{"Hint: File upload failed"},
		},
		{
			name: "invalid base url",
			err:  fmt.Errorf("%w: scheme must be http or https", apierrors.ErrInvalidBaseURL),
			want: []string{"--base-url http://127.0.0.1:8000"},
		},
		{
			name: "plain",
			err:  errors.New("boom"),
			want: []string{"✗ Failed: boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := formatErrorMessage(tt.err, "Failed")
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q should contain %q", out, w)
				}
			}
		})
	}
}
