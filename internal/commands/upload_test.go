package commands

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/Samit-B/school-management/internal/api"
	"github.com/Samit-B/school-management/internal/models"
)

func writeTempFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("%PDF-1.4 report"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestUploadCommand(t *testing.T) {
	pdf := writeTempFile(t, "notes.pdf")

	tests := []struct {
		name      string
		args      []string
		client    *api.MockChatClient
		wantOut   string
		wantErr   bool
		wantPDF   int
		wantExcel int
	}{
		{
			name:    "pdf",
			args:    []string{"upload", pdf},
			client:  &api.MockChatClient{UploadVal: &models.UploadResult{Message: "PDF uploaded!"}},
			wantOut: "Bot: 📂 File \"notes.pdf\" uploaded successfully!\n",
			wantPDF: 1,
		},
		{
			name:      "excel",
			args:      []string{"upload", pdf, "--excel"},
			client:    &api.MockChatClient{UploadVal: &models.UploadResult{Message: "stored"}},
			wantOut:   "Bot: 📂 File \"notes.pdf\" uploaded successfully!\n",
			wantExcel: 1,
		},
		{
			name:    "failure",
			args:    []string{"upload", pdf},
			client:  &api.MockChatClient{UploadErr: errors.New("500")},
			wantOut: "Bot: " + models.MsgUploadError + "\n",
			wantErr: true,
			wantPDF: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.client)

			out, _, err := env.run("", tt.args...)

			if tt.wantErr != (err != nil) {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if out != tt.wantOut {
				t.Errorf("stdout = %q, want %q", out, tt.wantOut)
			}
			if len(tt.client.UploadCalls) != tt.wantPDF || len(tt.client.ExcelCalls) != tt.wantExcel {
				t.Errorf("pdf calls = %v, excel calls = %v", tt.client.UploadCalls, tt.client.ExcelCalls)
			}
		})
	}
}

func TestUploadCommand_MissingFile(t *testing.T) {
	client := &api.MockChatClient{}
	env := newTestEnv(t, client)

	_, _, err := env.run("", "upload", filepath.Join(t.TempDir(), "missing.pdf"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if len(client.UploadCalls) != 0 {
		t.Error("nothing should be uploaded")
	}
}

func TestUploadCommand_Args(t *testing.T) {
	env := newTestEnv(t, &api.MockChatClient{})
	if _, _, err := env.run("", "upload"); err == nil {
		t.Error("upload without a file should fail")
	}
}

func TestIngestCommands(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		client  *api.MockChatClient
		wantOut string
		wantErr bool
	}{
		{
			name:    "analyze url",
			args:    []string{"analyze-url", "https://example.com/notice"},
			client:  &api.MockChatClient{AnalyzeVal: &models.Reply{Text: "Notice stored", Field: "message"}},
			wantOut: "You: https://example.com/notice\nBot: Notice stored\n",
		},
		{
			name:    "analyze url failure",
			args:    []string{"analyze-url", "https://example.com"},
			client:  &api.MockChatClient{AnalyzeErr: errors.New("refused")},
			wantOut: "You: https://example.com\nBot: " + models.MsgAnalyzeError + "\n",
			wantErr: true,
		},
		{
			name:    "process video",
			args:    []string{"process-video", "https://youtu.be/abc"},
			client:  &api.MockChatClient{VideoVal: &models.Reply{Text: "Transcript ready", Field: "transcript.message"}},
			wantOut: "You: https://youtu.be/abc\nBot: Transcript ready\n",
		},
		{
			name:    "process video failure",
			args:    []string{"process-video", "https://youtu.be/abc"},
			client:  &api.MockChatClient{VideoErr: errors.New("timeout")},
			wantOut: "You: https://youtu.be/abc\nBot: " + models.MsgVideoError + "\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.client)

			out, _, err := env.run("", tt.args...)

			if tt.wantErr != (err != nil) {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if out != tt.wantOut {
				t.Errorf("stdout = %q, want %q", out, tt.wantOut)
			}
		})
	}
}

func TestIngestCommands_Decorated(t *testing.T) {
	env := newTestEnv(t, &api.MockChatClient{AnalyzeVal: &models.Reply{Text: "**Stored**", Field: "message"}})
	env.tty = true

	out, _, err := env.run("", "analyze-url", "https://example.com")
	if err != nil {
		t.Fatal(err)
	}

	plain := ansi.Strip(out)
	if !strings.Contains(plain, "You:") || !strings.Contains(plain, "Stored") || strings.Contains(plain, "**") {
		t.Errorf("decorated output = %q", plain)
	}
}
