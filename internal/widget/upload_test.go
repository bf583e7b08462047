package widget

import (
	"context"
	"errors"
	"testing"

	"github.com/Samit-B/school-management/internal/api"
	apierrors "github.com/Samit-B/school-management/internal/errors"
	"github.com/Samit-B/school-management/internal/models"
)

func TestUpload_Success(t *testing.T) {
	client := &api.MockChatClient{UploadVal: &models.UploadResult{Message: "PDF uploaded!", StatusCode: 200}}
	_, p := newTestWidget(t, client)

	p.picker.Select(context.Background(), models.FileFromBytes("notes.pdf", []byte("%PDF")))

	turns := p.transcript.Turns()
	if len(turns) != 1 {
		t.Fatalf("turns = %v, want one Bot turn", turns)
	}
	if turns[0].Sender != models.SenderBot || turns[0].IsError {
		t.Errorf("turn = %+v", turns[0])
	}
	if turns[0].Body != `📂 File "notes.pdf" uploaded successfully!` {
		t.Errorf("Body = %q", turns[0].Body)
	}
	if len(client.UploadCalls) != 1 || client.UploadCalls[0] != "notes.pdf" {
		t.Errorf("UploadCalls = %v", client.UploadCalls)
	}
}

func TestUpload_NameKeptVerbatim(t *testing.T) {
	client := &api.MockChatClient{UploadVal: &models.UploadResult{Message: "PDF uploaded!"}}
	w, p := newTestWidget(t, client)

	name := `report "final" C:\x.pdf`
	w.Upload(context.Background(), models.FileFromBytes(name, []byte("%PDF")))

	last, _ := p.transcript.Last()
	want := "📂 File \"" + name + "\" uploaded successfully!"
	if last.Body != want {
		t.Errorf("Body = %q, want %q", last.Body, want)
	}
}

func TestNilResults(t *testing.T) {
	// a client returning neither a value nor an error
	client := &api.MockChatClient{}
	w, p := newTestWidget(t, client)
	ctx := context.Background()

	w.Upload(ctx, models.FileFromBytes("notes.pdf", []byte("%PDF")))
	if last, _ := p.transcript.Last(); last.Body != models.MsgUploadError || !last.IsError {
		t.Errorf("upload: last turn = %+v", last)
	}

	p.input.Set("hello")
	w.Send(ctx)
	if last, _ := p.transcript.Last(); last.Body != models.MsgNoResponse || !last.IsError {
		t.Errorf("send: last turn = %+v", last)
	}

	w.AnalyzeURL(ctx, "https://example.com")
	if last, _ := p.transcript.Last(); last.Body != models.MsgNoResponse || !last.IsError {
		t.Errorf("analyze: last turn = %+v", last)
	}
}

func TestUpload_Failure(t *testing.T) {
	client := &api.MockChatClient{UploadErr: apierrors.NewUploadError("notes.pdf", errors.New("connection refused"))}
	w, p := newTestWidget(t, client)

	w.Upload(context.Background(), models.FileFromBytes("notes.pdf", []byte("%PDF")))

	last, ok := p.transcript.Last()
	if !ok || last.Body != models.MsgUploadError || !last.IsError {
		t.Errorf("last turn = %+v", last)
	}
}

func TestUpload_Cancelled(t *testing.T) {
	client := &api.MockChatClient{}
	_, p := newTestWidget(t, client)

	p.picker.Select(context.Background(), nil)

	if p.transcript.Len() != 0 || len(client.UploadCalls) != 0 {
		t.Errorf("cancelled selection must do nothing: turns=%d uploads=%d", p.transcript.Len(), len(client.UploadCalls))
	}
}

func TestUploadExcel(t *testing.T) {
	client := &api.MockChatClient{UploadVal: &models.UploadResult{Message: "Student details added to the database successfully!"}}
	w, p := newTestWidget(t, client)

	w.UploadExcel(context.Background(), models.FileFromBytes("students.xlsx", []byte("PK")))

	if len(client.ExcelCalls) != 1 || len(client.UploadCalls) != 0 {
		t.Errorf("ExcelCalls = %v, UploadCalls = %v", client.ExcelCalls, client.UploadCalls)
	}
	last, _ := p.transcript.Last()
	if last.Body != `📂 File "students.xlsx" uploaded successfully!` {
		t.Errorf("Body = %q", last.Body)
	}
}

func TestIngest(t *testing.T) {
	tests := []struct {
		name      string
		client    *api.MockChatClient
		run       func(w *Widget, link string)
		wantBody  string
		wantError bool
	}{
		{
			name:   "analyze url stored",
			client: &api.MockChatClient{AnalyzeVal: &models.Reply{Text: "URL content stored successfully.", Field: "message"}},
			run: func(w *Widget, link string) {
				w.AnalyzeURL(context.Background(), link)
			},
			wantBody: "URL content stored successfully.",
		},
		{
			name:   "analyze url failure",
			client: &api.MockChatClient{AnalyzeErr: errors.New("boom")},
			run: func(w *Widget, link string) {
				w.AnalyzeURL(context.Background(), link)
			},
			wantBody:  models.MsgAnalyzeError,
			wantError: true,
		},
		{
			name:   "video without transcript",
			client: &api.MockChatClient{VideoVal: &models.Reply{Text: "Could not retrieve the transcript.", IsError: true, Field: "transcript.error"}},
			run: func(w *Widget, link string) {
				w.ProcessVideo(context.Background(), link)
			},
			wantBody:  "Could not retrieve the transcript.",
			wantError: true,
		},
		{
			name:   "video failure",
			client: &api.MockChatClient{VideoErr: errors.New("boom")},
			run: func(w *Widget, link string) {
				w.ProcessVideo(context.Background(), link)
			},
			wantBody:  models.MsgVideoError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, p := newTestWidget(t, tt.client)

			tt.run(w, "  https://example.com/page  ")

			turns := p.transcript.Turns()
			if len(turns) != 2 {
				t.Fatalf("turns = %v", turns)
			}
			if turns[0].String() != "You: https://example.com/page" {
				t.Errorf("first turn = %s", turns[0])
			}
			if turns[1].Body != tt.wantBody || turns[1].IsError != tt.wantError {
				t.Errorf("bot turn = %+v, want %q error=%v", turns[1], tt.wantBody, tt.wantError)
			}
		})
	}
}

func TestIngest_EmptyLink(t *testing.T) {
	client := &api.MockChatClient{}
	w, p := newTestWidget(t, client)

	w.AnalyzeURL(context.Background(), "  ")
	w.ProcessVideo(context.Background(), "")

	if p.transcript.Len() != 0 || len(client.AnalyzeCalls) != 0 || len(client.VideoCalls) != 0 {
		t.Error("empty links must not render or send anything")
	}
}
