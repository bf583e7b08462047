package api_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Samit-B/school-management/internal/api"
	"github.com/Samit-B/school-management/internal/models"
)

func TestMockChatClient(t *testing.T) {
	mock := &api.MockChatClient{
		AskVal:    &models.Reply{Text: "Mock response", Field: "response"},
		UploadErr: errors.New("too large"),
	}

	// Verify interface compliance
	var client api.ChatClientInterface = mock
	ctx := context.Background()

	reply, err := client.Ask(ctx, "Hello")
	if err != nil || reply.Text != "Mock response" {
		t.Fatalf("Ask() = %v, %v", reply, err)
	}
	if mock.AskCount() != 1 || mock.AskCalls[0] != "Hello" {
		t.Errorf("AskCalls = %v", mock.AskCalls)
	}

	if _, err := client.UploadPDF(ctx, models.FileFromBytes("notes.pdf", nil)); err == nil {
		t.Error("UploadPDF should return UploadErr")
	}
	if len(mock.UploadCalls) != 1 || mock.UploadCalls[0] != "notes.pdf" {
		t.Errorf("UploadCalls = %v", mock.UploadCalls)
	}

	if client.BaseURL() != models.DefaultBaseURL {
		t.Errorf("BaseURL() = %s, want the default", client.BaseURL())
	}
}

func TestMockChatClient_Funcs(t *testing.T) {
	mock := &api.MockChatClient{
		AskFunc: func(ctx context.Context, message string) (*models.Reply, error) {
			return &models.Reply{Text: "echo " + message, Field: "reply"}, nil
		},
	}

	reply, err := mock.Ask(context.Background(), "ping")
	if err != nil || reply.Text != "echo ping" {
		t.Errorf("Ask() = %v, %v", reply, err)
	}
}
