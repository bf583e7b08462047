package api

import (
	"context"

	"github.com/Samit-B/school-management/internal/models"
)

// ChatClientInterface defines the backend operations the widget needs
type ChatClientInterface interface {
	Ask(ctx context.Context, message string) (*models.Reply, error)
	UploadPDF(ctx context.Context, file *models.File) (*models.UploadResult, error)
	UploadExcel(ctx context.Context, file *models.File) (*models.UploadResult, error)
	AnalyzeURL(ctx context.Context, link string) (*models.Reply, error)
	ProcessVideo(ctx context.Context, link string) (*models.Reply, error)
	BaseURL() string
}

// Ensure Client implements ChatClientInterface
var _ ChatClientInterface = (*Client)(nil)
