package widget

import (
	"context"
	"fmt"
	"strings"

	apierrors "github.com/Samit-B/school-management/internal/errors"
	"github.com/Samit-B/school-management/internal/models"
)

// Upload sends the selected file to the PDF endpoint.
// A nil file means the selection was cancelled and is ignored.
func (w *Widget) Upload(ctx context.Context, file *models.File) {
	w.upload(ctx, file, w.client.UploadPDF)
}

// UploadExcel sends the selected spreadsheet to the student import endpoint
func (w *Widget) UploadExcel(ctx context.Context, file *models.File) {
	w.upload(ctx, file, w.client.UploadExcel)
}

type uploadFunc func(ctx context.Context, file *models.File) (*models.UploadResult, error)

func (w *Widget) upload(ctx context.Context, file *models.File, send uploadFunc) {
	if file == nil {
		return
	}
	w.log.Debug().Str("file", file.Name).Int64("size", file.Size).Msg("file selected")

	release, err := w.reserve()(ctx)
	if err != nil {
		w.log.Error().Err(err).Str("file", file.Name).Msg("upload failed")
		w.AppendMessage(models.SenderBot, models.MsgUploadError, true)
		return
	}
	defer release()

	result, err := send(ctx, file)
	if err == nil && result == nil {
		err = apierrors.NewUploadError(file.Name, apierrors.ErrInvalidResponse)
	}
	if err != nil {
		w.log.Error().Err(err).Str("file", file.Name).Msg("upload failed")
		w.AppendMessage(models.SenderBot, models.MsgUploadError, true)
		return
	}

	w.log.Info().Str("file", file.Name).Str("message", result.Message).Int("status", result.StatusCode).Msg("file uploaded")
	w.AppendMessage(models.SenderBot, fmt.Sprintf(models.MsgUploadSuccess, file.Name), false)
}

// AnalyzeURL asks the backend to ingest a web page
func (w *Widget) AnalyzeURL(ctx context.Context, link string) {
	w.ingest(ctx, link, w.client.AnalyzeURL, models.MsgAnalyzeError)
}

// ProcessVideo asks the backend to ingest a video transcript
func (w *Widget) ProcessVideo(ctx context.Context, link string) {
	w.ingest(ctx, link, w.client.ProcessVideo, models.MsgVideoError)
}

type ingestFunc func(ctx context.Context, link string) (*models.Reply, error)

func (w *Widget) ingest(ctx context.Context, link string, send ingestFunc, failure string) {
	link = strings.TrimSpace(link)
	if link == "" {
		w.log.Warn().Msg("empty link")
		return
	}

	w.AppendMessage(models.SenderYou, link, false)

	release, err := w.reserve()(ctx)
	if err != nil {
		w.log.Error().Err(err).Str("link", link).Msg("request failed")
		w.AppendMessage(models.SenderBot, failure, true)
		return
	}
	defer release()

	reply, err := send(ctx, link)
	if err != nil {
		w.log.Error().Err(err).Str("link", link).Msg("request failed")
		w.AppendMessage(models.SenderBot, failure, true)
		return
	}
	if reply == nil {
		w.log.Warn().Str("link", link).Msg("empty reply")
		w.AppendMessage(models.SenderBot, models.MsgNoResponse, true)
		return
	}
	w.AppendMessage(models.SenderBot, reply.Text, reply.IsError)
}
