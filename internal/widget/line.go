package widget

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Samit-B/school-management/internal/api"
	apierrors "github.com/Samit-B/school-management/internal/errors"
	"github.com/Samit-B/school-management/internal/models"
)

// LineDisplay shows a single string, each write replacing the previous one
type LineDisplay interface {
	SetText(text string)
}

// LineWidget answers one message at a time into a LineDisplay.
// It uses the same routing as Widget and shares no state with it.
type LineWidget struct {
	input   Input
	display LineDisplay
	client  api.ChatClientInterface
	log     zerolog.Logger
}

// NewLineWidget binds a line widget to its input and display
func NewLineWidget(input Input, display LineDisplay, client api.ChatClientInterface, opts ...Option) (*LineWidget, error) {
	var ids []string
	if isNil(input) {
		ids = append(ids, models.ElementLineInput)
	}
	if isNil(display) {
		ids = append(ids, models.ElementLineDisplay)
	}

	// Options target Widget; only the logger carries over.
	cfg := &Widget{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}

	if len(ids) > 0 {
		cfg.log.Error().Strs("missing", ids).Msg("chatbot elements not found")
		return nil, apierrors.NewMissingElementsError(ids...)
	}
	if client == nil {
		return nil, fmt.Errorf("line widget needs a backend client")
	}

	return &LineWidget{
		input:   input,
		display: display,
		client:  client,
		log:     cfg.log,
	}, nil
}

// Send asks the backend and replaces the display content with the outcome.
// The input is left untouched.
func (l *LineWidget) Send(ctx context.Context) {
	message := strings.TrimSpace(l.input.Value())
	if message == "" {
		l.display.SetText(models.MsgEmptyLineInput)
		return
	}

	reply, err := l.client.Ask(ctx, message)
	if err != nil {
		l.log.Error().Err(err).Str("endpoint", apierrors.GetEndpoint(err)).Msg("request failed")
		l.display.SetText(models.LineConnectError)
		return
	}

	if reply == nil || reply.Field == "" {
		l.display.SetText(models.LineNoResponse)
		return
	}
	l.display.SetText(reply.Text)
}
