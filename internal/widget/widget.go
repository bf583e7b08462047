// Package widget implements the chat widget controller: it binds the page
// elements to the backend client and renders every outcome as a turn.
package widget

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Samit-B/school-management/internal/api"
	apierrors "github.com/Samit-B/school-management/internal/errors"
	"github.com/Samit-B/school-management/internal/models"
)

// Input is a text field the user types into
type Input interface {
	Value() string
	Clear()
}

// MessageList is the scrollable container turns are appended to
type MessageList interface {
	Append(turn models.Turn)
	ScrollToBottom()
}

// Button triggers a send when clicked
type Button interface {
	OnClick(handler func(ctx context.Context))
}

// FileInput reports the file chosen by the user, nil when the choice was cancelled
type FileInput interface {
	OnChange(handler func(ctx context.Context, file *models.File))
}

// Elements are the page elements the widget binds to
type Elements struct {
	Send     Button
	Input    Input
	Messages MessageList
	Upload   FileInput
}

// missing lists the identifiers of the absent elements
func (e Elements) missing() []string {
	var ids []string
	if isNil(e.Send) {
		ids = append(ids, models.ElementSend)
	}
	if isNil(e.Input) {
		ids = append(ids, models.ElementInput)
	}
	if isNil(e.Messages) {
		ids = append(ids, models.ElementMessages)
	}
	if isNil(e.Upload) {
		ids = append(ids, models.ElementUpload)
	}
	return ids
}

// Widget is the chat widget controller
type Widget struct {
	input    Input
	messages MessageList
	client   api.ChatClientInterface
	queue    *requestQueue
	log      zerolog.Logger
}

// Option configures a Widget
type Option func(*Widget)

// WithSerialRequests allows one backend request in flight at a time.
// Requests are served in the order they were submitted.
func WithSerialRequests(enabled bool) Option {
	return func(w *Widget) {
		if enabled {
			w.queue = newRequestQueue()
		} else {
			w.queue = nil
		}
	}
}

// WithLogger sets the widget logger
func WithLogger(log zerolog.Logger) Option {
	return func(w *Widget) {
		w.log = log
	}
}

// New binds a widget to its elements. It fails without side effects when
// any element is missing.
func New(elements Elements, client api.ChatClientInterface, opts ...Option) (*Widget, error) {
	w := &Widget{
		input:    elements.Input,
		messages: elements.Messages,
		client:   client,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}

	if ids := elements.missing(); len(ids) > 0 {
		w.log.Error().Strs("missing", ids).Msg("chatbot elements not found")
		return nil, apierrors.NewMissingElementsError(ids...)
	}
	if client == nil {
		return nil, fmt.Errorf("widget needs a backend client")
	}

	elements.Send.OnClick(w.Send)
	elements.Upload.OnChange(w.Upload)

	w.log.Debug().Str("base_url", client.BaseURL()).Bool("serial", w.queue != nil).Msg("widget bound")
	return w, nil
}

// AppendMessage adds a turn to the list and scrolls it into view.
// The body is kept as plain text.
func (w *Widget) AppendMessage(sender models.Sender, body string, isError bool) {
	w.messages.Append(models.NewTurn(sender, body, isError))
	w.messages.ScrollToBottom()
}

// Send submits the input content and waits for the reply
func (w *Widget) Send(ctx context.Context) {
	if request := w.Submit(ctx); request != nil {
		request()
	}
}

// Submit validates the input, renders the You turn and clears the input.
// It returns the backend request that renders the Bot turn, or nil when
// there is nothing to send. Callers may run the request on another goroutine.
func (w *Widget) Submit(ctx context.Context) func() {
	message := strings.TrimSpace(w.input.Value())
	if message == "" {
		w.log.Warn().Msg("empty message")
		return nil
	}

	w.AppendMessage(models.SenderYou, message, false)
	w.input.Clear()
	wait := w.reserve()

	return func() {
		reply, err := w.ask(ctx, wait, message)
		if err != nil {
			w.log.Error().Err(err).Str("endpoint", apierrors.GetEndpoint(err)).Msg("request failed")
			w.AppendMessage(models.SenderBot, models.MsgConnectError, true)
			return
		}
		if reply == nil {
			w.log.Warn().Msg("empty reply")
			w.AppendMessage(models.SenderBot, models.MsgNoResponse, true)
			return
		}

		w.log.Debug().Str("field", reply.Field).Int("status", reply.StatusCode).Msg("response received")
		w.AppendMessage(models.SenderBot, reply.Text, reply.IsError)
	}
}

func (w *Widget) ask(ctx context.Context, wait waitFunc, message string) (*models.Reply, error) {
	release, err := wait(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	return w.client.Ask(ctx, message)
}

// reserve takes a queue position when serial requests are enabled
func (w *Widget) reserve() waitFunc {
	if w.queue == nil {
		return noWait
	}
	return w.queue.reserve()
}

// isNil reports whether an element is absent, including typed nil pointers
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	}
	return false
}
