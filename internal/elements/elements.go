// Package elements provides in-memory implementations of the widget's
// page elements: the input field, the transcript, the single-line display,
// the send button and the file input. The TUI, the CLI and tests drive them.
package elements

import (
	"context"
	"sync"

	"github.com/Samit-B/school-management/internal/models"
)

// Field is a text input
type Field struct {
	mu    sync.Mutex
	value string
}

// NewField creates a field holding value
func NewField(value string) *Field {
	return &Field{value: value}
}

// Value returns the current content
func (f *Field) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// Set replaces the field content, as typing would
func (f *Field) Set(value string) {
	f.mu.Lock()
	f.value = value
	f.mu.Unlock()
}

// Clear empties the field
func (f *Field) Clear() {
	f.Set("")
}

// Line is a display holding a single string that each write replaces
type Line struct {
	mu   sync.Mutex
	text string
}

// SetText replaces the displayed string
func (l *Line) SetText(text string) {
	l.mu.Lock()
	l.text = text
	l.mu.Unlock()
}

// Text returns the displayed string
func (l *Line) Text() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.text
}

// Button dispatches clicks to the bound handler
type Button struct {
	mu      sync.Mutex
	handler func(ctx context.Context)
}

// OnClick binds the click handler, replacing any previous one
func (b *Button) OnClick(handler func(ctx context.Context)) {
	b.mu.Lock()
	b.handler = handler
	b.mu.Unlock()
}

// Click runs the bound handler synchronously and reports whether one was bound
func (b *Button) Click(ctx context.Context) bool {
	b.mu.Lock()
	handler := b.handler
	b.mu.Unlock()

	if handler == nil {
		return false
	}
	handler(ctx)
	return true
}

// FilePicker dispatches file selections to the bound handler.
// Selecting nil models a dialog closed without a choice.
type FilePicker struct {
	mu      sync.Mutex
	handler func(ctx context.Context, file *models.File)
}

// OnChange binds the selection handler, replacing any previous one
func (p *FilePicker) OnChange(handler func(ctx context.Context, file *models.File)) {
	p.mu.Lock()
	p.handler = handler
	p.mu.Unlock()
}

// Select runs the bound handler synchronously and reports whether one was bound
func (p *FilePicker) Select(ctx context.Context, file *models.File) bool {
	p.mu.Lock()
	handler := p.handler
	p.mu.Unlock()

	if handler == nil {
		return false
	}
	handler(ctx, file)
	return true
}
