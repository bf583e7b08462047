package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestSpinnerLifecycle_StopWithSuccess(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(&buf, "Uploading")
	s.start()
	time.Sleep(50 * time.Millisecond)
	s.stopWithSuccess("done")

	out := buf.String()
	if !strings.Contains(out, "done") || !strings.Contains(out, "\033[?25h") {
		t.Errorf("unexpected spinner output %q", out)
	}
}

func TestSpinnerLifecycle_StopWithError(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(&buf, "Connecting")
	s.start()
	time.Sleep(30 * time.Millisecond)
	s.stopWithError()
	// A second stop must not panic
	s.stopOnce()

	if strings.Contains(buf.String(), "✓") {
		t.Error("error stop should not print a checkmark")
	}
}

func TestBusy(t *testing.T) {
	var buf bytes.Buffer
	ran := false
	busy(&buf, false, "Working", func() bool {
		ran = true
		return true
	})
	if !ran || buf.Len() != 0 {
		t.Errorf("plain mode: ran=%v output=%q", ran, buf.String())
	}

	busy(&buf, true, "Working", func() bool { return true })
	if !strings.Contains(buf.String(), "Done") {
		t.Errorf("decorated mode should report success, got %q", buf.String())
	}
}
