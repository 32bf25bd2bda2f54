package pinchzoom

import (
	"bytes"
	"strings"
	"testing"
)

func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := debugOut
	debugOut = &buf
	t.Cleanup(func() { debugOut = old })
	return &buf
}

func TestDebugLogsGoalsAndDragChanges(t *testing.T) {
	buf := captureDebug(t)
	v, clock := newTestViewer(DefaultConfig())
	v.SetDebug(true)

	v.InjectDoubleTap(400, 300)
	clock.settle(t, v)

	out := buf.String()
	for _, want := range []string{
		"[pinchzoom] tap at (400.0,300.0)",
		"[pinchzoom] goal zoom-in: scale=2.000",
		"[pinchzoom] page drag disabled=true",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugDisabledIsSilent(t *testing.T) {
	buf := captureDebug(t)
	v, clock := newTestViewer(DefaultConfig())
	v.InjectDoubleTap(400, 300)
	clock.settle(t, v)
	v.Reset()
	if buf.Len() != 0 {
		t.Errorf("debug output without SetDebug: %q", buf.String())
	}
}

func TestDebugLogsCancelledPan(t *testing.T) {
	buf := captureDebug(t)
	v, clock := newTestViewer(DefaultConfig())
	v.ZoomToggle(400, 300)
	clock.settle(t, v)
	v.SetDebug(true)
	v.InjectDrag(400, 300, -300, 300, 2)
	clock.settle(t, v)
	if !strings.Contains(buf.String(), "pan cancelled: out of bounds") {
		t.Errorf("missing cancelled pan line:\n%s", buf.String())
	}
}
