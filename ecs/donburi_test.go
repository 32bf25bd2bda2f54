package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/pinchzoom"

	"github.com/yohamta/donburi"
)

func newViewer() *pinchzoom.Viewer {
	v := pinchzoom.NewViewer(pinchzoom.DefaultConfig())
	v.SetContainer(800, 600)
	v.SetImage(pinchzoom.Image{Src: "a.png", NaturalWidth: 400, NaturalHeight: 300, FileType: "png"})
	return v
}

func run(v *pinchzoom.Viewer, now time.Time, frames int) time.Time {
	for i := 0; i < frames; i++ {
		now = now.Add(16 * time.Millisecond)
		v.Update(now)
	}
	return now
}

func TestConnectPublishesViewerEvents(t *testing.T) {
	world := donburi.NewWorld()
	v := newViewer()
	conn := Connect(world, v)
	defer conn.Close()

	var got []ViewerEvent
	ViewerEventType.Subscribe(world, func(_ donburi.World, e ViewerEvent) {
		got = append(got, e)
	})

	now := run(v, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 1)
	v.InjectDoubleTap(400, 300)
	run(v, now, 120)

	if len(got) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(got))
	}
	ViewerEventType.ProcessEvents(world)

	var intent, drag, rest *ViewerEvent
	for i := range got {
		e := &got[i]
		if e.Viewer != v {
			t.Errorf("event %d from wrong viewer", i)
		}
		switch e.Kind {
		case EventIntent:
			intent = e
		case EventDragChange:
			drag = e
		case EventRest:
			rest = e
		}
	}
	if intent == nil || intent.Intent.Kind != pinchzoom.IntentDoubleClick {
		t.Errorf("intent event = %+v, want a double click", intent)
	}
	if drag == nil || !drag.DragDisabled {
		t.Errorf("drag event = %+v, want page drag disabled", drag)
	}
	if rest == nil || rest.Transform.Scale < 1.99 || rest.Transform.Scale > 2.01 {
		t.Errorf("rest event = %+v, want rest at scale 2", rest)
	}
}

func TestConnectOverlayClick(t *testing.T) {
	world := donburi.NewWorld()
	v := newViewer()
	v.SetAnnotating(true)
	conn := Connect(world, v)
	defer conn.Close()

	var clicks []ViewerEvent
	ViewerEventType.Subscribe(world, func(_ donburi.World, e ViewerEvent) {
		if e.Kind == EventOverlayClick {
			clicks = append(clicks, e)
		}
	})

	now := run(v, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 1)
	v.InjectTap(400, 300)
	run(v, now, 5)
	ViewerEventType.ProcessEvents(world)

	if len(clicks) != 1 {
		t.Fatalf("overlay clicks = %d, want 1", len(clicks))
	}
	if c := clicks[0].Click; c.LeftPct != 50 || c.TopPct != 50 {
		t.Errorf("click at %v%% / %v%%, want the image center", c.LeftPct, c.TopPct)
	}
}

func TestConnectionClose(t *testing.T) {
	world := donburi.NewWorld()
	v := newViewer()
	conn := Connect(world, v)

	var count int
	ViewerEventType.Subscribe(world, func(_ donburi.World, e ViewerEvent) {
		count++
	})

	conn.Close()
	conn.Close()
	v.Reset()
	ViewerEventType.ProcessEvents(world)
	if count != 0 {
		t.Errorf("events after Close = %d, want 0", count)
	}
}
