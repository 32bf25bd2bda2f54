// Package pinchzoom is a gesture-to-transform engine for image viewers.
//
// A [Viewer] turns raw pointer, touch and wheel input into a smoothly
// animated scale and translation for one image. It handles pinch-zoom,
// panning, double-click (or double-tap) zoom toward the pointer, and keeps
// the image inside the container when zoomed. Every change goes through a
// critically damped spring so nothing jumps.
//
// The package draws nothing. Toolkit adapters feed it input and render the
// result: [github.com/phanxgames/pinchzoom/ebitenzoom] for [Ebitengine] and
// [github.com/phanxgames/pinchzoom/gioinput] for [Gio].
//
// # Quick start
//
//	v := pinchzoom.NewViewer(pinchzoom.DefaultConfig())
//	v.SetContainer(800, 600)
//	v.SetImage(pinchzoom.Image{Src: "photo.jpg", NaturalWidth: 1600, NaturalHeight: 1200, FileType: "jpg"})
//	v.SetCurrent(true)
//
// Then, once per frame:
//
//	for _, e := range events {
//		v.HandleInput(e)
//	}
//	t := v.Update(time.Now())
//	// draw the image at v.Metrics() scaled by t.Scale and offset by (t.X, t.Y)
//
// # Paged viewers
//
// When the viewer sits inside a horizontal pager, report the pager's drag
// state with [Viewer.SetPagerDragging] and only start page drags while
// [Viewer.DragDisabled] is false. The viewer disables page dragging for as
// long as the image is zoomed and re-enables it once the image settles back
// at scale 1.
//
// # Building blocks
//
// The pieces a Viewer is built from are exported for use on their own:
// [TransformSpring] for spring smoothing, [GestureInterpreter] for pinch and
// pan detection, [NewClickDetector] for single/double click disambiguation,
// [DragCoordinator], [ComputeTranslate] for focal-point zoom, and
// [IsOutOfBounds] with [ClampToBounds] for the bounds clamp.
//
// # Scripted input
//
// [Viewer.InjectTap], [Viewer.InjectDrag], [Viewer.InjectPinch] and
// [LoadScript] replay gestures deterministically, one input frame per
// Update, for demos and tests.
//
// [Ebitengine]: https://ebitengine.org
// [Gio]: https://gioui.org
package pinchzoom
