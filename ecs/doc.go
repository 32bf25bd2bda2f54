// Package ecs bridges pinchzoom viewers into a [Donburi] world.
//
// [Connect] republishes a viewer's zoom intents, rest notifications, page
// drag changes and overlay clicks as typed [ViewerEvent]s. Subscribe to
// [ViewerEventType] in your systems and drain the queue once per frame:
//
//	conn := ecs.Connect(world, viewer)
//	defer conn.Close()
//	ecs.ViewerEventType.Subscribe(world, onViewerEvent)
//	// each frame
//	ecs.ViewerEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
