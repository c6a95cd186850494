// Package ecs bridges tilt notifications into a [Donburi] world.
//
// [Bridge] forwards every tiltChange dispatched on a node as a
// [TiltEvent]. Subscribe to [TiltEventType] in your ECS systems to drive
// parallax layers, shadows, or anything else keyed to the tilt angle:
//
//	handle := ecs.Bridge(world, card)
//	defer handle.Remove()
//
//	ecs.TiltEventType.Subscribe(world, func(w donburi.World, e ecs.TiltEvent) {
//		// ...
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
