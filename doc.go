// Package tilt adds a pointer-tracking 3D tilt effect to [Ebitengine]
// scene nodes.
//
// A [Controller] watches one surface. While the pointer moves over it, the
// surface rotates towards the cursor about its horizontal and vertical
// axes and shrinks slightly; when the pointer leaves, it eases back to rest.
// Moves are coalesced to one computation per animation frame.
//
// # Quick start
//
//	scene := tilt.NewScene()
//	card := tilt.NewSurface("card", 200, 100)
//	card.X, card.Y = 220, 190
//	scene.Root().AddChild(card)
//
//	ctrl, err := tilt.Attach(scene, card, tilt.WithMax(12))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer ctrl.Dispose()
//
//	tilt.Run(scene, tilt.RunConfig{Title: "Tilt", Width: 640, Height: 480})
//
// # Hosts
//
// The controller only talks to its environment through [Surface] and
// [Host]. [Node] and [Scene] are the Ebitengine implementations: the scene
// hit-tests the cursor, delivers enter/move/leave events, runs animation
// frames before Draw, and keeps a millisecond clock for timers. Any other
// environment can drive a controller by implementing the same interfaces.
//
// # Listening for tilt
//
// Each computed frame dispatches a tiltChange notification on the surface:
//
//	card.OnTiltChange(func(v tilt.Values) {
//		shadow.X = baseX + v.TiltX*2
//		shadow.MarkDirty()
//	})
//
// Transitions use [gween] easing functions; CSS keywords and
// cubic-bezier() strings are accepted as well (see [ParseEasing]).
// An ECS bridge for [Donburi] lives in tilt/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package tilt
