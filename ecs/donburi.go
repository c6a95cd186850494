package ecs

import (
	"github.com/phanxgames/tilt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TiltEvent is published for every tiltChange on a bridged node.
type TiltEvent struct {
	Name   string
	NodeID uint32
	tilt.Values
}

// TiltEventType is the Donburi event type for tilt notifications.
// Events are queued; call TiltEventType.ProcessEvents (or
// events.ProcessAllEvents) from a system to deliver them.
var TiltEventType = events.NewEventType[TiltEvent]()

// Bridge publishes node's tiltChange notifications into world. Remove the
// returned handle to stop forwarding.
func Bridge(world donburi.World, node *tilt.Node) tilt.CallbackHandle {
	return node.OnTiltChange(func(v tilt.Values) {
		TiltEventType.Publish(world, TiltEvent{
			Name:   node.Name,
			NodeID: node.ID,
			Values: v,
		})
	})
}
