/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package shadow

// Transport delivers named events to connections. Implementations are
// called from the goroutine driving the Coordinator and must not block.
type Transport interface {
	// SendTo delivers an event to a single connection.
	SendTo(connID, event string, payload any)

	// SendToRoom delivers an event to every connection joined to code.
	SendToRoom(code, event string, payload any)

	// Join adds a connection to the room's delivery group.
	Join(connID, code string)

	// Leave removes a connection from the room's delivery group.
	Leave(connID, code string)
}
