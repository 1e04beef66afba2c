/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package shadow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sent struct {
	to      string
	room    string
	event   string
	payload any
}

// recorder is a Transport that keeps every delivery in order.
type recorder struct {
	msgs   []sent
	groups map[string]map[string]bool
}

func newRecorder() *recorder {
	return &recorder{groups: make(map[string]map[string]bool)}
}

func (r *recorder) SendTo(connID, event string, payload any) {
	r.msgs = append(r.msgs, sent{to: connID, event: event, payload: payload})
}

func (r *recorder) SendToRoom(code, event string, payload any) {
	r.msgs = append(r.msgs, sent{room: code, event: event, payload: payload})
}

func (r *recorder) Join(connID, code string) {
	if r.groups[code] == nil {
		r.groups[code] = make(map[string]bool)
	}
	r.groups[code][connID] = true
}

func (r *recorder) Leave(connID, code string) {
	delete(r.groups[code], connID)
	if len(r.groups[code]) == 0 {
		delete(r.groups, code)
	}
}

func (r *recorder) reset() {
	r.msgs = nil
}

func (r *recorder) events() []string {
	out := make([]string, 0, len(r.msgs))
	for _, m := range r.msgs {
		out = append(out, m.event)
	}
	return out
}

// last returns the most recent delivery of event.
func (r *recorder) last(t *testing.T, event string) sent {
	t.Helper()
	for i := len(r.msgs) - 1; i >= 0; i-- {
		if r.msgs[i].event == event {
			return r.msgs[i]
		}
	}
	require.Failf(t, "event not sent", "no %q in %v", event, r.events())
	return sent{}
}

func (r *recorder) lastSnapshot(t *testing.T, event string) Snapshot {
	t.Helper()
	s, ok := r.last(t, event).payload.(Snapshot)
	require.True(t, ok, "payload of %q is not a Snapshot", event)
	return s
}

// to returns every unicast delivery of event to connID.
func (r *recorder) to(connID, event string) []sent {
	var out []sent
	for _, m := range r.msgs {
		if m.to == connID && m.event == event {
			out = append(out, m)
		}
	}
	return out
}

// scriptedRand returns the scripted values in order, modulo n, and repeats.
type scriptedRand struct {
	vals []int
	i    int
}

func (s *scriptedRand) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

var playerIDs = []string{"alice", "bob", "carol", "dave", "erin", "frank", "grace"}

// setupRoom creates a room hosted by playerIDs[0] and joins n-1 more players.
func setupRoom(t *testing.T, n int, cfg Config) (*Coordinator, *recorder, string) {
	t.Helper()

	rec := newRecorder()
	c := NewCoordinator(rec, cfg)

	require.NoError(t, c.CreateRoom(playerIDs[0], "Alice"))
	code := rec.last(t, EventRoomCreated).payload.(RoomEntered).Code

	for _, id := range playerIDs[1:n] {
		require.NoError(t, c.JoinRoom(id, code, id))
	}

	rec.reset()

	return c, rec, code
}

// startAndReady starts the game and marks every member ready.
func startAndReady(t *testing.T, c *Coordinator, code string) {
	t.Helper()

	room, ok := c.rooms.Get(code)
	require.True(t, ok)

	require.NoError(t, c.StartGame(room.HostID))
	for p := range room.Members.All() {
		require.NoError(t, c.PlayerReady(p.ID))
	}
	require.Equal(t, PhaseDiscussion, room.Phase)
}

func shadowCount(room *Room) int {
	n := 0
	for p := range room.Members.All() {
		if p.Role == RoleShadow {
			n++
		}
	}
	return n
}
