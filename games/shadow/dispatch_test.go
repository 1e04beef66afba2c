/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package shadow

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch(t *testing.T) {
	rec := newRecorder()
	c := NewCoordinator(rec, Config{
		NewCode: func() string { return "ZZZZZ" },
		Rand:    &scriptedRand{vals: []int{0, 0}},
	})

	require.NoError(t, c.Dispatch("alice", EventCreateRoom, json.RawMessage(`"Alice"`)))
	require.NoError(t, c.Dispatch("bob", EventJoinRoom, json.RawMessage(`{"code":"zzzzz","name":"Bob"}`)))
	require.NoError(t, c.Dispatch("carol", EventJoinRoom, json.RawMessage(`{"code":"ZZZZZ","name":"Carol"}`)))
	require.NoError(t, c.Dispatch("alice", EventStartGame, nil))

	for _, id := range []string{"alice", "bob", "carol"} {
		require.NoError(t, c.Dispatch(id, EventPlayerReady, nil))
	}

	require.NoError(t, c.Dispatch("alice", EventSubmitVote, json.RawMessage(`"bob"`)))
	require.NoError(t, c.Dispatch("bob", EventSubmitVote, json.RawMessage(`{"targetId":"alice"}`)))
	require.NoError(t, c.Dispatch("carol", EventSubmitVote, json.RawMessage(`"alice"`)))

	room, _ := c.rooms.Get("ZZZZZ")
	require.Equal(t, PhaseResults, room.Phase)
	assert.True(t, room.LastResult.ShadowCaught)

	require.NoError(t, c.Dispatch("alice", EventRevealRole, json.RawMessage(`{"targetId":"carol"}`)))
	assert.Equal(t, []string{"carol"}, room.Revealed())

	require.NoError(t, c.Dispatch("alice", EventNextRound, json.RawMessage(`{}`)))
	assert.Equal(t, 2, room.Round)

	require.NoError(t, c.Dispatch("carol", EventLeaveRoom, nil))
	assert.Equal(t, 2, room.Members.Len())
}

func TestDispatchErrors(t *testing.T) {
	c := NewCoordinator(newRecorder(), Config{})

	assert.ErrorIs(t, c.Dispatch("a", "dance", nil), ErrUnknownEvent)
	assert.Error(t, c.Dispatch("a", EventJoinRoom, json.RawMessage(`[1,2]`)))
	assert.Error(t, c.Dispatch("a", EventCreateRoom, json.RawMessage(`{"name": 5}`)))
	assert.ErrorIs(t, c.Dispatch("a", EventCreateRoom, nil), ErrNameRequired)
	assert.ErrorIs(t, c.Dispatch("a", EventSubmitVote, json.RawMessage(`"b"`)), ErrUnknownParticipant)
}

func TestDecodeString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: ``, want: ""},
		{in: `null`, want: ""},
		{in: `"plain"`, want: "plain"},
		{in: ` {"name":"Nested"} `, want: "Nested"},
		{in: `{"other":"x"}`, want: ""},
	}

	for _, tt := range tests {
		got, err := decodeString(json.RawMessage(tt.in), "name")
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
