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

func TestSnapshotSecrecy(t *testing.T) {
	c, _, code := setupRoom(t, 3, Config{Rand: &scriptedRand{vals: []int{0, 1}}})
	room, _ := c.rooms.Get(code)

	hidden := func(s Snapshot) {
		t.Helper()
		for _, p := range s.Players {
			assert.Empty(t, p.Role, p.ID)
			assert.Empty(t, p.Word, p.ID)
		}
		assert.Nil(t, s.WordPair)
		assert.Nil(t, s.Result)
	}

	require.NoError(t, c.StartGame("alice"))
	hidden(project(room))

	for p := range room.Members.All() {
		require.NoError(t, c.PlayerReady(p.ID))
	}
	hidden(project(room))

	for p := range room.Members.All() {
		require.NoError(t, c.SubmitVote(p.ID, "bob"))
	}

	s := project(room)
	require.Equal(t, PhaseResults, s.GameState)
	for _, p := range s.Players {
		want := RoleCivilian
		if p.ID == "bob" {
			want = RoleShadow
		}
		assert.Equal(t, want, p.Role, p.ID)
		assert.NotEmpty(t, p.Word, p.ID)
	}
	require.NotNil(t, s.WordPair)
	require.NotNil(t, s.Result)
	assert.True(t, s.Result.ShadowCaught)
}

func TestSnapshotIsACopy(t *testing.T) {
	c, _, code := setupRoom(t, 3, Config{})
	room, _ := c.rooms.Get(code)
	startAndReady(t, c, code)
	for p := range room.Members.All() {
		require.NoError(t, c.SubmitVote(p.ID, "carol"))
	}

	s, ok := c.Snapshot(code)
	require.True(t, ok)

	s.WordPair.Odd = "mutated"
	s.Result.EliminatedID = "mutated"
	s.Players[0].Score = -1

	assert.NotEqual(t, "mutated", room.Pair.Odd)
	assert.NotEqual(t, "mutated", room.LastResult.EliminatedID)
	alice, _ := room.Members.Get("alice")
	assert.NotEqual(t, -1, alice.Score)
}

func TestSnapshotJSON(t *testing.T) {
	c, _, code := setupRoom(t, 2, Config{})

	s, ok := c.Snapshot(code)
	require.True(t, ok)

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, code, got["code"])
	assert.Equal(t, "lobby", got["gameState"])
	assert.Equal(t, "alice", got["hostId"])
	assert.Equal(t, []any{}, got["revealedPlayers"])
	assert.NotContains(t, got, "wordPair")
	assert.NotContains(t, got, "result")

	players := got["players"].([]any)
	require.Len(t, players, 2)
	first := players[0].(map[string]any)
	assert.NotContains(t, first, "role")
	assert.NotContains(t, first, "word")
	assert.Equal(t, false, first["isReady"])
}
