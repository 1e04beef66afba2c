/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package shadow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func votes(pairs ...string) []Vote {
	out := make([]Vote, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Vote{VoterID: pairs[i], TargetID: pairs[i+1]})
	}
	return out
}

func TestTally(t *testing.T) {
	tests := []struct {
		name       string
		votes      []Vote
		policy     TieBreak
		want       string
		wantCounts map[string]int
	}{
		{
			name:       "no votes",
			votes:      nil,
			policy:     TieBreakFirstToReach,
			want:       "",
			wantCounts: map[string]int{},
		},
		{
			name:       "clear majority",
			votes:      votes("a", "b", "b", "c", "c", "b"),
			policy:     TieBreakFirstToReach,
			want:       "b",
			wantCounts: map[string]int{"b": 2, "c": 1},
		},
		{
			name:       "tie goes to whoever reached the top count first",
			votes:      votes("a", "x", "b", "y", "c", "y", "d", "x"),
			policy:     TieBreakFirstToReach,
			want:       "y",
			wantCounts: map[string]int{"x": 2, "y": 2},
		},
		{
			name:       "tie goes to whoever was voted for first",
			votes:      votes("a", "x", "b", "y", "c", "y", "d", "x"),
			policy:     TieBreakFirstVoted,
			want:       "x",
			wantCounts: map[string]int{"x": 2, "y": 2},
		},
		{
			name:       "all singletons",
			votes:      votes("a", "b", "b", "c", "c", "a"),
			policy:     TieBreakFirstToReach,
			want:       "b",
			wantCounts: map[string]int{"a": 1, "b": 1, "c": 1},
		},
		{
			name:       "self vote counts",
			votes:      votes("a", "a", "b", "a", "c", "b"),
			policy:     TieBreakFirstVoted,
			want:       "a",
			wantCounts: map[string]int{"a": 2, "b": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, counts := Tally(tt.votes, tt.policy)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCounts, counts)
		})
	}
}

func TestTallyIsDeterministic(t *testing.T) {
	ballot := votes("a", "x", "b", "y", "c", "z", "d", "y", "e", "x", "f", "z")

	for _, policy := range []TieBreak{TieBreakFirstToReach, TieBreakFirstVoted} {
		first, _ := Tally(ballot, policy)
		for range 100 {
			got, _ := Tally(ballot, policy)
			require.Equal(t, first, got, policy)
		}
	}
}

func TestScore(t *testing.T) {
	newScoredRoom := func() *Room {
		host := &Participant{ID: "a", Role: RoleCivilian}
		room := newRoom("ABCDE", host, DefaultMaxPlayers)
		room.Members.Put(&Participant{ID: "b", Role: RoleShadow, RoomCode: "ABCDE"})
		room.Members.Put(&Participant{ID: "c", Role: RoleCivilian, RoomCode: "ABCDE", Score: 50})
		return room
	}
	rewards := Rewards{Civilian: 10, Shadow: 30}

	t.Run("shadow caught", func(t *testing.T) {
		room := newScoredRoom()
		for _, v := range votes("a", "b", "b", "c", "c", "b") {
			room.votes.cast(v.VoterID, v.TargetID)
		}

		result := score(room, TieBreakFirstToReach, rewards)

		assert.True(t, result.ShadowCaught)
		assert.Equal(t, "b", result.EliminatedID)
		assertScores(t, room, map[string]int{"a": 10, "b": 0, "c": 60})
	})

	t.Run("civilian eliminated", func(t *testing.T) {
		room := newScoredRoom()
		for _, v := range votes("a", "c", "b", "c", "c", "a") {
			room.votes.cast(v.VoterID, v.TargetID)
		}

		result := score(room, TieBreakFirstToReach, rewards)

		assert.False(t, result.ShadowCaught)
		assert.Equal(t, "c", result.EliminatedID)
		assertScores(t, room, map[string]int{"a": 0, "b": 30, "c": 50})
	})

	t.Run("empty ballot favours the shadow", func(t *testing.T) {
		room := newScoredRoom()

		result := score(room, TieBreakFirstToReach, rewards)

		assert.False(t, result.ShadowCaught)
		assert.Empty(t, result.EliminatedID)
		assertScores(t, room, map[string]int{"a": 0, "b": 30, "c": 50})
	})
}

func assertScores(t *testing.T, room *Room, want map[string]int) {
	t.Helper()
	for p := range room.Members.All() {
		assert.Equal(t, want[p.ID], p.Score, p.ID)
	}
}

func TestParseTieBreak(t *testing.T) {
	got, err := ParseTieBreak("first-voted")
	require.NoError(t, err)
	assert.Equal(t, TieBreakFirstVoted, got)

	got, err = ParseTieBreak("first-to-reach")
	require.NoError(t, err)
	assert.Equal(t, TieBreakFirstToReach, got)

	_, err = ParseTieBreak("random")
	assert.Error(t, err)
}

func TestCoordinatorUsesTieBreak(t *testing.T) {
	for policy, want := range map[TieBreak]string{
		TieBreakFirstToReach: "carol",
		TieBreakFirstVoted:   "bob",
	} {
		c, _, code := setupRoom(t, 4, Config{TieBreak: policy})
		room, _ := c.rooms.Get(code)
		startAndReady(t, c, code)

		require.NoError(t, c.SubmitVote("alice", "bob"))
		require.NoError(t, c.SubmitVote("bob", "carol"))
		require.NoError(t, c.SubmitVote("carol", "carol"))
		require.NoError(t, c.SubmitVote("dave", "bob"))

		assert.Equal(t, want, room.LastResult.EliminatedID, policy)
	}
}
