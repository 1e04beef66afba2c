/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package shadow

import "maps"

// PlayerView is the public view of one member.
type PlayerView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsReady bool   `json:"isReady"`
	Score   int    `json:"score"`
	Role    Role   `json:"role,omitempty"`
	Word    string `json:"word,omitempty"`
}

// Snapshot is the room state that may be shown to every member.
type Snapshot struct {
	Code            string       `json:"code"`
	Players         []PlayerView `json:"players"`
	GameState       Phase        `json:"gameState"`
	Round           int          `json:"round"`
	MaxPlayers      int          `json:"maxPlayers"`
	HostID          string       `json:"hostId"`
	WordPair        *WordPair    `json:"wordPair,omitempty"`
	Votes           int          `json:"votes"`
	RevealedPlayers []string     `json:"revealedPlayers"`
	Result          *TallyResult `json:"result,omitempty"`
}

// project builds a fresh snapshot of room. Roles and words are only
// included for revealed members, or for everyone once results are in.
func project(room *Room) Snapshot {
	results := room.Phase == PhaseResults

	s := Snapshot{
		Code:            room.Code,
		Players:         make([]PlayerView, 0, room.Members.Len()),
		GameState:       room.Phase,
		Round:           room.Round,
		MaxPlayers:      room.MaxPlayers,
		HostID:          room.HostID,
		Votes:           room.votes.len(),
		RevealedPlayers: room.Revealed(),
	}

	if s.RevealedPlayers == nil {
		s.RevealedPlayers = []string{}
	}

	for p := range room.Members.All() {
		view := PlayerView{
			ID:      p.ID,
			Name:    p.Name,
			IsReady: p.Ready,
			Score:   p.Score,
		}
		if results || room.isRevealed(p.ID) {
			view.Role = p.Role
			view.Word = p.Word
		}
		s.Players = append(s.Players, view)
	}

	if results {
		if room.Pair != nil {
			pair := *room.Pair
			s.WordPair = &pair
		}
		if room.LastResult != nil {
			result := *room.LastResult
			result.Counts = maps.Clone(result.Counts)
			s.Result = &result
		}
	}

	return s
}
