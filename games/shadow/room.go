/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package shadow

import "slices"

// Phase is the room-scoped game state.
type Phase string

const (
	PhaseLobby      Phase = "lobby"
	PhaseAssigning  Phase = "assigning"
	PhaseDiscussion Phase = "discussion"
	PhaseResults    Phase = "results"
)

// inRound reports whether roles are handed out in this phase.
func (p Phase) inRound() bool {
	return p == PhaseAssigning || p == PhaseDiscussion || p == PhaseResults
}

// Vote is a single ballot, voter to target.
type Vote struct {
	VoterID  string
	TargetID string
}

// ballot keeps the latest vote per voter in arrival order.
// Re-voting moves the voter to the end.
type ballot struct {
	votes []Vote
}

func (b *ballot) cast(voterID, targetID string) {
	b.drop(voterID)
	b.votes = append(b.votes, Vote{VoterID: voterID, TargetID: targetID})
}

func (b *ballot) drop(voterID string) {
	b.votes = slices.DeleteFunc(b.votes, func(v Vote) bool {
		return v.VoterID == voterID
	})
}

// dropTarget removes every vote cast for targetID and returns how many were removed.
func (b *ballot) dropTarget(targetID string) int {
	before := len(b.votes)
	b.votes = slices.DeleteFunc(b.votes, func(v Vote) bool {
		return v.TargetID == targetID
	})
	return before - len(b.votes)
}

func (b *ballot) len() int {
	return len(b.votes)
}

func (b *ballot) clear() {
	b.votes = nil
}

// Votes returns a copy of the ballot in arrival order.
func (b *ballot) Votes() []Vote {
	return slices.Clone(b.votes)
}

// Room is a single game session.
type Room struct {
	Code       string
	Members    *Members
	Phase      Phase
	Round      int
	HostID     string
	MaxPlayers int
	Pair       *WordPair
	LastResult *TallyResult

	votes    ballot
	revealed []string
}

func newRoom(code string, host *Participant, maxPlayers int) *Room {
	r := &Room{
		Code:       code,
		Members:    newMembers(maxPlayers),
		Phase:      PhaseLobby,
		Round:      1,
		HostID:     host.ID,
		MaxPlayers: maxPlayers,
	}
	host.RoomCode = code
	r.Members.Put(host)

	return r
}

func (r *Room) full() bool {
	return r.Members.Len() >= r.MaxPlayers
}

func (r *Room) isHost(id string) bool {
	return r.HostID == id
}

// Votes returns the current ballot in arrival order.
func (r *Room) Votes() []Vote {
	return r.votes.Votes()
}

// Revealed returns the IDs revealed so far, in reveal order.
func (r *Room) Revealed() []string {
	return slices.Clone(r.revealed)
}

func (r *Room) isRevealed(id string) bool {
	return slices.Contains(r.revealed, id)
}

// reveal adds id to the reveal set. It returns false if id was already present.
func (r *Room) reveal(id string) bool {
	if r.isRevealed(id) {
		return false
	}
	r.revealed = append(r.revealed, id)
	return true
}

func (r *Room) unreveal(id string) {
	r.revealed = slices.DeleteFunc(r.revealed, func(s string) bool {
		return s == id
	})
}

func (r *Room) allReady() bool {
	for p := range r.Members.All() {
		if !p.Ready {
			return false
		}
	}
	return r.Members.Len() > 0
}

func (r *Room) allVoted() bool {
	return r.Members.Len() > 0 && r.votes.len() == r.Members.Len()
}

// resetToLobby clears all per-round state. The round counter is left alone.
func (r *Room) resetToLobby() {
	for p := range r.Members.All() {
		p.resetRound()
	}
	r.Phase = PhaseLobby
	r.Pair = nil
	r.LastResult = nil
	r.votes.clear()
	r.revealed = nil
}
