/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package shadow

import "fmt"

// TieBreak selects the eliminated player when several targets share the
// highest vote count.
type TieBreak string

const (
	// TieBreakFirstToReach picks the target whose running count reached the
	// maximum first when votes are replayed in arrival order.
	TieBreakFirstToReach TieBreak = "first-to-reach"

	// TieBreakFirstVoted picks the tied target that received a vote first.
	TieBreakFirstVoted TieBreak = "first-voted"
)

func ParseTieBreak(s string) (TieBreak, error) {
	switch t := TieBreak(s); t {
	case TieBreakFirstToReach, TieBreakFirstVoted:
		return t, nil
	default:
		return "", fmt.Errorf("unknown tie-break policy %q (want %q or %q)", s, TieBreakFirstToReach, TieBreakFirstVoted)
	}
}

// TallyResult is the outcome of a completed vote.
type TallyResult struct {
	EliminatedID string         `json:"eliminatedId"`
	ShadowCaught bool           `json:"shadowCaught"`
	Counts       map[string]int `json:"voteCounts"`
}

// Tally counts votes, given in arrival order, and returns the eliminated
// target with the raw per-target counts. It returns "" when there are no votes.
func Tally(votes []Vote, policy TieBreak) (string, map[string]int) {
	counts := make(map[string]int, len(votes))
	firstSeen := make([]string, 0, len(votes))

	for _, v := range votes {
		if counts[v.TargetID] == 0 {
			firstSeen = append(firstSeen, v.TargetID)
		}
		counts[v.TargetID]++
	}

	highest := 0
	for _, n := range counts {
		highest = max(highest, n)
	}
	if highest == 0 {
		return "", counts
	}

	if policy == TieBreakFirstVoted {
		for _, id := range firstSeen {
			if counts[id] == highest {
				return id, counts
			}
		}
	}

	running := make(map[string]int, len(counts))
	for _, v := range votes {
		running[v.TargetID]++
		if running[v.TargetID] == highest {
			return v.TargetID, counts
		}
	}

	return "", counts
}

// Rewards holds the points handed out at the end of a round.
type Rewards struct {
	Civilian int
	Shadow   int
}

// score tallies the room's ballot, applies rewards and returns the result.
func score(room *Room, policy TieBreak, rewards Rewards) *TallyResult {
	eliminated, counts := Tally(room.votes.Votes(), policy)

	result := &TallyResult{
		EliminatedID: eliminated,
		Counts:       counts,
	}

	if p, ok := room.Members.Get(eliminated); ok && p.Role == RoleShadow {
		result.ShadowCaught = true
	}

	for p := range room.Members.All() {
		switch {
		case result.ShadowCaught && p.Role == RoleCivilian:
			p.Score += rewards.Civilian
		case !result.ShadowCaught && p.Role == RoleShadow:
			p.Score += rewards.Shadow
		}
	}

	return result
}
