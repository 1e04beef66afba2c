/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package shadow

// Role is the secret role held by a participant during a round.
type Role string

const (
	RoleUnassigned Role = ""
	RoleShadow     Role = "shadow"
	RoleCivilian   Role = "civilian"
)

// Participant is a player bound to a single live connection.
type Participant struct {
	ID       string
	Name     string
	RoomCode string
	Role     Role
	Word     string
	Ready    bool
	Score    int
}

// resetRound clears everything a participant holds for the active round.
// Score is kept.
func (p *Participant) resetRound() {
	p.Role = RoleUnassigned
	p.Word = ""
	p.Ready = false
}
