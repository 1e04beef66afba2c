/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package shadow

import "errors"

var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomFull           = errors.New("room is full")
	ErrGameInProgress     = errors.New("game already in progress")
	ErrNotHost            = errors.New("only the host can do that")
	ErrUnknownParticipant = errors.New("unknown participant")
	ErrAlreadyInRoom      = errors.New("already in a room")
	ErrNameRequired       = errors.New("name is required")
	ErrNotEnoughPlayers   = errors.New("not enough players")
	ErrInvalidTarget      = errors.New("target is not in this room")
	ErrWrongPhase         = errors.New("not allowed in the current phase")
)

// silent reports whether err should be swallowed instead of being reported
// back to the caller as an error event.
func silent(err error) bool {
	return errors.Is(err, ErrUnknownParticipant) || errors.Is(err, ErrWrongPhase)
}
