/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package shadow

// Inbound events, client to server.
const (
	EventCreateRoom  = "createRoom"
	EventJoinRoom    = "joinRoom"
	EventStartGame   = "startGame"
	EventPlayerReady = "playerReady"
	EventSubmitVote  = "submitVote"
	EventNextRound   = "nextRound"
	EventRevealRole  = "revealRole"
	EventLeaveRoom   = "leaveRoom"
)

// Outbound events, server to client.
const (
	EventRoomCreated       = "roomCreated"
	EventRoomJoined        = "roomJoined"
	EventError             = "error"
	EventRoomUpdated       = "roomUpdated"
	EventGameStarted       = "gameStarted"
	EventRoleAssigned      = "roleAssigned"
	EventDiscussionStarted = "discussionStarted"
	EventVoteReceived      = "voteReceived"
	EventRoundResults      = "roundResults"
	EventRoundAdvanced     = "roundAdvanced"
	EventRoleRevealed      = "roleRevealed"
)

// RoomEntered is sent to the caller after createRoom and joinRoom.
type RoomEntered struct {
	Code     string `json:"code"`
	PlayerID string `json:"playerId"`
}

type ErrorMessage struct {
	Message string `json:"message"`
}

// RoleAssignment is sent privately to each member when a round starts.
type RoleAssignment struct {
	Role Role   `json:"role"`
	Word string `json:"word"`
}

type VoteReceived struct {
	VoterID        string `json:"voterId"`
	RemainingVotes int    `json:"remainingVotes"`
}

type RoleRevealed struct {
	PlayerID        string   `json:"playerId"`
	RevealedPlayers []string `json:"revealedPlayers"`
}
