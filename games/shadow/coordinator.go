/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package shadow

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/rs/zerolog"
)

const (
	DefaultMaxPlayers     = 6
	DefaultMinPlayers     = 3
	DefaultCivilianReward = 100
	DefaultShadowReward   = 200
)

// Random is the source used to draw word pairs and shadows.
type Random interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

// Config controls room policy. Zero values fall back to the defaults.
type Config struct {
	MaxPlayers int
	MinPlayers int
	Rewards    Rewards
	TieBreak   TieBreak
	WordPairs  []WordPair
	Rand       Random
	NewCode    func() string
	Logger     *zerolog.Logger
}

func (c Config) withDefaults() Config {
	if c.MaxPlayers <= 0 {
		c.MaxPlayers = DefaultMaxPlayers
	}
	if c.MinPlayers <= 0 {
		c.MinPlayers = DefaultMinPlayers
	}
	if c.Rewards == (Rewards{}) {
		c.Rewards = Rewards{Civilian: DefaultCivilianReward, Shadow: DefaultShadowReward}
	}
	if c.TieBreak == "" {
		c.TieBreak = TieBreakFirstToReach
	}
	if len(c.WordPairs) == 0 {
		c.WordPairs = DefaultWordPairs
	}
	if c.Rand == nil {
		c.Rand = globalRand{}
	}
	if c.NewCode == nil {
		c.NewCode = NewRoomCode
	}
	if c.Logger == nil {
		nop := zerolog.Nop()
		c.Logger = &nop
	}
	return c
}

// Coordinator owns every room and participant. It is not safe for
// concurrent use; all calls must come from one goroutine.
type Coordinator struct {
	cfg          Config
	rooms        *Registry
	participants *Index
	transport    Transport
	log          zerolog.Logger
}

func NewCoordinator(transport Transport, cfg Config) *Coordinator {
	cfg = cfg.withDefaults()

	return &Coordinator{
		cfg:          cfg,
		rooms:        NewRegistry(),
		participants: NewIndex(),
		transport:    transport,
		log:          cfg.Logger.With().Str("game", "shadow").Logger(),
	}
}

func (c *Coordinator) RoomCount() int {
	return c.rooms.Len()
}

func (c *Coordinator) ParticipantCount() int {
	return c.participants.Len()
}

// Snapshot returns the public view of a live room.
func (c *Coordinator) Snapshot(code string) (Snapshot, bool) {
	room, ok := c.rooms.Get(code)
	if !ok {
		return Snapshot{}, false
	}
	return project(room), true
}

func (c *Coordinator) CreateRoom(connID, name string) error {
	name, err := cleanName(name)
	if err != nil {
		return c.fail(connID, err)
	}

	if _, ok := c.participants.Get(connID); ok {
		return c.fail(connID, ErrAlreadyInRoom)
	}

	code := uniqueCode(c.cfg.NewCode, c.rooms)

	p := &Participant{ID: connID, Name: name}
	room := newRoom(code, p, c.cfg.MaxPlayers)

	c.rooms.Put(room)
	c.participants.Put(p)
	c.transport.Join(connID, code)

	c.log.Info().Str("room", code).Str("player", connID).Str("name", name).Msg("room created")

	c.transport.SendTo(connID, EventRoomCreated, RoomEntered{Code: code, PlayerID: connID})
	c.broadcast(room, EventRoomUpdated)

	return nil
}

func (c *Coordinator) JoinRoom(connID, code, name string) error {
	name, err := cleanName(name)
	if err != nil {
		return c.fail(connID, err)
	}

	if _, ok := c.participants.Get(connID); ok {
		return c.fail(connID, ErrAlreadyInRoom)
	}

	code = NormalizeCode(code)

	room, ok := c.rooms.Get(code)
	switch {
	case !ok:
		return c.fail(connID, ErrRoomNotFound)
	case room.full():
		return c.fail(connID, ErrRoomFull)
	case room.Phase != PhaseLobby:
		return c.fail(connID, ErrGameInProgress)
	}

	p := &Participant{ID: connID, Name: name, RoomCode: code}
	room.Members.Put(p)
	c.participants.Put(p)
	c.transport.Join(connID, code)

	c.log.Info().Str("room", code).Str("player", connID).Str("name", name).
		Int("players", room.Members.Len()).Msg("player joined")

	c.transport.SendTo(connID, EventRoomJoined, RoomEntered{Code: code, PlayerID: connID})
	c.broadcast(room, EventRoomUpdated)

	return nil
}

func (c *Coordinator) StartGame(connID string) error {
	p, room, err := c.member(connID)
	if err != nil {
		return c.fail(connID, err)
	}

	switch {
	case !room.isHost(p.ID):
		return c.fail(connID, ErrNotHost)
	case room.Phase != PhaseLobby:
		return c.fail(connID, ErrGameInProgress)
	case room.Members.Len() < c.cfg.MinPlayers:
		return c.fail(connID, fmt.Errorf("%w: need at least %d", ErrNotEnoughPlayers, c.cfg.MinPlayers))
	}

	pair := c.cfg.WordPairs[c.cfg.Rand.IntN(len(c.cfg.WordPairs))]
	shadowID := room.Members.At(c.cfg.Rand.IntN(room.Members.Len())).ID

	for m := range room.Members.All() {
		m.Ready = false
		if m.ID == shadowID {
			m.Role = RoleShadow
			m.Word = pair.Odd
		} else {
			m.Role = RoleCivilian
			m.Word = pair.Common
		}
	}

	room.Pair = &pair
	room.LastResult = nil
	room.votes.clear()
	room.revealed = nil
	room.Phase = PhaseAssigning

	c.log.Info().Str("room", room.Code).Int("round", room.Round).
		Int("players", room.Members.Len()).Msg("round started")

	for m := range room.Members.All() {
		c.transport.SendTo(m.ID, EventRoleAssigned, RoleAssignment{Role: m.Role, Word: m.Word})
	}
	c.broadcast(room, EventGameStarted)

	return nil
}

func (c *Coordinator) PlayerReady(connID string) error {
	p, room, err := c.member(connID)
	if err != nil {
		return c.fail(connID, err)
	}

	if room.Phase != PhaseAssigning {
		return c.fail(connID, ErrWrongPhase)
	}

	p.Ready = true

	if room.allReady() {
		c.beginDiscussion(room)
		return nil
	}

	c.broadcast(room, EventRoomUpdated)

	return nil
}

func (c *Coordinator) SubmitVote(connID, targetID string) error {
	p, room, err := c.member(connID)
	if err != nil {
		return c.fail(connID, err)
	}

	if room.Phase != PhaseDiscussion {
		return c.fail(connID, ErrWrongPhase)
	}

	if !room.Members.Has(targetID) {
		return c.fail(connID, ErrInvalidTarget)
	}

	room.votes.cast(p.ID, targetID)

	if room.allVoted() {
		c.finishVoting(room)
		return nil
	}

	c.transport.SendToRoom(room.Code, EventVoteReceived, VoteReceived{
		VoterID:        p.ID,
		RemainingVotes: room.Members.Len() - room.votes.len(),
	})

	return nil
}

func (c *Coordinator) NextRound(connID string) error {
	p, room, err := c.member(connID)
	if err != nil {
		return c.fail(connID, err)
	}

	if !room.isHost(p.ID) {
		return c.fail(connID, ErrNotHost)
	}

	room.Round++
	room.resetToLobby()

	c.log.Info().Str("room", room.Code).Int("round", room.Round).Msg("round advanced")

	c.broadcast(room, EventRoundAdvanced)

	return nil
}

func (c *Coordinator) RevealRole(connID, targetID string) error {
	p, room, err := c.member(connID)
	if err != nil {
		return c.fail(connID, err)
	}

	if !room.isHost(p.ID) {
		return c.fail(connID, ErrNotHost)
	}

	if !room.Members.Has(targetID) {
		return c.fail(connID, ErrInvalidTarget)
	}

	if room.reveal(targetID) {
		c.log.Info().Str("room", room.Code).Str("player", targetID).Msg("role revealed")
	}

	c.transport.SendToRoom(room.Code, EventRoleRevealed, RoleRevealed{
		PlayerID:        targetID,
		RevealedPlayers: room.Revealed(),
	})
	c.broadcast(room, EventRoomUpdated)

	return nil
}

func (c *Coordinator) LeaveRoom(connID string) error {
	return c.depart(connID)
}

// Disconnect handles a dropped connection exactly like LeaveRoom.
func (c *Coordinator) Disconnect(connID string) error {
	return c.depart(connID)
}

func (c *Coordinator) depart(connID string) error {
	p, ok := c.participants.Get(connID)
	if !ok {
		return ErrUnknownParticipant
	}

	c.participants.Remove(connID)
	c.transport.Leave(connID, p.RoomCode)

	room, ok := c.rooms.Get(p.RoomCode)
	if !ok {
		return nil
	}

	room.Members.Remove(p.ID)
	room.votes.drop(p.ID)
	room.votes.dropTarget(p.ID)
	room.unreveal(p.ID)

	if room.Members.Len() == 0 {
		c.rooms.Remove(room.Code)
		c.log.Info().Str("room", room.Code).Msg("room closed")
		return nil
	}

	if room.isHost(p.ID) {
		next, _ := room.Members.First()
		room.HostID = next.ID
		c.log.Info().Str("room", room.Code).Str("host", next.ID).Msg("host reassigned")
	}

	c.log.Info().Str("room", room.Code).Str("player", p.ID).
		Int("players", room.Members.Len()).Msg("player left")

	c.broadcast(room, EventRoomUpdated)

	switch {
	case p.Role == RoleShadow && room.Phase.inRound():
		if room.Phase == PhaseResults {
			room.Round++
		}
		room.resetToLobby()
		c.log.Info().Str("room", room.Code).Int("round", room.Round).Msg("round aborted, shadow left")
		c.broadcast(room, EventRoundAdvanced)
	case room.Phase == PhaseAssigning && room.allReady():
		c.beginDiscussion(room)
	case room.Phase == PhaseDiscussion && room.allVoted():
		c.finishVoting(room)
	}

	return nil
}

func (c *Coordinator) beginDiscussion(room *Room) {
	for m := range room.Members.All() {
		m.Ready = false
	}
	room.votes.clear()
	room.Phase = PhaseDiscussion

	c.log.Debug().Str("room", room.Code).Msg("discussion started")

	c.broadcast(room, EventDiscussionStarted)
}

func (c *Coordinator) finishVoting(room *Room) {
	room.LastResult = score(room, c.cfg.TieBreak, c.cfg.Rewards)
	room.Phase = PhaseResults

	c.log.Info().Str("room", room.Code).Int("round", room.Round).
		Str("eliminated", room.LastResult.EliminatedID).
		Bool("caught", room.LastResult.ShadowCaught).Msg("votes tallied")

	c.broadcast(room, EventRoundResults)
}

// member resolves a connection to its participant and room.
func (c *Coordinator) member(connID string) (*Participant, *Room, error) {
	p, ok := c.participants.Get(connID)
	if !ok {
		return nil, nil, ErrUnknownParticipant
	}

	room, ok := c.rooms.Get(p.RoomCode)
	if !ok {
		return nil, nil, ErrUnknownParticipant
	}

	return p, room, nil
}

func (c *Coordinator) broadcast(room *Room, event string) {
	c.transport.SendToRoom(room.Code, event, project(room))
}

// fail reports err to the caller unless it is one of the silent errors,
// and returns it.
func (c *Coordinator) fail(connID string, err error) error {
	if !silent(err) {
		c.transport.SendTo(connID, EventError, ErrorMessage{Message: err.Error()})
	}
	return err
}

// NormalizeCode trims and upper-cases a user-typed room code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	return name, nil
}
