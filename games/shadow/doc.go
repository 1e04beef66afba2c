/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Package shadow implements the room and session state machine for the
// Shadow word game.
//
// How to play
//   - One player creates a room and shares its code; the others join with it
//   - The host starts the game once at least three players are present
//   - Everyone receives the same secret word, except one player (the shadow)
//     who receives a similar but different word
//   - Players confirm they have seen their word, then discuss, each describing
//     their word without giving it away
//   - Everyone votes for the player they think is the shadow
//   - If the most voted player is the shadow, every civilian scores; otherwise
//     the shadow scores
//   - The host can reveal a single player's role early, and advances to the
//     next round from the results screen
//
// All state lives in a Coordinator, which must only be driven from a single
// goroutine. Outbound events are handed to a Transport.
package shadow
