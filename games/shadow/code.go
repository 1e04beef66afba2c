/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package shadow

import (
	"crypto/rand"
	"math/big"
)

const (
	// RoomCodeLength is the length of generated room codes.
	RoomCodeLength = 5

	// RoomCodeChars leaves out characters that are easy to mistype.
	RoomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// NewRoomCode returns a random, short, upper-case room code.
func NewRoomCode() string {
	code := make([]byte, RoomCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(RoomCodeChars))))
		if err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		code[i] = RoomCodeChars[n.Int64()]
	}

	return string(code)
}

// uniqueCode draws codes from gen until one is not in use.
func uniqueCode(gen func() string, rooms *Registry) string {
	for {
		code := gen()
		if !rooms.Has(code) {
			return code
		}
	}
}
