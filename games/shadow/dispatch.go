/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package shadow

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownEvent is returned by Dispatch for event names it does not handle.
var ErrUnknownEvent = errors.New("unknown event")

type joinRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Dispatch decodes an inbound event and applies it to the coordinator.
func (c *Coordinator) Dispatch(connID, event string, data json.RawMessage) error {
	switch event {
	case EventCreateRoom:
		name, err := decodeString(data, "name")
		if err != nil {
			return err
		}
		return c.CreateRoom(connID, name)

	case EventJoinRoom:
		var req joinRequest
		if err := json.Unmarshal(data, &req); err != nil {
			return fmt.Errorf("decoding %s: %w", event, err)
		}
		return c.JoinRoom(connID, req.Code, req.Name)

	case EventStartGame:
		return c.StartGame(connID)

	case EventPlayerReady:
		return c.PlayerReady(connID)

	case EventSubmitVote:
		target, err := decodeString(data, "targetId")
		if err != nil {
			return err
		}
		return c.SubmitVote(connID, target)

	case EventNextRound:
		return c.NextRound(connID)

	case EventRevealRole:
		target, err := decodeString(data, "targetId")
		if err != nil {
			return err
		}
		return c.RevealRole(connID, target)

	case EventLeaveRoom:
		return c.LeaveRoom(connID)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}
}

// decodeString accepts either a bare JSON string or an object carrying the
// value under field.
func decodeString(data json.RawMessage, field string) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", fmt.Errorf("decoding %s: %w", field, err)
		}
		return s, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("decoding %s: %w", field, err)
	}

	raw, ok := obj[field]
	if !ok {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("decoding %s: %w", field, err)
	}

	return s, nil
}
