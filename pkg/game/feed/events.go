// Package feed delivers the game map and game state from the game server:
// the map over HTTP once, then state changes over STOMP on a WebSocket.
package feed

import (
	"encoding/json"
	"errors"
	"fmt"

	"bobfviewer/pkg/engine/world"
	"bobfviewer/pkg/game/state"
)

var (
	// ErrInvalidMap is returned for map payloads that fail validation
	ErrInvalidMap = errors.New("invalid game map")

	// ErrInvalidState is returned for state payloads that fail validation
	ErrInvalidState = errors.New("invalid game state")
)

// GameStateChanged is the body of a message on the events topic
type GameStateChanged struct {
	Reason    string           `json:"reason,omitempty"`
	GameState *state.GameState `json:"gameState,omitempty"`
	NewMap    *world.GameMap   `json:"newMap,omitempty"`
}

// Sink receives validated inputs. state.Store implements it.
type Sink interface {
	SetMap(m *world.GameMap)
	SetMapError(err error)
	SetState(gs *state.GameState)
	SetStateError(err error)
}

// IsGameMap reports whether m is a usable map
func IsGameMap(m *world.GameMap) bool {
	return m != nil && m.Validate() == nil
}

// IsGameState reports whether gs carries every collection the viewer draws
func IsGameState(gs *state.GameState) bool {
	return gs != nil && gs.Items != nil && gs.Players != nil && gs.ShootingLines != nil
}

// DecodeEvent parses a message body
func DecodeEvent(body []byte) (GameStateChanged, error) {
	var ev GameStateChanged
	if err := json.Unmarshal(body, &ev); err != nil {
		return ev, fmt.Errorf("decoding event: %w", err)
	}
	return ev, nil
}

// Apply hands the event's payload to sink. A new map takes precedence over
// a state. Events with neither are ignored; payloads that are present but
// invalid are reported and not applied.
func Apply(ev GameStateChanged, sink Sink) error {
	if ev.NewMap != nil {
		if err := ev.NewMap.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidMap, err)
		}
		sink.SetMap(ev.NewMap)
		return nil
	}

	if ev.GameState != nil {
		if !IsGameState(ev.GameState) {
			return fmt.Errorf("%w: missing collections", ErrInvalidState)
		}
		sink.SetState(ev.GameState)
	}
	return nil
}
