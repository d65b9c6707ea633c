package state

import (
	"sync"

	"bobfviewer/pkg/engine/world"
)

// ItemType is the server's item discriminant
type ItemType string

// Item types the viewer knows how to draw. Anything else is skipped.
const (
	ItemJunk   ItemType = "JUST_SOME_JUNK"
	ItemWeapon ItemType = "WEAPON"
	ItemPotion ItemType = "POTION"
)

// Item is an item lying on the map. Its rendering identity is
// (Type, Position); there is no stable id.
type Item struct {
	Type            ItemType       `json:"type"`
	Position        world.Position `json:"position"`
	Price           float64        `json:"price"`
	DiscountPercent float64        `json:"discountPercent"`
}

// Player is a bot on the map. Name is unique and stable.
type Player struct {
	Name        string         `json:"name"`
	Position    world.Position `json:"position"`
	TimeInState int            `json:"timeInState"`
	Money       float64        `json:"money"`
	Score       float64        `json:"score"`
}

// ShootingLine is a transient shot event; Age counts ticks since it happened.
type ShootingLine struct {
	FromPosition world.Position `json:"fromPosition"`
	ToPosition   world.Position `json:"toPosition"`
	Age          int            `json:"age"`
}

// GameState is one complete snapshot from the server
type GameState struct {
	Items           []Item         `json:"items"`
	Players         []Player       `json:"players"`
	FinishedPlayers []Player       `json:"finishedPlayers"`
	ShootingLines   []ShootingLine `json:"shootingLines"`
}

// Flags are the presentation toggles. They never affect game state.
type Flags struct {
	ShowMapGrid    bool `json:"showMapGrid"`
	ShowItemLabels bool `json:"showItemLabels"`
	ShowBeer       bool `json:"showBeer"`
}

// DefaultFlags returns the toggles a fresh viewer starts with
func DefaultFlags() Flags {
	return Flags{ShowItemLabels: true}
}

// Snapshot is a consistent copy of everything a frame is built from.
// Map and State are nil until the first delivery. MapErr and StateErr hold
// the last feed failure for each input and are cleared by the next good value.
type Snapshot struct {
	Map            *world.GameMap
	State          *GameState
	MapErr         error
	StateErr       error
	ContainerWidth *int
	Flags          Flags
	Version        uint64
}

// Store holds the latest map and state. The feed writes, surfaces read.
type Store struct {
	mu             sync.RWMutex
	gameMap        *world.GameMap
	gameState      *GameState
	mapErr         error
	stateErr       error
	containerWidth *int
	flags          Flags
	version        uint64
}

// NewStore creates an empty store with the given initial flags
func NewStore(flags Flags) *Store {
	return &Store{flags: flags}
}

// SetMap replaces the current map
func (s *Store) SetMap(m *world.GameMap) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gameMap = m
	s.mapErr = nil
	s.version++
}

// SetMapError records why no usable map is available
func (s *Store) SetMapError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mapErr = err
	s.version++
}

// SetState replaces the current game state
func (s *Store) SetState(gs *GameState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gameState = gs
	s.stateErr = nil
	s.version++
}

// SetStateError records why no usable game state is available
func (s *Store) SetStateError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stateErr = err
	s.version++
}

// SetContainerWidth records the measured width available to the stage
func (s *Store) SetContainerWidth(width int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.containerWidth != nil && *s.containerWidth == width {
		return
	}
	s.containerWidth = &width
	s.version++
}

// UpdateFlags applies fn to the flags under the lock
func (s *Store) UpdateFlags(fn func(f *Flags)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.flags)
	s.version++
}

// Snapshot returns the current inputs. Map and state are immutable once
// stored, so sharing the pointers is safe.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Map:      s.gameMap,
		State:    s.gameState,
		MapErr:   s.mapErr,
		StateErr: s.stateErr,
		Flags:    s.flags,
		Version:  s.version,
	}
	if s.containerWidth != nil {
		w := *s.containerWidth
		snap.ContainerWidth = &w
	}
	return snap
}
