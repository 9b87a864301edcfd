// Package registry maps snake variant IDs to constructors.
//
// Variant packages call Register from init, so importing a variant is enough
// for the CLI, the menu and the SSH server to offer it.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is a playable variant as seen by a frontend.
// Implementations hold only simulation state; frontends own input, timing and output.
type Game interface {
	// ID is the name used on the command line, e.g. "snake_walls".
	ID() string

	// Title is shown in the menu.
	Title() string

	// Reset starts a new run with the given board, palette, screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Resize reports a new screen size without restarting the run.
	Resize(width, height int)

	// Step runs one tick, reading pending input from in exactly once.
	Step(in core.InputSource) core.StepResult

	// Render draws the board and HUD into dst and presents the frame.
	Render(dst *core.Screen)

	// State summarises the run for the frontend.
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh variant.
type Factory func() Game

// DefaultID is the variant played when none is named.
const DefaultID = "snake"

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register makes a variant available under id.
// Registering the same id twice is a programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns the registered variants ordered by ID.
func List() []GameInfo {
	mu.RLock()
	infos := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	mu.RUnlock()

	slices.SortFunc(infos, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return infos
}

// IDs returns the registered variant IDs in order.
func IDs() []string {
	infos := List()
	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
	}
	return ids
}

// Create builds a new instance of the variant named id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q (known: %s)", id, strings.Join(IDs(), ", "))
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
