// Package registry provides a global registry for renderer backends.
// Backends register themselves in init() functions, allowing the CLI
// to discover and run them without hardcoded dependencies.
package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake/internal/games/snake"
)

// ErrUnknownBackend is returned by Create for names nobody registered.
var ErrUnknownBackend = errors.New("registry: unknown backend")

// DefaultBackend is the backend used when none is named.
const DefaultBackend = "terminal"

// Backend hosts a game: it owns the renderer, the input source, the UI and
// the frame source, and runs until the player quits or ctx is cancelled.
type Backend interface {
	// Name returns a unique identifier used on the command line (e.g., "terminal").
	Name() string

	// Title returns a human-readable description for listings.
	Title() string

	// Run builds the game from cfg and blocks until it ends.
	Run(ctx context.Context, cfg snake.Config, opts RunOptions) error
}

// RunOptions carries host settings that are not part of the game config.
type RunOptions struct {
	// FPS is the display refresh rate driving the frame loop.
	// Zero selects the backend default.
	FPS int

	Logger *log.Logger

	// GameOptions are passed to snake.New.
	GameOptions []snake.Option
}

// DefaultFPS is the display refresh rate used when RunOptions.FPS is zero.
const DefaultFPS = 60

// FrameRate returns the configured FPS or DefaultFPS.
func (o RunOptions) FrameRate() int {
	if o.FPS <= 0 {
		return DefaultFPS
	}
	return o.FPS
}

// Log returns the configured logger or one that discards everything.
func (o RunOptions) Log() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name  string
	Title string
}

// Factory is a function that creates a new instance of a backend.
type Factory func() Backend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}

	factories[name] = f

	// Get title by creating a temporary instance
	titles[name] = f().Title()
}

// List returns information about all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for name := range factories {
		result = append(result, BackendInfo{
			Name:  name,
			Title: titles[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new backend by its name.
// Returns an error wrapping ErrUnknownBackend if the name is not registered.
func Create(name string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, name)
	}

	return f(), nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
