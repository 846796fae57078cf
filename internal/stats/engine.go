package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/nao1215/weaponstats/internal/model"
)

// Engine names accepted by New.
const (
	EngineMemory = "memory"
	EngineSQLite = "sqlite"
)

var (
	// ErrUnknownEngine is returned by New for unsupported engine names.
	ErrUnknownEngine = errors.New("unknown engine")

	// ErrNotLoaded is returned when a query runs before Load.
	ErrNotLoaded = errors.New("engine has no weapons loaded")
)

// Engine answers the report queries over one loaded set of weapons.
// Load is called once; the queries never modify the loaded data.
type Engine interface {
	// Load makes weapons available to the queries.
	Load(ctx context.Context, weapons []model.Weapon) error

	// Distribution counts weapons per Type.
	Distribution(ctx context.Context) (model.CategoryDistribution, error)

	// Top returns at most limit weapons ordered by metric descending,
	// ties broken by original row order.
	Top(ctx context.Context, metric Metric, limit int) (model.Ranking, error)

	// Name returns the engine name.
	Name() string

	// Close releases engine resources.
	Close() error
}

// New creates the engine registered under name.
func New(name string) (Engine, error) {
	switch name {
	case "", EngineMemory:
		return NewMemoryEngine(), nil
	case EngineSQLite:
		return NewSQLiteEngine()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}
