package stats

import (
	"cmp"
	"context"
	"slices"

	"github.com/nao1215/weaponstats/internal/model"
)

// MemoryEngine answers queries with stable sorts over a slice.
type MemoryEngine struct {
	weapons []model.Weapon
	loaded  bool
}

// NewMemoryEngine creates an empty MemoryEngine.
func NewMemoryEngine() *MemoryEngine {
	return &MemoryEngine{}
}

// Name implements Engine.
func (e *MemoryEngine) Name() string {
	return EngineMemory
}

// Load implements Engine. The slice is kept, not copied; callers must not modify it.
func (e *MemoryEngine) Load(_ context.Context, weapons []model.Weapon) error {
	e.weapons = weapons
	e.loaded = true
	return nil
}

// Distribution implements Engine.
func (e *MemoryEngine) Distribution(_ context.Context) (model.CategoryDistribution, error) {
	if !e.loaded {
		return model.CategoryDistribution{}, ErrNotLoaded
	}

	// Slice order is first-encounter order, so a stable sort by count
	// keeps earlier types ahead on ties.
	counts := make([]model.TypeCount, 0)
	pos := make(map[string]int)
	for _, w := range e.weapons {
		i, ok := pos[w.Type]
		if !ok {
			i = len(counts)
			pos[w.Type] = i
			counts = append(counts, model.TypeCount{Type: w.Type})
		}
		counts[i].Count++
	}

	slices.SortStableFunc(counts, func(a, b model.TypeCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	return model.CategoryDistribution{
		Total:  len(e.weapons),
		Unique: len(counts),
		Counts: counts,
	}, nil
}

// Top implements Engine.
func (e *MemoryEngine) Top(_ context.Context, metric Metric, limit int) (model.Ranking, error) {
	if !e.loaded {
		return model.Ranking{}, ErrNotLoaded
	}
	if _, ok := metrics[metric]; !ok {
		return model.Ranking{}, ErrUnknownMetric
	}

	sorted := slices.Clone(e.weapons)
	slices.SortStableFunc(sorted, func(a, b model.Weapon) int {
		return cmp.Compare(metric.Value(b), metric.Value(a))
	})

	if limit >= 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}

	entries := make([]model.RankedWeapon, len(sorted))
	for i, w := range sorted {
		entries[i] = model.RankedWeapon{
			Rank:  i + 1,
			Seq:   w.Seq,
			Name:  w.Name,
			Type:  w.Type,
			Value: metric.Value(w),
		}
	}

	return model.Ranking{Metric: metric.String(), Entries: entries}, nil
}

// Close implements Engine.
func (e *MemoryEngine) Close() error {
	return nil
}
