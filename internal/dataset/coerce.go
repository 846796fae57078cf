package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nao1215/weaponstats/internal/model"
)

// Placeholder is the cell value the weapon table uses for "no value".
const Placeholder = "-"

// Column names read by Coerce besides the damage aliases.
const (
	ColumnName     = "Name"
	ColumnType     = "Type"
	ColumnWeight   = "Wgt"
	ColumnCritical = "Cri"
	ColumnUpgrade  = "Upgrade"
)

// RequiredColumns must be present after normalization.
var RequiredColumns = []string{ColumnName, ColumnType, PhyAttack, ColumnWeight}

// ParseNumber converts a raw cell to a number with a fixed fallback policy:
// empty cells, the "-" placeholder, non-numeric text, NaN and infinities
// become 0, and so do negative values since damage and weight cannot be
// below zero. It never fails.
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" || s == Placeholder {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return v
}

// Coerce converts a normalized table into typed weapons, one per row, in file order.
// It fails only when a required column is missing.
func Coerce(t *Table) ([]model.Weapon, error) {
	for _, name := range RequiredColumns {
		if !t.Has(name) {
			return nil, &GeneralError{
				Op:  "coerce",
				Err: fmt.Errorf("%w: %s", ErrMissingColumn, name),
			}
		}
	}

	weapons := make([]model.Weapon, t.Len())
	for row := range t.Rows {
		text := func(name string) string {
			v, _ := t.Value(row, name)
			return strings.TrimSpace(v)
		}
		number := func(name string) float64 {
			v, _ := t.Value(row, name)
			return ParseNumber(v)
		}

		critical := number(ColumnCritical)
		if critical == 0 {
			critical = model.DefaultCritical
		}

		scaling := make([]model.Scaling, len(model.Attributes))
		for i, attr := range model.Attributes {
			scaling[i] = model.Scaling{
				Attribute: attr,
				Tier:      model.ParseTier(text(string(attr))),
			}
		}

		weapons[row] = model.Weapon{
			Seq:  row,
			Name: text(ColumnName),
			Type: text(ColumnType),
			Attack: model.Damage{
				Physical:  number(PhyAttack),
				Magic:     number(MagAttack),
				Fire:      number(FireAttack),
				Lightning: number(LightAttack),
				Holy:      number(HolyAttack),
			},
			Guard: model.Damage{
				Physical:  number(PhyGuard),
				Magic:     number(MagGuard),
				Fire:      number(FireGuard),
				Lightning: number(LightGuard),
				Holy:      number(HolyGuard),
			},
			Critical: critical,
			Weight:   number(ColumnWeight),
			Scaling:  scaling,
			Upgrade:  text(ColumnUpgrade),
		}
	}

	return weapons, nil
}
