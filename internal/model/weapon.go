package model

// SomberUpgrade is the upgrade material name of weapons that upgrade to +10.
const SomberUpgrade = "Somber Smithing Stones"

// DefaultCritical is the critical multiplier used when a row has none.
const DefaultCritical = 100

// Damage holds the five damage values of one block (attack or guard).
type Damage struct {
	Physical  float64 `json:"physical"`
	Magic     float64 `json:"magic"`
	Fire      float64 `json:"fire"`
	Lightning float64 `json:"lightning"`
	Holy      float64 `json:"holy"`
}

// Total returns the sum of all five damage values.
func (d Damage) Total() float64 {
	return d.Physical + d.Magic + d.Fire + d.Lightning + d.Holy
}

// Weapon is a single weapon record.
//
// Seq is the 0-based position of the row in the source file. Every ranking
// uses it as the tie-break, so equal values keep their file order.
type Weapon struct {
	Seq      int       `json:"seq"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	Attack   Damage    `json:"attack"`
	Guard    Damage    `json:"guard"`
	Critical float64   `json:"critical"`
	Weight   float64   `json:"weight"`
	Scaling  []Scaling `json:"scaling,omitempty"`
	Upgrade  string    `json:"upgrade,omitempty"`
}

// IsSomber reports whether the weapon upgrades with somber smithing stones.
func (w Weapon) IsSomber() bool {
	return w.Upgrade == SomberUpgrade
}

// MaxUpgradeLevel returns +10 for somber weapons and +25 otherwise.
func (w Weapon) MaxUpgradeLevel() int {
	if w.IsSomber() {
		return 10
	}
	return 25
}
