package model

import "strings"

// DocumentDamage is the damage block of an exported weapon document.
// It carries the attack values only; guard values are not exported.
type DocumentDamage struct {
	Physical  float64 `json:"physical"`
	Magic     float64 `json:"magic"`
	Fire      float64 `json:"fire"`
	Lightning float64 `json:"lightning"`
	Holy      float64 `json:"holy"`
	Critical  float64 `json:"critical"`
	Total     float64 `json:"total"`
}

// WeaponDocument is the JSON shape consumed by the weapon database of the
// companion web application.
type WeaponDocument struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Weight   float64        `json:"weight"`
	Damage   DocumentDamage `json:"damage"`
	Scaling  []Scaling      `json:"scaling"`
	IsSomber bool           `json:"isSomber"`

	// MaxUpgrade is 10 for somber weapons and 25 for the rest.
	MaxUpgrade int `json:"maxUpgrade"`
}

// NewWeaponDocument converts a weapon into its exported document.
func NewWeaponDocument(w Weapon) WeaponDocument {
	scaling := w.Scaling
	if scaling == nil {
		scaling = []Scaling{}
	}

	return WeaponDocument{
		ID:       Slug(w.Name),
		Name:     w.Name,
		Category: w.Type,
		Weight:   w.Weight,
		Damage: DocumentDamage{
			Physical:  w.Attack.Physical,
			Magic:     w.Attack.Magic,
			Fire:      w.Attack.Fire,
			Lightning: w.Attack.Lightning,
			Holy:      w.Attack.Holy,
			Critical:  w.Critical,
			Total:     w.Attack.Total(),
		},
		Scaling:    scaling,
		IsSomber:   w.IsSomber(),
		MaxUpgrade: w.MaxUpgradeLevel(),
	}
}

// Slug lowercases name and drops everything except ASCII letters and digits,
// so "Bloodhound's Fang" becomes "bloodhoundsfang".
func Slug(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
