package dataset

import "log/slog"

// Aliases maps a header text to the names of its successive occurrences.
// The Nth occurrence of the header is renamed to the Nth entry.
type Aliases map[string][]string

// Semantic column names produced by DefaultAliases.
const (
	PhyAttack   = "Phy_Attack"
	MagAttack   = "Mag_Attack"
	FireAttack  = "Fire_Attack"
	LightAttack = "Light_Attack"
	HolyAttack  = "Holy_Attack"
	PhyGuard    = "Phy_Guard"
	MagGuard    = "Mag_Guard"
	FireGuard   = "Fire_Guard"
	LightGuard  = "Light_Guard"
	HolyGuard   = "Holy_Guard"
)

// DefaultAliases returns the alias list of the weapon table: the first block
// of damage headers is attack, the second block is guard.
func DefaultAliases() Aliases {
	return Aliases{
		"Phy": {PhyAttack, PhyGuard},
		"Mag": {MagAttack, MagGuard},
		"Fir": {FireAttack, FireGuard},
		"Lit": {LightAttack, LightGuard},
		"Hol": {HolyAttack, HolyGuard},
	}
}

// Lookup returns the alias for the given header occurrence.
func (a Aliases) Lookup(header string, occurrence int) (string, bool) {
	names, ok := a[header]
	if !ok || occurrence < 1 || occurrence > len(names) {
		return "", false
	}
	return names[occurrence-1], true
}

// Normalize renames the columns of t in place using aliases.
// Columns without an alias keep their name. Values and row count are untouched.
func Normalize(t *Table, aliases Aliases, logger *slog.Logger) *Table {
	if logger == nil {
		logger = slog.Default()
	}

	for i, c := range t.Columns {
		alias, ok := aliases.Lookup(c.Header, c.Occurrence)
		if !ok {
			continue
		}
		logger.Debug("column renamed",
			"header", c.Header,
			"occurrence", c.Occurrence,
			"from", c.Name,
			"to", alias,
		)
		t.Columns[i].Name = alias
	}
	t.reindex()

	return t
}
