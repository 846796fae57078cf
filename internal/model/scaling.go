package model

// Attribute is a character attribute a weapon can scale with.
type Attribute string

// Scaling attributes in the column order of the weapon table.
const (
	AttributeStr Attribute = "Str"
	AttributeDex Attribute = "Dex"
	AttributeInt Attribute = "Int"
	AttributeFai Attribute = "Fai"
	AttributeArc Attribute = "Arc"
)

// Attributes lists every scaling attribute in table order.
var Attributes = []Attribute{
	AttributeStr,
	AttributeDex,
	AttributeInt,
	AttributeFai,
	AttributeArc,
}

// Tier is a scaling grade letter.
type Tier string

// Scaling grades from strongest to none.
const (
	TierS    Tier = "S"
	TierA    Tier = "A"
	TierB    Tier = "B"
	TierC    Tier = "C"
	TierD    Tier = "D"
	TierE    Tier = "E"
	TierNone Tier = "-"
)

// ParseTier converts a raw cell into a Tier.
// Unknown or empty values are treated as no scaling.
func ParseTier(s string) Tier {
	switch t := Tier(s); t {
	case TierS, TierA, TierB, TierC, TierD, TierE:
		return t
	default:
		return TierNone
	}
}

// Scaling pairs an attribute with its grade.
type Scaling struct {
	Attribute Attribute `json:"attribute"`
	Tier      Tier      `json:"tier"`
}
