package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeapon_IsSomber(t *testing.T) {
	t.Parallel()

	somber := Weapon{Name: "Moonveil", Upgrade: SomberUpgrade}
	regular := Weapon{Name: "Longsword", Upgrade: "Smithing Stones"}

	assert.True(t, somber.IsSomber())
	assert.Equal(t, 10, somber.MaxUpgradeLevel())
	assert.False(t, regular.IsSomber())
	assert.Equal(t, 25, regular.MaxUpgradeLevel())
}

func TestDamage_Total(t *testing.T) {
	t.Parallel()

	d := Damage{Physical: 100, Magic: 20.5, Fire: 0, Lightning: 4, Holy: 1}
	assert.InDelta(t, 125.5, d.Total(), 1e-9)
}

func TestParseTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Tier
	}{
		{in: "S", want: TierS},
		{in: "A", want: TierA},
		{in: "E", want: TierE},
		{in: "-", want: TierNone},
		{in: "", want: TierNone},
		{in: "s", want: TierNone},
		{in: "Z", want: TierNone},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseTier(tt.in))
		})
	}
}
