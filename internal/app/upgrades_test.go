package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
)

func TestGenerateUpgradeChoices(t *testing.T) {
	g := newTestGame(t)

	for i := 0; i < 50; i++ {
		choices := g.GenerateUpgradeChoices()
		require.Len(t, choices, config.UpgradeChoicesCount)

		// Без повторов внутри одной тройки.
		seen := map[string]bool{}
		for _, c := range choices {
			key := c.Label
			assert.False(t, seen[key], "дубликат в предложении: %s", key)
			seen[key] = true
		}
	}
}

func TestApplyNewWeapon(t *testing.T) {
	g := newTestGame(t)
	g.pendingOffers = []UpgradeChoice{
		{Kind: UpgradeNewWeapon, WeaponID: "WEAPON_FAN"},
	}

	g.ApplyUpgrade(0)
	w, ok := g.EquippedWeapon("WEAPON_FAN")
	require.True(t, ok)
	assert.Equal(t, 1, w.Level)
	assert.False(t, g.IsSelectionPending())
}

func TestApplyWeaponLevel(t *testing.T) {
	g := newTestGame(t)
	g.pendingOffers = []UpgradeChoice{
		{Kind: UpgradeWeaponLevel, WeaponID: "WEAPON_BOLT"},
	}

	g.ApplyUpgrade(0)
	w, _ := g.EquippedWeapon("WEAPON_BOLT")
	assert.Equal(t, 2, w.Level)
}

func TestApplyStatUpgrades(t *testing.T) {
	g := newTestGame(t)
	player := g.State.Player

	t.Run("might", func(t *testing.T) {
		applyStat(player, StatMight, 0.10)
		assert.InDelta(t, 1.10, player.Stats.Might, 1e-9)
	})

	t.Run("dodge clamped", func(t *testing.T) {
		applyStat(player, StatDodge, 0.5)
		applyStat(player, StatDodge, 0.5)
		assert.Equal(t, 0.75, player.Stats.DodgeChance, "уклонение упирается в потолок")
	})

	t.Run("max hp heals too", func(t *testing.T) {
		player.HP = 50
		applyStat(player, StatMaxHP, 10)
		assert.Equal(t, config.PlayerMaxHP+10, player.MaxHP)
		assert.Equal(t, 60.0, player.HP)
	})
}

func TestApplyUpgradeOutOfRange(t *testing.T) {
	g := newTestGame(t)
	g.pendingOffers = []UpgradeChoice{
		{Kind: UpgradeStat, Stat: StatMight, Amount: 0.10},
	}

	g.ApplyUpgrade(-1)
	assert.True(t, g.IsSelectionPending())
	g.ApplyUpgrade(1)
	assert.True(t, g.IsSelectionPending())
	assert.Equal(t, 1.0, g.State.Player.Stats.Might, "мимо диапазона — ничего не применилось")
}

func TestWeaponLevelOfferTargetsEquipped(t *testing.T) {
	g := newTestGame(t)
	g.State.Player.Weapons = append(g.State.Player.Weapons, &component.Weapon{DefID: "WEAPON_STAFF", Level: 4})

	found := false
	for i := 0; i < 100 && !found; i++ {
		for _, c := range g.GenerateUpgradeChoices() {
			if c.Kind == UpgradeWeaponLevel && c.WeaponID == "WEAPON_STAFF" {
				assert.Contains(t, c.Label, "Lv.5")
				found = true
			}
		}
	}
	assert.True(t, found, "прокачка экипированного посоха должна встречаться среди предложений")
}
