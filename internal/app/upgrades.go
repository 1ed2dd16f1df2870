// internal/app/upgrades.go
package app

import (
	"fmt"

	"go-survivors/internal/component"
	"go-survivors/internal/defs"
	"go-survivors/internal/utils"
)

// UpgradeKind — что именно меняет выбранная награда.
type UpgradeKind int

const (
	UpgradeNewWeapon UpgradeKind = iota
	UpgradeWeaponLevel
	UpgradeStat
)

// StatKind — имя поля статов игрока, которое усиливает награда.
type StatKind string

const (
	StatMight            StatKind = "might"
	StatCooldown         StatKind = "cooldown"
	StatArea             StatKind = "area"
	StatSpeed            StatKind = "speed"
	StatMagnet           StatKind = "magnet"
	StatDodge            StatKind = "dodge"
	StatFrenzyEfficiency StatKind = "frenzy_efficiency"
	StatExp              StatKind = "exp"
	StatMaxHP            StatKind = "max_hp"
)

// UpgradeChoice — один вариант в экране выбора награды.
type UpgradeChoice struct {
	Kind     UpgradeKind
	WeaponID string
	Stat     StatKind
	Amount   float64
	Label    string
}

var statPool = []UpgradeChoice{
	{Kind: UpgradeStat, Stat: StatMight, Amount: 0.10, Label: "Might +10%"},
	{Kind: UpgradeStat, Stat: StatCooldown, Amount: 0.10, Label: "Haste +10%"},
	{Kind: UpgradeStat, Stat: StatArea, Amount: 0.10, Label: "Area +10%"},
	{Kind: UpgradeStat, Stat: StatSpeed, Amount: 0.08, Label: "Swiftness +8%"},
	{Kind: UpgradeStat, Stat: StatMagnet, Amount: 0.20, Label: "Magnet +20%"},
	{Kind: UpgradeStat, Stat: StatDodge, Amount: 0.03, Label: "Dodge +3%"},
	{Kind: UpgradeStat, Stat: StatFrenzyEfficiency, Amount: 0.15, Label: "Frenzy Efficiency +15%"},
	{Kind: UpgradeStat, Stat: StatExp, Amount: 0.10, Label: "Greed +10%"},
	{Kind: UpgradeStat, Stat: StatMaxHP, Amount: 10, Label: "Vitality +10 HP"},
}

// GenerateUpgradeChoices собирает варианты: прокачка экипированного оружия,
// новое оружие из библиотеки, усиление стата. Без повторов внутри тройки.
func (g *Game) GenerateUpgradeChoices() []UpgradeChoice {
	pool := make([]UpgradeChoice, 0, len(statPool)+len(defs.WeaponLibrary))

	equipped := make(map[string]bool)
	for _, w := range g.State.Player.Weapons {
		equipped[w.DefID] = true
		def := defs.WeaponLibrary[w.DefID]
		pool = append(pool, UpgradeChoice{
			Kind:     UpgradeWeaponLevel,
			WeaponID: w.DefID,
			Label:    fmt.Sprintf("%s Lv.%d", def.Name, w.Level+1),
		})
	}
	for id, def := range defs.WeaponLibrary {
		if !equipped[id] {
			pool = append(pool, UpgradeChoice{
				Kind:     UpgradeNewWeapon,
				WeaponID: id,
				Label:    "New: " + def.Name,
			})
		}
	}
	pool = append(pool, statPool...)

	// Тянем без возврата.
	choices := make([]UpgradeChoice, 0, 3)
	for len(choices) < 3 && len(pool) > 0 {
		i := g.Rng.Intn(len(pool))
		choices = append(choices, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}
	return choices
}

// ApplyUpgrade исполняет внешнюю команду «награда выбрана» и снимает паузу
// ожидания. Индекс вне диапазона игнорируется — выбор остаётся открытым.
func (g *Game) ApplyUpgrade(index int) {
	if index < 0 || index >= len(g.pendingOffers) {
		return
	}
	choice := g.pendingOffers[index]
	g.pendingOffers = nil

	player := g.State.Player
	switch choice.Kind {
	case UpgradeNewWeapon:
		player.Weapons = append(player.Weapons, &component.Weapon{
			DefID: choice.WeaponID,
			Level: 1,
		})
	case UpgradeWeaponLevel:
		if w, ok := g.EquippedWeapon(choice.WeaponID); ok {
			w.Level++
		}
	case UpgradeStat:
		applyStat(player, choice.Stat, choice.Amount)
	}
}

func applyStat(player *component.Player, stat StatKind, amount float64) {
	switch stat {
	case StatMight:
		player.Stats.Might += amount
	case StatCooldown:
		player.Stats.Cooldown += amount
	case StatArea:
		player.Stats.Area += amount
	case StatSpeed:
		player.Stats.Speed += amount
	case StatMagnet:
		player.Stats.Magnet += amount
	case StatDodge:
		player.Stats.DodgeChance = utils.Clamp(player.Stats.DodgeChance+amount, 0, 0.75)
	case StatFrenzyEfficiency:
		player.Stats.FrenzyEfficiency += amount
	case StatExp:
		player.Stats.ExpMultiplier += amount
	case StatMaxHP:
		player.MaxHP += amount
		player.HP = utils.Clamp(player.HP+amount, 0, player.MaxHP)
	}
}
