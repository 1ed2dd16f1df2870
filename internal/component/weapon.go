// internal/component/weapon.go
package component

// Weapon — экипированное оружие. Статические параметры лежат в defs.WeaponLibrary,
// здесь только изменяемое состояние.
type Weapon struct {
	DefID string
	Level int

	// CooldownTimer уменьшается на player.Stats.Cooldown за тик;
	// выстрел возвращает его к базовому значению из определения.
	CooldownTimer float64

	// Для ауры: тиков до следующего срабатывания.
	AuraTimer int
}

// LevelScaling возвращает множитель урона за уровень оружия.
func (w *Weapon) LevelScaling() float64 {
	return 1.0 + 0.25*float64(w.Level-1)
}
