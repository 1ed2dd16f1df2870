// internal/component/player.go
package component

// Stats — блок множителей игрока. Единица = без бонуса.
type Stats struct {
	Might            float64 // множитель урона всего оружия
	Cooldown         float64 // скорость отката: таймер оружия уменьшается на эту величину за тик
	Area             float64 // множитель радиусов/орбит
	Speed            float64 // множитель скорости передвижения
	Magnet           float64 // множитель радиуса притяжения сфер
	DodgeChance      float64 // шанс увернуться от урона, [0, 1]
	FrenzyEfficiency float64 // делитель скорости расхода эссенции
	ExpMultiplier    float64 // множитель получаемого опыта
}

// Player — единственная сущность игрока на сессию.
// Внешний слой (HUD) читает эту структуру, но никогда не пишет в неё.
type Player struct {
	X, Y     float64
	Radius   float64
	Rotation float64 // направление взгляда, радианы

	HP    float64
	MaxHP float64

	Exp          float64
	Level        int
	NextLevelExp float64

	BloodEssence    float64
	MaxBloodEssence float64
	IsFrenzy        bool
	FrenzyTimer     int // тиков в бешенстве, для периодического расхода hp

	Stats   Stats
	Weapons []*Weapon

	DashTimer    int // оставшиеся тики рывка
	DashCooldown int // тиков до следующего рывка

	ContactTimer int // тиков до следующего контактного урона
	HitFlash     int
}
