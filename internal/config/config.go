// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900

	// Мир — ограниченный прямоугольник, позиции непрерывные.
	WorldWidth  = 1600.0
	WorldHeight = 1200.0

	// Снаряд живёт ещё немного за краем мира, потом удаляется.
	ProjectileDespawnMargin = 100.0

	TicksPerSecond = 60
)

// --- Игрок ---
const (
	PlayerRadius    = 12.0
	PlayerMaxHP     = 100.0
	PlayerSpeed     = 3.2 // units per tick
	PlayerMagnet    = 90.0
	PlayerDodge     = 0.0
	BaseCritChance  = 0.10
	CritMultiplier  = 2.0
	PickupRegenHP   = 1.0 // лечение за каждую подобранную сферу
	ContactHitEvery = 30  // тиков между ударами от соприкосновения с врагом

	DashDuration   = 10 // тиков
	DashMultiplier = 2.5
	DashCooldown   = 90 // тиков
)

// --- Прогрессия ---
const (
	FirstLevelExp       = 10.0
	LevelExpGrowth      = 1.4 // множитель к порогу следующего уровня
	LevelExpFlatBonus   = 10.0
	UpgradeChoicesCount = 3
)

// CalculateXPForNextLevel возвращает порог опыта после достижения уровня level.
// Формула мультипликативно-аддитивная: каждый уровень дороже предыдущего.
func CalculateXPForNextLevel(current float64) float64 {
	return current*LevelExpGrowth + LevelExpFlatBonus
}

// --- Кровавая эссенция и бешенство ---
const (
	MaxBloodEssence      = 100.0
	FrenzyThreshold      = 100.0 // активация при достижении максимума
	FrenzyDrainPerTick   = 0.25  // делится на frenzyEfficiency игрока
	FrenzyHPDrainFrac    = 0.005 // доля maxHp за один период
	FrenzyHPDrainEvery   = 30    // тиков
	FrenzySpeedMultiplier = 1.3
	FrenzyDamageMultiplier = 1.5
	EssencePerOrb        = 4.0
)

// --- Спавнер ---
const (
	SpawnMinDistance  = 420.0 // минимальный радиус появления вокруг игрока
	SpawnJitter       = 120.0
	BaseSpawnPeriod   = 90 // тиков между спавнами в начале игры
	MinSpawnPeriod    = 18
	SpawnPeriodPerScore = 0.12 // на сколько тиков сокращается период за единицу счёта
	MaxEnemies        = 60

	BossScoreStep    = 500 // босс появляется на каждом кратном счёте
	EliteMinScore    = 80
	EliteSpawnPeriod = 900 // тиков

	// Кумулятивные вероятностные полосы выбора архетипа.
	ChargerChance     = 0.05
	RangedChance      = 0.05
	MediumMeleeChance = 0.20
	// остаток — слабые ближники

	EliteHPMultiplier     = 4.0
	EliteDamageMultiplier = 1.5
	EliteRadiusMultiplier = 1.3
	EliteSpeedMultiplier  = 1.1
)

// --- AI ---
const (
	ChargerTriggerNear   = 120.0 // полоса дистанции, в которой чарджер может начать подготовку
	ChargerTriggerFar    = 260.0
	ChargerTriggerChance = 0.02 // проверяется каждый тик внутри полосы
	ChargerPrepareTicks  = 45
	ChargerChargeTicks   = 30
	ChargerCooldownTicks = 40
	ChargerChargeSpeed   = 6.0 // множитель к базовой скорости

	ArcherNearBand    = 140.0
	ArcherFarBand     = 260.0
	ArcherStrafeSpeed = 0.5 // множитель к базовой скорости в средней полосе
	ArcherShotMin     = 90  // первый выстрел через случайное число тиков из [min, max)
	ArcherShotMax     = 150
	ArcherShotPeriod  = 120
	ArcherShotSpeed   = 3.5
	ArrowRadius       = 6.0
	ArrowDuration     = 180

	BossFirstWavePeriod = 120 // тиков до первой ударной волны
	BossWavePeriod      = 240 // последующий, более длинный период
	BossWaveRadius      = 150.0
	BossWaveTicks       = 6
	BossWarningTicks    = 30.0
)

// --- Бой ---
const (
	KnockbackImpulse  = 6.0
	KnockbackDamping  = 0.8 // затухание импульса за тик
	HitFlashTicks     = 6
	HitStopTicksCrit  = 4 // стоп-кадр при крите
	CritShakePower    = 4.0
	BossShakePower    = 8.0
)

// --- Дропы ---
const (
	OrbRadius      = 6.0
	ChestRadius    = 14.0
	OrbMagnetSpeed = 6.0 // скорость притягивания сферы к игроку
	ChestEssence   = 25.0
)

// Цвета используются только фронтендом; симуляция их не читает.
var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	PlayerColor     = color.RGBA{70, 130, 180, 255}
	FrenzyColor     = color.RGBA{220, 60, 60, 255}
	HPBarColor      = color.RGBA{50, 205, 50, 255}
	EssenceBarColor = color.RGBA{178, 34, 34, 255}
	ExpBarColor     = color.RGBA{255, 215, 0, 255}
	OrbColor        = color.RGBA{100, 220, 255, 255}
	ChestColor      = color.RGBA{255, 215, 0, 255}
	EliteStroke     = color.RGBA{255, 255, 255, 255}
	WarningColor    = color.RGBA{255, 80, 80, 200}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
)
