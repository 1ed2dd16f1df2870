// internal/component/enemy.go
package component

import "go-survivors/internal/defs"

// ChargerPhase — фазы конечного автомата чарджера.
type ChargerPhase int

const (
	ChargerChasing ChargerPhase = iota
	ChargerPreparing
	ChargerCharging
	ChargerCooldown
)

// ChargerState существует только у врагов-чарджеров: зафиксированная цель
// рывка и таймер текущей фазы. Остальные архетипы этих полей не несут.
type ChargerState struct {
	Phase   ChargerPhase
	Timer   int
	TargetX float64 // позиция игрока, снятая в момент начала подготовки
	TargetY float64
}

// RangedState — таймер выстрела лучника. Первый интервал случайный,
// дальше период фиксированный.
type RangedState struct {
	ShotTimer int
}

// BossState — таймер ударной волны босса.
type BossState struct {
	WaveTimer int
}

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID    string // ID из enemies.json
	X, Y     float64
	Radius   float64
	Rotation float64

	Archetype defs.Archetype
	HP        float64
	MaxHP     float64
	Speed     float64
	Damage    float64
	Score     int
	IsElite   bool

	// Архетипные данные: заполнен ровно один указатель (или ни одного для ближников).
	Charger *ChargerState
	Ranged  *RangedState
	Boss    *BossState

	// Импульс отбрасывания, затухает каждый тик.
	KnockX, KnockY float64

	HitFlash int // тиков подсветки после попадания
	Dead     bool
}
