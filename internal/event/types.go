// internal/event/types.go
package event

const (
	EnemyKilled   EventType = "EnemyKilled"   // Враг погиб (Data: *component.Enemy)
	EnemySpawned  EventType = "EnemySpawned"  // Враг появился
	LevelUp       EventType = "LevelUp"       // Игрок получил уровень
	GameOver      EventType = "GameOver"      // Здоровье игрока кончилось (Data: финальный счёт)
	ChestPicked   EventType = "ChestPicked"   // Подобран сундук
	FrenzyStarted EventType = "FrenzyStarted" // Порог кровавой эссенции пройден
	FrenzyEnded   EventType = "FrenzyEnded"
)

// Косметические события: рендер может их игнорировать, симуляция от них не зависит.
const (
	DamageNumber  EventType = "DamageNumber"  // Data: VisualPayload
	HitSpark      EventType = "HitSpark"      // Data: VisualPayload
	Dodged        EventType = "Dodged"        // Игрок увернулся (Data: VisualPayload)
	ScreenShake   EventType = "ScreenShake"   // Запрос тряски экрана (Data: сила, float64)
	HitStopRequest EventType = "HitStopRequest" // Стоп-кадр на N тиков (Data: int)
	ChargeWarning EventType = "ChargeWarning" // Линия-предупреждение перед рывком чарджера
	BossWarning   EventType = "BossWarning"   // Кольцо-предупреждение перед ударной волной босса
)

// VisualPayload — позиция и величина для косметических событий.
type VisualPayload struct {
	X, Y   float64
	Amount float64
	Crit   bool
}

// WarningPayload — данные предупреждения: откуда и куда смотрит линия/кольцо.
type WarningPayload struct {
	X, Y     float64
	TargetX  float64
	TargetY  float64
	Duration float64
}
