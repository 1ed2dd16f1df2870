// internal/system/spawn.go
package system

import (
	"log"
	"math"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/types"
	"go-survivors/internal/utils"
)

// SpawnSystem решает, когда, где и какой враг появится.
type SpawnSystem struct {
	state           *entity.SimState
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService

	spawnTimer int
	eliteTimer int
	nextBossAt int
}

func NewSpawnSystem(state *entity.SimState, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{
		state:           state,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		eliteTimer:      config.EliteSpawnPeriod,
		nextBossAt:      config.BossScoreStep,
	}
}

// Update вызывается раз в тик. За тик происходит не больше одного обычного
// спавна: период сокращается с ростом счёта, но не ниже минимума.
func (s *SpawnSystem) Update() {
	s.spawnTimer++
	if s.spawnTimer >= s.currentPeriod() && len(s.state.Enemies) < config.MaxEnemies {
		s.spawnTimer = 0
		id := s.SpawnEnemy("", false)
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
	}

	// Элитные враги идут по своему длинному периоду, когда счёт уже набран.
	if s.state.Score >= config.EliteMinScore {
		s.eliteTimer--
		if s.eliteTimer <= 0 {
			s.eliteTimer = config.EliteSpawnPeriod
			s.SpawnEnemy("", true)
		}
	}

	// Босс: по кратному счёту и только один живой одновременно.
	if s.state.Score >= s.nextBossAt && !s.state.BossAlive {
		s.nextBossAt += config.BossScoreStep
		s.SpawnEnemy("ENEMY_BOSS", false)
		s.state.BossAlive = true
	}
}

func (s *SpawnSystem) currentPeriod() int {
	period := config.BaseSpawnPeriod - int(float64(s.state.Score)*config.SpawnPeriodPerScore)
	if period < config.MinSpawnPeriod {
		period = config.MinSpawnPeriod
	}
	return period
}

// SpawnEnemy создаёт врага на случайном угле вокруг игрока, на минимальной
// дистанции появления плюс разброс, с зажимом в границы мира.
// forcedID выбирает конкретное определение; пустая строка — взвешенный выбор.
// Элитный модификатор к боссу никогда не применяется.
func (s *SpawnSystem) SpawnEnemy(forcedID string, isElite bool) types.EntityID {
	defID := forcedID
	if defID == "" {
		defID = s.rollArchetype()
	}

	def, ok := defs.EnemyLibrary[defID]
	if !ok {
		log.Printf("SpawnSystem: enemy definition not found for ID: %s", defID)
		return 0
	}
	if def.Archetype == defs.ArchetypeBoss {
		isElite = false
	}

	player := s.state.Player
	angle := s.rng.Angle()
	dist := config.SpawnMinDistance + s.rng.Float64()*config.SpawnJitter
	x := utils.Clamp(player.X+math.Cos(angle)*dist, 0, config.WorldWidth)
	y := utils.Clamp(player.Y+math.Sin(angle)*dist, 0, config.WorldHeight)

	e := &component.Enemy{
		DefID:     defID,
		X:         x,
		Y:         y,
		Radius:    def.Radius,
		Archetype: def.Archetype,
		HP:        def.Health,
		MaxHP:     def.Health,
		Speed:     def.Speed,
		Damage:    def.Damage,
		Score:     def.Score,
		IsElite:   isElite,
	}

	if isElite {
		e.HP *= config.EliteHPMultiplier
		e.MaxHP = e.HP
		e.Damage *= config.EliteDamageMultiplier
		e.Radius *= config.EliteRadiusMultiplier
		e.Speed *= config.EliteSpeedMultiplier
	}

	switch def.Archetype {
	case defs.ArchetypeCharger:
		e.Charger = &component.ChargerState{Phase: component.ChargerChasing}
	case defs.ArchetypeRanged:
		first := config.ArcherShotMin + s.rng.Intn(config.ArcherShotMax-config.ArcherShotMin)
		e.Ranged = &component.RangedState{ShotTimer: first}
	case defs.ArchetypeBoss:
		e.Boss = &component.BossState{WaveTimer: config.BossFirstWavePeriod}
	}

	return s.state.AddEnemy(e)
}

// rollArchetype — фиксированные кумулятивные полосы вероятностей:
// верхние 5% чарджер, следующие 5% лучник, следующие 20% средний ближник,
// остальное — слабый ближник.
func (s *SpawnSystem) rollArchetype() string {
	r := s.rng.Float64()
	switch {
	case r < config.ChargerChance:
		return "ENEMY_CHARGER"
	case r < config.ChargerChance+config.RangedChance:
		return "ENEMY_ARCHER"
	case r < config.ChargerChance+config.RangedChance+config.MediumMeleeChance:
		return "ENEMY_BRUTE"
	default:
		return "ENEMY_SHAMBLER"
	}
}

// OnEvent: спавнер следит за гибелью босса, чтобы снять флаг уникальности.
func (s *SpawnSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	if enemy, ok := e.Data.(*component.Enemy); ok && enemy.Archetype == defs.ArchetypeBoss {
		s.state.BossAlive = false
	}
}
