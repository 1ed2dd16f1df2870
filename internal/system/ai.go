// internal/system/ai.go
package system

import (
	"math"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/utils"
)

// AISystem двигает врагов и порождает их снаряды. Поведение выбирается по
// архетипу; полный конечный автомат есть только у чарджера, остальные
// архетипы — безсостоянные реакции на позицию игрока.
type AISystem struct {
	state           *entity.SimState
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
}

func NewAISystem(state *entity.SimState, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *AISystem {
	return &AISystem{state: state, eventDispatcher: eventDispatcher, rng: rng}
}

// Update вызывает UpdateEnemy для каждого живого врага.
func (s *AISystem) Update() {
	for _, enemy := range s.state.Enemies {
		if enemy.Dead {
			continue
		}
		s.UpdateEnemy(enemy)
	}
}

// UpdateEnemy мутирует позицию и состояние врага и может добавить снаряды
// в общее хранилище, а косметические предупреждения — в диспетчер.
func (s *AISystem) UpdateEnemy(enemy *component.Enemy) {
	// Затухание импульса отбрасывания, общий для всех архетипов.
	enemy.X += enemy.KnockX
	enemy.Y += enemy.KnockY
	enemy.KnockX *= config.KnockbackDamping
	enemy.KnockY *= config.KnockbackDamping

	if enemy.HitFlash > 0 {
		enemy.HitFlash--
	}

	switch enemy.Archetype {
	case defs.ArchetypeCharger:
		s.updateCharger(enemy)
	case defs.ArchetypeRanged:
		s.updateArcher(enemy)
	case defs.ArchetypeBoss:
		s.updateBoss(enemy)
	default:
		s.moveToward(enemy, s.state.Player.X, s.state.Player.Y, enemy.Speed)
	}
}

// moveToward двигает врага к точке и разворачивает его по горизонтальному знаку.
func (s *AISystem) moveToward(enemy *component.Enemy, tx, ty, speed float64) {
	dx, dy := utils.Normalize(tx-enemy.X, ty-enemy.Y)
	enemy.X += dx * speed
	enemy.Y += dy * speed
	if dx < 0 {
		enemy.Rotation = math.Pi
	} else if dx > 0 {
		enemy.Rotation = 0
	}
}

// updateCharger: CHASING -> PREPARING -> CHARGING -> COOLDOWN -> CHASING.
// Других путей между фазами нет.
func (s *AISystem) updateCharger(enemy *component.Enemy) {
	st := enemy.Charger
	player := s.state.Player

	switch st.Phase {
	case component.ChargerChasing:
		s.moveToward(enemy, player.X, player.Y, enemy.Speed)
		dist := utils.Dist(enemy.X, enemy.Y, player.X, player.Y)
		if dist > config.ChargerTriggerNear && dist < config.ChargerTriggerFar &&
			s.rng.Chance(config.ChargerTriggerChance) {
			st.Phase = component.ChargerPreparing
			st.Timer = config.ChargerPrepareTicks
			// Цель фиксируется сейчас; во время рывка она не перенацеливается.
			st.TargetX = player.X
			st.TargetY = player.Y
			s.eventDispatcher.Dispatch(event.Event{Type: event.ChargeWarning, Data: event.WarningPayload{
				X: enemy.X, Y: enemy.Y,
				TargetX: st.TargetX, TargetY: st.TargetY,
				Duration: config.ChargerPrepareTicks,
			}})
		}
	case component.ChargerPreparing:
		// Стоит на месте (дрожь — забота рендера), отсчитывает таймер.
		st.Timer--
		if st.Timer <= 0 {
			st.Phase = component.ChargerCharging
			st.Timer = config.ChargerChargeTicks
		}
	case component.ChargerCharging:
		s.moveToward(enemy, st.TargetX, st.TargetY, enemy.Speed*config.ChargerChargeSpeed)
		st.Timer--
		if st.Timer <= 0 {
			st.Phase = component.ChargerCooldown
			st.Timer = config.ChargerCooldownTicks
		}
	case component.ChargerCooldown:
		st.Timer--
		if st.Timer <= 0 {
			st.Phase = component.ChargerChasing
		}
	}
}

// updateArcher: три полосы дистанции — отступает, стрейфит, наступает.
// Стрельба идёт по своему таймеру независимо от движения.
func (s *AISystem) updateArcher(enemy *component.Enemy) {
	player := s.state.Player
	dist := utils.Dist(enemy.X, enemy.Y, player.X, player.Y)

	switch {
	case dist < config.ArcherNearBand:
		// Слишком близко: бежим прямо от игрока.
		s.moveToward(enemy, 2*enemy.X-player.X, 2*enemy.Y-player.Y, enemy.Speed)
	case dist > config.ArcherFarBand:
		s.moveToward(enemy, player.X, player.Y, enemy.Speed)
	default:
		// Средняя полоса: движение перпендикулярно направлению на игрока.
		dx, dy := utils.Normalize(player.X-enemy.X, player.Y-enemy.Y)
		enemy.X += -dy * enemy.Speed * config.ArcherStrafeSpeed
		enemy.Y += dx * enemy.Speed * config.ArcherStrafeSpeed
	}

	enemy.Ranged.ShotTimer--
	if enemy.Ranged.ShotTimer <= 0 {
		enemy.Ranged.ShotTimer = config.ArcherShotPeriod
		s.fireArrow(enemy)
	}
}

func (s *AISystem) fireArrow(enemy *component.Enemy) {
	player := s.state.Player
	dx, dy := utils.Normalize(player.X-enemy.X, player.Y-enemy.Y)
	def := defs.EnemyLibrary[enemy.DefID]
	s.state.AddProjectile(&component.Projectile{
		X:        enemy.X,
		Y:        enemy.Y,
		VelX:     dx * config.ArcherShotSpeed,
		VelY:     dy * config.ArcherShotSpeed,
		Radius:   config.ArrowRadius,
		Damage:   enemy.Damage,
		Duration: config.ArrowDuration,
		Pierce:   1,
		Owner:    component.OwnerEnemy,
		Visuals:  def.Visuals,
		Trail:    true,
	})
}

// updateBoss: всегда наступает; по таймеру — мгновенная ударная волна
// вокруг себя плюс косметическое кольцо-предупреждение. После волны таймер
// сбрасывается на длинный период.
func (s *AISystem) updateBoss(enemy *component.Enemy) {
	player := s.state.Player
	s.moveToward(enemy, player.X, player.Y, enemy.Speed)

	enemy.Boss.WaveTimer--
	if enemy.Boss.WaveTimer > 0 {
		return
	}
	enemy.Boss.WaveTimer = config.BossWavePeriod

	s.state.AddProjectile(&component.Projectile{
		X:        enemy.X,
		Y:        enemy.Y,
		Radius:   config.BossWaveRadius,
		Damage:   enemy.Damage,
		Duration: config.BossWaveTicks,
		Pierce:   100000,
		Owner:    component.OwnerEnemy,
		Visuals:  defs.EnemyLibrary[enemy.DefID].Visuals,
	})
	s.eventDispatcher.Dispatch(event.Event{Type: event.BossWarning, Data: event.WarningPayload{
		X: enemy.X, Y: enemy.Y, Duration: config.BossWarningTicks,
	}})
	s.eventDispatcher.Dispatch(event.Event{Type: event.ScreenShake, Data: config.BossShakePower})
}
