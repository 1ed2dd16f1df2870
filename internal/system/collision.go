// internal/system/collision.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/utils"
)

// CollisionSystem прогоняет все пары "снаряд-цель" за тик и контактный урон
// тел. Сущности здесь только помечаются мёртвыми; физическое удаление делает
// оркестратор после того, как все взаимодействия тика оценены.
type CollisionSystem struct {
	state           *entity.SimState
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
}

func NewCollisionSystem(state *entity.SimState, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *CollisionSystem {
	return &CollisionSystem{state: state, eventDispatcher: eventDispatcher, rng: rng}
}

func (s *CollisionSystem) Update() {
	s.resolveProjectiles()
	s.resolveContactDamage()
}

func (s *CollisionSystem) resolveProjectiles() {
	for _, proj := range s.state.Projectiles {
		if proj.Dead {
			continue
		}

		if proj.Owner == component.OwnerEnemy {
			s.hitPlayer(proj)
			continue
		}

		for id, enemy := range s.state.Enemies {
			if enemy.Dead || proj.Pierce <= 0 {
				continue
			}
			if !utils.CirclesOverlap(proj.X, proj.Y, proj.Radius, enemy.X, enemy.Y, enemy.Radius) {
				continue
			}
			// Каждый враг страдает от конкретного снаряда не больше одного раза.
			if !proj.MarkHit(id) {
				continue
			}

			damage := proj.Damage
			// Крит бросается независимо на каждое попадание, даже если
			// пробивающий снаряд задел нескольких врагов в один тик.
			crit := s.rng.Chance(config.BaseCritChance)
			if crit {
				damage *= config.CritMultiplier
			}

			enemy.HP -= damage
			enemy.HitFlash = config.HitFlashTicks
			proj.Pierce--

			// Отбрасывание фиксированной величины, направленное от снаряда.
			dx, dy := utils.Normalize(enemy.X-proj.X, enemy.Y-proj.Y)
			enemy.KnockX += dx * config.KnockbackImpulse
			enemy.KnockY += dy * config.KnockbackImpulse

			s.eventDispatcher.Dispatch(event.Event{Type: event.DamageNumber, Data: event.VisualPayload{
				X: enemy.X, Y: enemy.Y, Amount: damage, Crit: crit,
			}})
			s.eventDispatcher.Dispatch(event.Event{Type: event.HitSpark, Data: event.VisualPayload{
				X: enemy.X, Y: enemy.Y,
			}})
			if crit {
				s.eventDispatcher.Dispatch(event.Event{Type: event.HitStopRequest, Data: config.HitStopTicksCrit})
				s.eventDispatcher.Dispatch(event.Event{Type: event.ScreenShake, Data: config.CritShakePower})
			}

			if enemy.HP <= 0 {
				enemy.Dead = true
				s.eventDispatcher.Queue(event.Event{Type: event.EnemyKilled, Data: enemy})
			}
		}
	}
}

// hitPlayer: вражеский снаряд против игрока. Сначала бросок уклонения;
// при уклонении снаряд уничтожается без урона.
func (s *CollisionSystem) hitPlayer(proj *component.Projectile) {
	player := s.state.Player
	if !utils.CirclesOverlap(proj.X, proj.Y, proj.Radius, player.X, player.Y, player.Radius) {
		return
	}

	proj.Pierce = 0
	proj.Dead = true

	if s.rng.Chance(player.Stats.DodgeChance) {
		s.eventDispatcher.Dispatch(event.Event{Type: event.Dodged, Data: event.VisualPayload{
			X: player.X, Y: player.Y,
		}})
		return
	}

	player.HP -= proj.Damage
	player.HitFlash = config.HitFlashTicks
	s.eventDispatcher.Dispatch(event.Event{Type: event.DamageNumber, Data: event.VisualPayload{
		X: player.X, Y: player.Y, Amount: proj.Damage,
	}})
	s.eventDispatcher.Dispatch(event.Event{Type: event.ScreenShake, Data: config.CritShakePower})
}

// resolveContactDamage: урон от соприкосновения тел идёт периодически, не
// каждый тик, и независим от снарядов. Бросок уклонения — на каждое
// применение отдельно.
func (s *CollisionSystem) resolveContactDamage() {
	player := s.state.Player
	if player.ContactTimer > 0 {
		player.ContactTimer--
		return
	}

	touched := false
	for _, enemy := range s.state.Enemies {
		if enemy.Dead {
			continue
		}
		if !utils.CirclesOverlap(player.X, player.Y, player.Radius, enemy.X, enemy.Y, enemy.Radius) {
			continue
		}
		touched = true
		if s.rng.Chance(player.Stats.DodgeChance) {
			s.eventDispatcher.Dispatch(event.Event{Type: event.Dodged, Data: event.VisualPayload{
				X: player.X, Y: player.Y,
			}})
			continue
		}
		player.HP -= enemy.Damage
		player.HitFlash = config.HitFlashTicks
		s.eventDispatcher.Dispatch(event.Event{Type: event.DamageNumber, Data: event.VisualPayload{
			X: player.X, Y: player.Y, Amount: enemy.Damage,
		}})
	}

	if touched {
		player.ContactTimer = config.ContactHitEvery
	}
}
