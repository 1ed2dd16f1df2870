// internal/system/weapon.go
package system

import (
	"log"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/utils"
)

// firingBehavior — одна реализация на вид оружия (вместо общего switch
// внутри одной функции). Поведение читает нужные ему поля определения
// и добавляет снаряды в state.
type firingBehavior interface {
	Fire(s *entity.SimState, w *component.Weapon, def defs.WeaponDefinition, damage float64, rng *utils.PRNGService)
}

// WeaponSystem тикает перезарядку экипированного оружия и стреляет по её
// истечении. Аура — не снаряд: она срабатывает по собственному интервалу
// и перезарядки не имеет.
type WeaponSystem struct {
	state           *entity.SimState
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	behaviors       map[defs.WeaponKind]firingBehavior
}

func NewWeaponSystem(state *entity.SimState, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *WeaponSystem {
	return &WeaponSystem{
		state:           state,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		behaviors: map[defs.WeaponKind]firingBehavior{
			defs.WeaponOrbitBlades: orbitBladesBehavior{},
			defs.WeaponBurst:       burstBehavior{},
			defs.WeaponHomingBolt:  homingBoltBehavior{},
			defs.WeaponFan:         fanBehavior{},
			defs.WeaponSlash:       slashBehavior{},
			defs.WeaponMines:       minesBehavior{},
			defs.WeaponStaff:       staffBehavior{},
		},
	}
}

func (s *WeaponSystem) Update() {
	player := s.state.Player
	for _, w := range player.Weapons {
		def, ok := defs.WeaponLibrary[w.DefID]
		if !ok {
			log.Printf("WeaponSystem: weapon definition not found for ID: %s", w.DefID)
			continue
		}

		if def.Kind == defs.WeaponAura {
			s.tickAura(w, def)
			continue
		}

		if w.CooldownTimer > 0 {
			// Перезарядка непрерывная: стат cooldown напрямую сжимает темп огня.
			w.CooldownTimer -= player.Stats.Cooldown
			continue
		}

		s.FireWeapon(w, def)
		w.CooldownTimer = def.BaseCooldown
	}
}

// FireWeapon превращает оружие в конкретные снаряды. Урон каждого оружия:
// база * масштаб уровня * might * (множитель бешенства).
func (s *WeaponSystem) FireWeapon(w *component.Weapon, def defs.WeaponDefinition) {
	behavior, ok := s.behaviors[def.Kind]
	if !ok {
		return // неизвестный вид — ноль снарядов, не ошибка
	}
	behavior.Fire(s.state, w, def, s.weaponDamage(w, def), s.rng)
}

func (s *WeaponSystem) weaponDamage(w *component.Weapon, def defs.WeaponDefinition) float64 {
	damage := def.Damage * w.LevelScaling() * s.state.Player.Stats.Might
	if s.state.Player.IsFrenzy {
		damage *= config.FrenzyDamageMultiplier
	}
	return damage
}

// tickAura: раз в фиксированный интервал — урон и лёгкое выталкивание всем
// врагам в радиусе, помноженном на стат area.
func (s *WeaponSystem) tickAura(w *component.Weapon, def defs.WeaponDefinition) {
	w.AuraTimer--
	if w.AuraTimer > 0 {
		return
	}
	w.AuraTimer = def.TickInterval

	player := s.state.Player
	radius := def.Radius * player.Stats.Area
	damage := s.weaponDamage(w, def)

	for _, enemy := range s.state.Enemies {
		if enemy.Dead {
			continue
		}
		if !utils.CirclesOverlap(player.X, player.Y, radius, enemy.X, enemy.Y, enemy.Radius) {
			continue
		}
		enemy.HP -= damage
		enemy.HitFlash = config.HitFlashTicks
		dx, dy := utils.Normalize(enemy.X-player.X, enemy.Y-player.Y)
		enemy.KnockX += dx * def.Push
		enemy.KnockY += dy * def.Push
		s.eventDispatcher.Dispatch(event.Event{Type: event.DamageNumber, Data: event.VisualPayload{
			X: enemy.X, Y: enemy.Y, Amount: damage,
		}})
		if enemy.HP <= 0 && !enemy.Dead {
			enemy.Dead = true
			s.eventDispatcher.Queue(event.Event{Type: event.EnemyKilled, Data: enemy})
		}
	}
}
