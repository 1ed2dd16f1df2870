// internal/system/weapon_behaviors.go
package system

import (
	"math"

	"go-survivors/internal/component"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/types"
	"go-survivors/internal/utils"
)

// nearestEnemy ищет ближайшего живого врага в радиусе поиска от точки.
// Отсутствие цели — нормальный исход, не ошибка.
func nearestEnemy(s *entity.SimState, x, y, radius float64) (types.EntityID, *component.Enemy, bool) {
	var bestID types.EntityID
	var best *component.Enemy
	bestDistSq := radius * radius
	for id, enemy := range s.Enemies {
		if enemy.Dead {
			continue
		}
		d := utils.DistSq(x, y, enemy.X, enemy.Y)
		if d <= bestDistSq {
			bestDistSq = d
			bestID = id
			best = enemy
		}
	}
	return bestID, best, best != nil
}

// headingOrFacing возвращает единичное направление на ближайшего врага в
// радиусе, либо направление взгляда игрока, если врагов рядом нет.
func headingOrFacing(s *entity.SimState, radius float64) (float64, float64) {
	player := s.Player
	if _, enemy, ok := nearestEnemy(s, player.X, player.Y, radius); ok {
		return utils.Normalize(enemy.X-player.X, enemy.Y-player.Y)
	}
	return math.Cos(player.Rotation), math.Sin(player.Rotation)
}

// --- Орбитальные клинки ---

type orbitBladesBehavior struct{}

func (orbitBladesBehavior) Fire(s *entity.SimState, w *component.Weapon, def defs.WeaponDefinition, damage float64, rng *utils.PRNGService) {
	// Число клинков растёт с уровнем оружия, расставлены равномерно по кругу.
	count := def.Count + (w.Level - 1)
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		s.AddProjectile(&component.Projectile{
			Radius:   def.Radius,
			Damage:   damage,
			Duration: def.Duration,
			Pierce:   def.Pierce,
			Owner:    component.OwnerPlayer,
			Orbit: &component.Orbit{
				Angle:    angle,
				Distance: def.OrbitRadius * s.Player.Stats.Area,
				Rate:     def.AngularRate,
			},
			Visuals: def.Visuals,
		})
	}
}

// --- Залп в случайном направлении ---

type burstBehavior struct{}

func (burstBehavior) Fire(s *entity.SimState, w *component.Weapon, def defs.WeaponDefinition, damage float64, rng *utils.PRNGService) {
	angle := rng.Angle()
	player := s.Player
	s.AddProjectile(&component.Projectile{
		X:        player.X,
		Y:        player.Y,
		VelX:     math.Cos(angle) * def.Speed,
		VelY:     math.Sin(angle) * def.Speed,
		Radius:   def.Radius * player.Stats.Area,
		Damage:   damage,
		Duration: def.Duration,
		Pierce:   def.Pierce,
		Owner:    component.OwnerPlayer,
		Visuals:  def.Visuals,
		Trail:    true,
	})
}

// --- Самонаводящийся болт ---

type homingBoltBehavior struct{}

func (homingBoltBehavior) Fire(s *entity.SimState, w *component.Weapon, def defs.WeaponDefinition, damage float64, rng *utils.PRNGService) {
	player := s.Player
	dx, dy := math.Cos(player.Rotation), math.Sin(player.Rotation)

	proj := &component.Projectile{
		X:        player.X,
		Y:        player.Y,
		Radius:   def.Radius,
		Damage:   damage,
		Duration: def.Duration,
		Pierce:   def.Pierce,
		Owner:    component.OwnerPlayer,
		Visuals:  def.Visuals,
		Trail:    true,
	}

	// Цель захватывается один раз при выстреле. Если рядом никого,
	// болт просто летит по направлению взгляда без наведения.
	if id, enemy, ok := nearestEnemy(s, player.X, player.Y, def.SearchRadius); ok {
		dx, dy = utils.Normalize(enemy.X-player.X, enemy.Y-player.Y)
		proj.Homing = &component.Homing{TargetID: id, Turn: 0.15}
	}
	proj.VelX = dx * def.Speed
	proj.VelY = dy * def.Speed
	s.AddProjectile(proj)
}

// --- Веер ---

type fanBehavior struct{}

func (fanBehavior) Fire(s *entity.SimState, w *component.Weapon, def defs.WeaponDefinition, damage float64, rng *utils.PRNGService) {
	player := s.Player
	dx, dy := headingOrFacing(s, def.SearchRadius)
	base := math.Atan2(dy, dx)
	half := float64(def.Count-1) / 2
	for i := 0; i < def.Count; i++ {
		angle := base + (float64(i)-half)*def.Spread
		s.AddProjectile(&component.Projectile{
			X:        player.X,
			Y:        player.Y,
			VelX:     math.Cos(angle) * def.Speed,
			VelY:     math.Sin(angle) * def.Speed,
			Radius:   def.Radius,
			Damage:   damage,
			Duration: def.Duration,
			Pierce:   def.Pierce,
			Owner:    component.OwnerPlayer,
			Visuals:  def.Visuals,
		})
	}
}

// --- Рубящий удар перед собой ---

type slashBehavior struct{}

func (slashBehavior) Fire(s *entity.SimState, w *component.Weapon, def defs.WeaponDefinition, damage float64, rng *utils.PRNGService) {
	player := s.Player
	dx, dy := math.Cos(player.Rotation), math.Sin(player.Rotation)
	s.AddProjectile(&component.Projectile{
		X:        player.X + dx*def.Offset,
		Y:        player.Y + dy*def.Offset,
		VelX:     dx * def.Speed,
		VelY:     dy * def.Speed,
		Radius:   def.Radius * player.Stats.Area,
		Damage:   damage,
		Duration: def.Duration,
		Pierce:   def.Pierce,
		Owner:    component.OwnerPlayer,
		Visuals:  def.Visuals,
	})
}

// --- Мины ---

type minesBehavior struct{}

func (minesBehavior) Fire(s *entity.SimState, w *component.Weapon, def defs.WeaponDefinition, damage float64, rng *utils.PRNGService) {
	player := s.Player
	spread := def.OrbitRadius * player.Stats.Area
	for i := 0; i < def.Count; i++ {
		angle := rng.Angle()
		dist := rng.Float64() * spread
		s.AddProjectile(&component.Projectile{
			X:        player.X + math.Cos(angle)*dist,
			Y:        player.Y + math.Sin(angle)*dist,
			Radius:   def.Radius,
			Damage:   damage,
			Duration: def.Duration,
			Pierce:   def.Pierce,
			Owner:    component.OwnerPlayer,
			Visuals:  def.Visuals,
		})
	}
}

// --- Вращающийся посох ---

type staffBehavior struct{}

func (staffBehavior) Fire(s *entity.SimState, w *component.Weapon, def defs.WeaponDefinition, damage float64, rng *utils.PRNGService) {
	start := rng.Angle()
	for i := 0; i < def.Count; i++ {
		// Противоположные углы: 180° между двумя наконечниками.
		angle := start + math.Pi*float64(i)
		s.AddProjectile(&component.Projectile{
			Radius:   def.Radius,
			Damage:   damage,
			Duration: def.Duration,
			Pierce:   def.Pierce,
			Owner:    component.OwnerPlayer,
			Orbit: &component.Orbit{
				Angle:    angle,
				Distance: def.OrbitRadius * s.Player.Stats.Area,
				Rate:     def.AngularRate,
			},
			Visuals: def.Visuals,
		})
	}
}
