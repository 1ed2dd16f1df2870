// internal/system/projectile.go
package system

import (
	"math"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/utils"
)

// ProjectileSystem управляет движением снарядов и их сроком жизни.
// Урон снаряды не наносят — это забота CollisionSystem.
type ProjectileSystem struct {
	state *entity.SimState
}

func NewProjectileSystem(state *entity.SimState) *ProjectileSystem {
	return &ProjectileSystem{state: state}
}

func (s *ProjectileSystem) Update() {
	player := s.state.Player
	for _, proj := range s.state.Projectiles {
		if proj.Dead {
			continue
		}

		switch {
		case proj.Orbit != nil:
			// Орбитальный снаряд: позиция каждый тик пересчитывается от
			// носителя по монотонно растущему углу, скорость не интегрируется.
			proj.Orbit.Angle += proj.Orbit.Rate
			proj.X = player.X + math.Cos(proj.Orbit.Angle)*proj.Orbit.Distance
			proj.Y = player.Y + math.Sin(proj.Orbit.Angle)*proj.Orbit.Distance
		case proj.Homing != nil:
			s.steer(proj)
			proj.X += proj.VelX
			proj.Y += proj.VelY
		default:
			proj.X += proj.VelX
			proj.Y += proj.VelY
		}

		proj.Duration--
		if proj.Duration <= 0 || proj.Pierce <= 0 {
			proj.Dead = true
			continue
		}

		// За границами мира (с запасом) снаряд не нужен.
		// Орбитальные привязаны к игроку и не покидают мир сами по себе.
		if proj.Orbit == nil && s.outOfBounds(proj) {
			proj.Dead = true
		}
	}
}

// steer доворачивает вектор скорости к живой позиции цели, сохраняя модуль
// скорости. Пропавшая цель не ошибка: снаряд продолжает лететь прямо.
func (s *ProjectileSystem) steer(proj *component.Projectile) {
	target, exists := s.state.Enemies[proj.Homing.TargetID]
	if !exists || target.Dead {
		return
	}

	speed := math.Sqrt(proj.VelX*proj.VelX + proj.VelY*proj.VelY)
	if speed == 0 {
		return
	}

	curX, curY := proj.VelX/speed, proj.VelY/speed
	wantX, wantY := utils.Normalize(target.X-proj.X, target.Y-proj.Y)

	dirX := utils.Lerp(curX, wantX, proj.Homing.Turn)
	dirY := utils.Lerp(curY, wantY, proj.Homing.Turn)
	dirX, dirY = utils.Normalize(dirX, dirY)
	if dirX == 0 && dirY == 0 {
		return // желаемое и текущее направления противоположны, держим курс
	}

	proj.VelX = dirX * speed
	proj.VelY = dirY * speed
}

func (s *ProjectileSystem) outOfBounds(proj *component.Projectile) bool {
	m := config.ProjectileDespawnMargin
	return proj.X < -m || proj.X > config.WorldWidth+m ||
		proj.Y < -m || proj.Y > config.WorldHeight+m
}
