// internal/system/movement.go
package system

import (
	"math"

	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/utils"
)

// MovementSystem применяет нормализованный вектор ввода к игроку,
// обслуживает рывок и зажимает позицию в границы мира.
type MovementSystem struct {
	state *entity.SimState
}

func NewMovementSystem(state *entity.SimState) *MovementSystem {
	return &MovementSystem{state: state}
}

// Update принимает нормализованный вектор движения (каждая ось в [-1, 1],
// слияние устройств ввода — забота внешнего слоя) и запрос рывка.
func (s *MovementSystem) Update(moveX, moveY float64, dashRequested bool) {
	player := s.state.Player

	if player.DashCooldown > 0 {
		player.DashCooldown--
	}
	if dashRequested && player.DashCooldown <= 0 && player.DashTimer <= 0 {
		player.DashTimer = config.DashDuration
		player.DashCooldown = config.DashCooldown
	}

	speed := config.PlayerSpeed * player.Stats.Speed
	if player.IsFrenzy {
		speed *= config.FrenzySpeedMultiplier
	}
	if player.DashTimer > 0 {
		player.DashTimer--
		speed *= config.DashMultiplier
	}

	dx, dy := utils.Normalize(moveX, moveY)
	player.X += dx * speed
	player.Y += dy * speed

	// Взгляд обновляется только при реальном движении.
	if dx != 0 || dy != 0 {
		player.Rotation = math.Atan2(dy, dx)
	}

	player.X = utils.Clamp(player.X, player.Radius, config.WorldWidth-player.Radius)
	player.Y = utils.Clamp(player.Y, player.Radius, config.WorldHeight-player.Radius)

	if player.HitFlash > 0 {
		player.HitFlash--
	}
}
