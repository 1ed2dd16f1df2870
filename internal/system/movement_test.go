package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-survivors/internal/config"
)

func TestMovementNormalizesDiagonal(t *testing.T) {
	state := newTestState()
	s := NewMovementSystem(state)
	player := state.Player
	startX, startY := player.X, player.Y

	s.Update(1, 1, false)
	step := config.PlayerSpeed / math.Sqrt2
	assert.InDelta(t, startX+step, player.X, 1e-9)
	assert.InDelta(t, startY+step, player.Y, 1e-9)
}

func TestMovementSpeedStat(t *testing.T) {
	state := newTestState()
	s := NewMovementSystem(state)
	player := state.Player
	player.Stats.Speed = 2.0
	startX := player.X

	s.Update(1, 0, false)
	assert.InDelta(t, startX+config.PlayerSpeed*2, player.X, 1e-9)
}

func TestFrenzySpeedBonus(t *testing.T) {
	state := newTestState()
	s := NewMovementSystem(state)
	player := state.Player
	player.IsFrenzy = true
	startX := player.X

	s.Update(1, 0, false)
	assert.InDelta(t, startX+config.PlayerSpeed*config.FrenzySpeedMultiplier, player.X, 1e-9)
}

func TestWorldBoundsClamp(t *testing.T) {
	state := newTestState()
	s := NewMovementSystem(state)
	player := state.Player
	player.X = config.WorldWidth - 1
	player.Y = 1

	s.Update(1, -1, false)
	assert.Equal(t, config.WorldWidth-player.Radius, player.X)
	assert.Equal(t, player.Radius, player.Y)
}

func TestRotationOnlyWhileMoving(t *testing.T) {
	state := newTestState()
	s := NewMovementSystem(state)
	player := state.Player

	s.Update(0, 1, false)
	assert.InDelta(t, math.Pi/2, player.Rotation, 1e-9)

	// Стоя на месте, взгляд не сбрасывается.
	s.Update(0, 0, false)
	assert.InDelta(t, math.Pi/2, player.Rotation, 1e-9)
}

func TestDashLifecycle(t *testing.T) {
	state := newTestState()
	s := NewMovementSystem(state)
	player := state.Player
	startX := player.X

	s.Update(1, 0, true)
	assert.InDelta(t, startX+config.PlayerSpeed*config.DashMultiplier, player.X, 1e-9)
	assert.Equal(t, config.DashDuration-1, player.DashTimer)
	assert.Equal(t, config.DashCooldown, player.DashCooldown)

	// Рывок в откате не запускается повторно.
	for player.DashTimer > 0 {
		s.Update(1, 0, false)
	}
	before := player.X
	s.Update(1, 0, true)
	assert.InDelta(t, before+config.PlayerSpeed, player.X, 1e-9, "обычная скорость: откат ещё идёт")
}
