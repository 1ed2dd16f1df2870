package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/event"
)

func newAISystem(t *testing.T) (*AISystem, *eventRecorder) {
	t.Helper()
	state := newTestState()
	d := event.NewDispatcher()
	rec := &eventRecorder{}
	d.Subscribe(event.ChargeWarning, rec)
	d.Subscribe(event.BossWarning, rec)
	d.Subscribe(event.ScreenShake, rec)
	return NewAISystem(state, d, testRNG()), rec
}

func TestMeleeChasesPlayer(t *testing.T) {
	s, _ := newAISystem(t)
	player := s.state.Player
	e := addMelee(s.state, player.X-100, player.Y)

	s.UpdateEnemy(e)
	assert.InDelta(t, player.X-100+e.Speed, e.X, 1e-9)
	assert.Equal(t, 0.0, e.Rotation, "движение вправо — взгляд вправо")

	e.X = player.X + 100
	s.UpdateEnemy(e)
	assert.InDelta(t, 3.141592653589793, e.Rotation, 1e-9)
}

func TestKnockbackDecays(t *testing.T) {
	s, _ := newAISystem(t)
	e := addMelee(s.state, 100, 100)
	e.Speed = 0
	e.KnockX = 10

	s.UpdateEnemy(e)
	assert.InDelta(t, 110.0, e.X, 1e-9, "импульс применился")
	assert.InDelta(t, 10*config.KnockbackDamping, e.KnockX, 1e-9, "и затух")
}

func TestChargerStateMachine(t *testing.T) {
	s, _ := newAISystem(t)
	player := s.state.Player

	def := defs.EnemyLibrary["ENEMY_CHARGER"]
	e := &component.Enemy{
		DefID:     def.ID,
		X:         player.X - 200,
		Y:         player.Y,
		Archetype: def.Archetype,
		HP:        def.Health,
		Speed:     def.Speed,
		Charger:   &component.ChargerState{Phase: component.ChargerPreparing, Timer: 2, TargetX: player.X, TargetY: player.Y},
	}
	s.state.AddEnemy(e)

	// PREPARING: стоит на месте, таймер тикает.
	startX := e.X
	s.UpdateEnemy(e)
	assert.Equal(t, component.ChargerPreparing, e.Charger.Phase)
	assert.Equal(t, startX, e.X)

	s.UpdateEnemy(e)
	require.Equal(t, component.ChargerCharging, e.Charger.Phase)
	assert.Equal(t, config.ChargerChargeTicks, e.Charger.Timer)

	// CHARGING: летит к зафиксированной цели на повышенной скорости,
	// даже если игрок уже ушёл.
	player.Y += 500
	beforeX := e.X
	s.UpdateEnemy(e)
	assert.InDelta(t, beforeX+e.Speed*config.ChargerChargeSpeed, e.X, 1e-9)
	assert.Equal(t, e.Y, s.state.Player.Y-500, "рывок не перенацеливается")

	for i := 0; i < config.ChargerChargeTicks-1; i++ {
		s.UpdateEnemy(e)
	}
	require.Equal(t, component.ChargerCooldown, e.Charger.Phase)
	assert.Equal(t, config.ChargerCooldownTicks, e.Charger.Timer)

	for i := 0; i < config.ChargerCooldownTicks; i++ {
		s.UpdateEnemy(e)
	}
	assert.Equal(t, component.ChargerChasing, e.Charger.Phase)
}

func TestChargerWarningDispatched(t *testing.T) {
	s, rec := newAISystem(t)
	player := s.state.Player

	def := defs.EnemyLibrary["ENEMY_CHARGER"]
	e := &component.Enemy{
		DefID:     def.ID,
		X:         player.X - 180, // внутри полосы срабатывания
		Y:         player.Y,
		Archetype: def.Archetype,
		Speed:     0, // стоит, чтобы не выпасть из полосы
		Charger:   &component.ChargerState{Phase: component.ChargerChasing},
	}
	s.state.AddEnemy(e)

	// Вероятность срабатывания мала, гоняем до перехода.
	for i := 0; i < 2000 && e.Charger.Phase == component.ChargerChasing; i++ {
		s.UpdateEnemy(e)
	}
	require.Equal(t, component.ChargerPreparing, e.Charger.Phase)
	assert.Equal(t, 1, rec.countOf(event.ChargeWarning))
	assert.Equal(t, player.X, e.Charger.TargetX)
}

func TestArcherBands(t *testing.T) {
	s, _ := newAISystem(t)
	player := s.state.Player

	def := defs.EnemyLibrary["ENEMY_ARCHER"]
	newArcher := func(dist float64) *component.Enemy {
		e := &component.Enemy{
			DefID:     def.ID,
			X:         player.X - dist,
			Y:         player.Y,
			Archetype: def.Archetype,
			Speed:     def.Speed,
			Damage:    def.Damage,
			Ranged:    &component.RangedState{ShotTimer: 1000},
		}
		s.state.AddEnemy(e)
		return e
	}

	t.Run("too close retreats", func(t *testing.T) {
		e := newArcher(50)
		s.UpdateEnemy(e)
		assert.Less(t, e.X, player.X-50.0)
	})

	t.Run("too far approaches", func(t *testing.T) {
		e := newArcher(400)
		s.UpdateEnemy(e)
		assert.Greater(t, e.X, player.X-400.0)
	})

	t.Run("middle band strafes", func(t *testing.T) {
		e := newArcher(200)
		s.UpdateEnemy(e)
		assert.InDelta(t, player.X-200, e.X, 1e-9, "дистанция по X не меняется")
		assert.NotEqual(t, player.Y, e.Y, "движение перпендикулярно")
	})
}

func TestArcherFiresOnTimer(t *testing.T) {
	s, _ := newAISystem(t)
	player := s.state.Player

	def := defs.EnemyLibrary["ENEMY_ARCHER"]
	e := &component.Enemy{
		DefID:     def.ID,
		X:         player.X - 200,
		Y:         player.Y,
		Archetype: def.Archetype,
		Speed:     0,
		Damage:    def.Damage,
		Ranged:    &component.RangedState{ShotTimer: 1},
	}
	s.state.AddEnemy(e)

	s.UpdateEnemy(e)
	require.Len(t, s.state.Projectiles, 1)
	assert.Equal(t, config.ArcherShotPeriod, e.Ranged.ShotTimer)

	for _, p := range s.state.Projectiles {
		assert.Equal(t, component.OwnerEnemy, p.Owner)
		assert.Equal(t, def.Damage, p.Damage)
		assert.Greater(t, p.VelX, 0.0, "стрела летит в сторону игрока")
	}
}

func TestBossShockwave(t *testing.T) {
	s, rec := newAISystem(t)
	player := s.state.Player

	def := defs.EnemyLibrary["ENEMY_BOSS"]
	e := &component.Enemy{
		DefID:     def.ID,
		X:         player.X - 300,
		Y:         player.Y,
		Archetype: def.Archetype,
		Speed:     def.Speed,
		Damage:    def.Damage,
		Boss:      &component.BossState{WaveTimer: 1},
	}
	s.state.AddEnemy(e)

	s.UpdateEnemy(e)
	require.Len(t, s.state.Projectiles, 1)
	assert.Equal(t, config.BossWavePeriod, e.Boss.WaveTimer, "после волны период длинный")
	assert.Equal(t, 1, rec.countOf(event.BossWarning))
	assert.Equal(t, 1, rec.countOf(event.ScreenShake))

	for _, p := range s.state.Projectiles {
		assert.Equal(t, config.BossWaveRadius, p.Radius)
		assert.Equal(t, config.BossWaveTicks, p.Duration)
		assert.Equal(t, component.OwnerEnemy, p.Owner)
		assert.Zero(t, p.VelX, "волна не летит, она вспыхивает на месте")
	}

	// До следующей волны — тишина.
	s.UpdateEnemy(e)
	assert.Len(t, s.state.Projectiles, 1)
}
