package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/event"
	"go-survivors/internal/utils"
)

func newSpawnSystem(t *testing.T) (*SpawnSystem, *eventRecorder) {
	t.Helper()
	state := newTestState()
	d := event.NewDispatcher()
	rec := &eventRecorder{}
	d.Subscribe(event.EnemySpawned, rec)
	return NewSpawnSystem(state, d, testRNG()), rec
}

func TestSpawnEnemyForced(t *testing.T) {
	s, _ := newSpawnSystem(t)

	id := s.SpawnEnemy("ENEMY_BRUTE", false)
	require.NotZero(t, id)

	e := s.state.Enemies[id]
	require.NotNil(t, e)
	assert.Equal(t, defs.ArchetypeMeleeMedium, e.Archetype)
	assert.Equal(t, 30.0, e.HP)
	assert.False(t, e.IsElite)
	assert.Nil(t, e.Charger)
	assert.Nil(t, e.Ranged)
	assert.Nil(t, e.Boss)
}

func TestSpawnEnemyUnknownID(t *testing.T) {
	s, _ := newSpawnSystem(t)
	id := s.SpawnEnemy("ENEMY_NOPE", false)
	assert.Zero(t, id)
	assert.Empty(t, s.state.Enemies)
}

func TestEliteMultipliers(t *testing.T) {
	s, _ := newSpawnSystem(t)

	id := s.SpawnEnemy("ENEMY_BRUTE", true)
	e := s.state.Enemies[id]
	require.NotNil(t, e)

	base := defs.EnemyLibrary["ENEMY_BRUTE"]
	assert.True(t, e.IsElite)
	assert.InDelta(t, base.Health*config.EliteHPMultiplier, e.HP, 1e-9)
	assert.Equal(t, e.HP, e.MaxHP)
	assert.InDelta(t, base.Damage*config.EliteDamageMultiplier, e.Damage, 1e-9)
	assert.InDelta(t, base.Radius*config.EliteRadiusMultiplier, e.Radius, 1e-9)
	assert.InDelta(t, base.Speed*config.EliteSpeedMultiplier, e.Speed, 1e-9)
}

func TestBossNeverElite(t *testing.T) {
	s, _ := newSpawnSystem(t)

	id := s.SpawnEnemy("ENEMY_BOSS", true)
	e := s.state.Enemies[id]
	require.NotNil(t, e)
	assert.False(t, e.IsElite)
	assert.Equal(t, defs.EnemyLibrary["ENEMY_BOSS"].Health, e.HP)
	require.NotNil(t, e.Boss)
	assert.Equal(t, config.BossFirstWavePeriod, e.Boss.WaveTimer)
}

func TestArchetypePayloads(t *testing.T) {
	s, _ := newSpawnSystem(t)

	charger := s.state.Enemies[s.SpawnEnemy("ENEMY_CHARGER", false)]
	require.NotNil(t, charger.Charger)
	assert.Equal(t, component.ChargerChasing, charger.Charger.Phase)

	archer := s.state.Enemies[s.SpawnEnemy("ENEMY_ARCHER", false)]
	require.NotNil(t, archer.Ranged)
	assert.GreaterOrEqual(t, archer.Ranged.ShotTimer, config.ArcherShotMin)
	assert.Less(t, archer.Ranged.ShotTimer, config.ArcherShotMax)
}

func TestSpawnPlacement(t *testing.T) {
	s, _ := newSpawnSystem(t)

	for i := 0; i < 50; i++ {
		id := s.SpawnEnemy("ENEMY_SHAMBLER", false)
		e := s.state.Enemies[id]
		assert.GreaterOrEqual(t, e.X, 0.0)
		assert.LessOrEqual(t, e.X, config.WorldWidth)
		assert.GreaterOrEqual(t, e.Y, 0.0)
		assert.LessOrEqual(t, e.Y, config.WorldHeight)
	}
}

func TestSpawnPeriodShrinksWithScore(t *testing.T) {
	s, _ := newSpawnSystem(t)

	assert.Equal(t, config.BaseSpawnPeriod, s.currentPeriod())

	s.state.Score = 300
	assert.Equal(t, config.BaseSpawnPeriod-36, s.currentPeriod())

	s.state.Score = 100000
	assert.Equal(t, config.MinSpawnPeriod, s.currentPeriod(), "период не падает ниже минимума")
}

func TestUpdateSpawnsAfterPeriod(t *testing.T) {
	s, rec := newSpawnSystem(t)

	for i := 0; i < config.BaseSpawnPeriod-1; i++ {
		s.Update()
	}
	assert.Empty(t, s.state.Enemies)
	assert.Zero(t, rec.countOf(event.EnemySpawned))

	s.Update()
	assert.Len(t, s.state.Enemies, 1)
	assert.Equal(t, 1, rec.countOf(event.EnemySpawned))
}

func TestEnemyCapHoldsSpawns(t *testing.T) {
	s, _ := newSpawnSystem(t)
	for i := 0; i < config.MaxEnemies; i++ {
		addMelee(s.state, float64(i)*20, 0)
	}

	for i := 0; i < config.BaseSpawnPeriod*2; i++ {
		s.Update()
	}
	assert.Len(t, s.state.Enemies, config.MaxEnemies)
}

func TestBossSpawnsOnScoreStep(t *testing.T) {
	s, _ := newSpawnSystem(t)
	s.state.Score = config.BossScoreStep

	s.Update()
	require.True(t, s.state.BossAlive)

	var boss *component.Enemy
	for _, e := range s.state.Enemies {
		if e.Archetype == defs.ArchetypeBoss {
			boss = e
		}
	}
	require.NotNil(t, boss)

	// Пока босс жив, второй не появляется даже на следующем пороге.
	s.state.Score = config.BossScoreStep * 2
	s.Update()
	bosses := 0
	for _, e := range s.state.Enemies {
		if e.Archetype == defs.ArchetypeBoss {
			bosses++
		}
	}
	assert.Equal(t, 1, bosses)

	// Гибель босса снимает флаг уникальности.
	s.OnEvent(event.Event{Type: event.EnemyKilled, Data: boss})
	assert.False(t, s.state.BossAlive)
}

func TestRollArchetypeBands(t *testing.T) {
	state := newTestState()
	s := NewSpawnSystem(state, event.NewDispatcher(), utils.NewPRNGService(99))

	seen := map[string]int{}
	for i := 0; i < 5000; i++ {
		seen[s.rollArchetype()]++
	}
	// Слабые ближники — подавляющее большинство, остальные полосы не пустые.
	assert.Greater(t, seen["ENEMY_SHAMBLER"], seen["ENEMY_BRUTE"])
	assert.Greater(t, seen["ENEMY_BRUTE"], seen["ENEMY_CHARGER"])
	assert.NotZero(t, seen["ENEMY_CHARGER"])
	assert.NotZero(t, seen["ENEMY_ARCHER"])
}
