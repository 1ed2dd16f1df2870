package defs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLibraries(t *testing.T) {
	assert.Len(t, EnemyLibrary, 5)
	assert.Len(t, WeaponLibrary, 8)
}

func TestEnemyDefinitions(t *testing.T) {
	boss, ok := EnemyLibrary["ENEMY_BOSS"]
	require.True(t, ok)
	assert.Equal(t, ArchetypeBoss, boss.Archetype)
	assert.Equal(t, 600.0, boss.Health)
	assert.Equal(t, 100, boss.Score)

	shambler, ok := EnemyLibrary["ENEMY_SHAMBLER"]
	require.True(t, ok)
	assert.Equal(t, ArchetypeMeleeWeak, shambler.Archetype)

	charger, ok := EnemyLibrary["ENEMY_CHARGER"]
	require.True(t, ok)
	assert.Equal(t, ArchetypeCharger, charger.Archetype)
}

func TestWeaponDefinitions(t *testing.T) {
	blades, ok := WeaponLibrary["WEAPON_BLADES"]
	require.True(t, ok)
	assert.Equal(t, WeaponOrbitBlades, blades.Kind)
	assert.Equal(t, 70.0, blades.OrbitRadius)
	assert.Equal(t, 2, blades.Count)

	ward, ok := WeaponLibrary["WEAPON_WARD"]
	require.True(t, ok)
	assert.Equal(t, WeaponAura, ward.Kind)
	assert.Equal(t, 30, ward.TickInterval)

	bolt, ok := WeaponLibrary["WEAPON_BOLT"]
	require.True(t, ok)
	assert.Equal(t, WeaponHomingBolt, bolt.Kind)
	assert.Equal(t, 420.0, bolt.SearchRadius)
}

func TestEnemyByArchetype(t *testing.T) {
	def, ok := EnemyByArchetype(ArchetypeRanged)
	require.True(t, ok)
	assert.Equal(t, "ENEMY_ARCHER", def.ID)

	_, ok = EnemyByArchetype(Archetype("NO_SUCH"))
	assert.False(t, ok)
}
