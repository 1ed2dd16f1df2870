// internal/defs/types.go
package defs

import "image/color"

// Archetype defines the behavior family of an enemy.
type Archetype string

const (
	ArchetypeMeleeWeak   Archetype = "MELEE_WEAK"
	ArchetypeMeleeMedium Archetype = "MELEE_MEDIUM"
	ArchetypeCharger     Archetype = "CHARGER"
	ArchetypeRanged      Archetype = "RANGED"
	ArchetypeBoss        Archetype = "BOSS"
)

// WeaponKind selects the firing behavior of a weapon.
type WeaponKind string

const (
	WeaponOrbitBlades WeaponKind = "ORBIT_BLADES"
	WeaponBurst       WeaponKind = "BURST"
	WeaponHomingBolt  WeaponKind = "HOMING_BOLT"
	WeaponFan         WeaponKind = "FAN"
	WeaponSlash       WeaponKind = "SLASH"
	WeaponMines       WeaponKind = "MINES"
	WeaponAura        WeaponKind = "AURA"
	WeaponStaff       WeaponKind = "STAFF"
)

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color       color.RGBA `json:"color"`
	StrokeWidth float64    `json:"stroke_width"`
}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Archetype Archetype `json:"archetype"`
	Health    float64   `json:"health"`
	Speed     float64   `json:"speed"`
	Radius    float64   `json:"radius"`
	Damage    float64   `json:"damage"`
	Score     int       `json:"score"`
	Visuals   Visuals   `json:"visuals"`
}

// WeaponDefinition holds the static data for one weapon kind.
// Not every field is meaningful for every kind; the firing behavior
// for the kind decides which ones it reads.
type WeaponDefinition struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Kind         WeaponKind `json:"kind"`
	BaseCooldown float64    `json:"base_cooldown"` // тики до следующего выстрела
	Damage       float64    `json:"damage"`
	Count        int        `json:"count"`    // снарядов за выстрел
	Speed        float64    `json:"speed"`    // units per tick
	Radius       float64    `json:"radius"`   // радиус снаряда
	Duration     int        `json:"duration"` // тиков жизни снаряда
	Pierce       int        `json:"pierce"`
	OrbitRadius  float64    `json:"orbit_radius,omitempty"`
	AngularRate  float64    `json:"angular_rate,omitempty"` // радиан за тик
	SearchRadius float64    `json:"search_radius,omitempty"`
	Spread       float64    `json:"spread,omitempty"`        // радианы между снарядами веера
	TickInterval int        `json:"tick_interval,omitempty"` // для ауры: период срабатывания
	Push         float64    `json:"push,omitempty"`          // для ауры: сила выталкивания
	Offset       float64    `json:"offset,omitempty"`        // для удара: смещение перед игроком
	Visuals      Visuals    `json:"visuals"`
}
