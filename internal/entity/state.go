// internal/entity/state.go
package entity

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/types"
)

// SimState — единственное хранилище состояния симуляции. Оркестратор владеет
// им и передаёт системам по ссылке; ни одна система не держит своей копии.
type SimState struct {
	Tick   int
	NextID types.EntityID

	Player      *component.Player
	Enemies     map[types.EntityID]*component.Enemy
	Projectiles map[types.EntityID]*component.Projectile
	Drops       map[types.EntityID]*component.Drop

	Score     int
	BossAlive bool
}

// NewSimState создаёт состояние с игроком на стартовых характеристиках.
func NewSimState() *SimState {
	return &SimState{
		NextID:      1,
		Player:      NewPlayer(),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Drops:       make(map[types.EntityID]*component.Drop),
	}
}

// NewPlayer возвращает игрока в центре мира с базовым блоком статов.
func NewPlayer() *component.Player {
	return &component.Player{
		X:               config.WorldWidth / 2,
		Y:               config.WorldHeight / 2,
		Radius:          config.PlayerRadius,
		HP:              config.PlayerMaxHP,
		MaxHP:           config.PlayerMaxHP,
		Level:           1,
		NextLevelExp:    config.FirstLevelExp,
		MaxBloodEssence: config.MaxBloodEssence,
		Stats: component.Stats{
			Might:            1.0,
			Cooldown:         1.0,
			Area:             1.0,
			Speed:            1.0,
			Magnet:           1.0,
			DodgeChance:      config.PlayerDodge,
			FrenzyEfficiency: 1.0,
			ExpMultiplier:    1.0,
		},
	}
}

// NewEntity выдаёт следующий целочисленный идентификатор.
func (s *SimState) NewEntity() types.EntityID {
	id := s.NextID
	s.NextID++
	return id
}

// AddEnemy регистрирует врага и возвращает его id.
func (s *SimState) AddEnemy(e *component.Enemy) types.EntityID {
	id := s.NewEntity()
	s.Enemies[id] = e
	return id
}

// AddProjectile регистрирует снаряд и возвращает его id.
func (s *SimState) AddProjectile(p *component.Projectile) types.EntityID {
	id := s.NewEntity()
	s.Projectiles[id] = p
	return id
}

// AddDrop регистрирует дроп и возвращает его id.
func (s *SimState) AddDrop(d *component.Drop) types.EntityID {
	id := s.NewEntity()
	s.Drops[id] = d
	return id
}
