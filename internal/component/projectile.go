// internal/component/projectile.go
package component

import (
	"go-survivors/internal/defs"
	"go-survivors/internal/types"
)

// Owner — кому принадлежит снаряд.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Orbit — данные орбитального снаряда: позиция пересчитывается каждый тик
// от носителя, а не интегрированием скорости.
type Orbit struct {
	Angle    float64 // монотонно растёт
	Distance float64
	Rate     float64 // радиан за тик
}

// Homing — снаряд доворачивает вектор скорости к живой позиции цели.
// Если цель исчезла, снаряд летит прямо по последнему курсу.
type Homing struct {
	TargetID types.EntityID
	Turn     float64 // доля доворота за тик, (0, 1]
}

// Projectile представляет летящий (или стоящий) снаряд.
type Projectile struct {
	X, Y     float64
	VelX     float64
	VelY     float64
	Radius   float64
	Damage   float64
	Duration int // оставшиеся тики жизни
	Pierce   int // скольких разных врагов ещё может задеть
	Owner    Owner

	// Каждый враг получает урон от снаряда не больше одного раза за всю его жизнь.
	HitEnemies map[types.EntityID]struct{}

	Orbit  *Orbit
	Homing *Homing

	Visuals defs.Visuals
	Trail   bool
	Dead    bool
}

// MarkHit регистрирует попадание по врагу. Возвращает false, если этот враг
// уже получал урон от снаряда.
func (p *Projectile) MarkHit(id types.EntityID) bool {
	if p.HitEnemies == nil {
		p.HitEnemies = make(map[types.EntityID]struct{})
	}
	if _, seen := p.HitEnemies[id]; seen {
		return false
	}
	p.HitEnemies[id] = struct{}{}
	return true
}
