package system

import (
	"testing"

	"go-survivors/internal/component"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/types"
	"go-survivors/internal/utils"
)

// eventRecorder копит доставленные события для проверок.
type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) countOf(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestState() *entity.SimState {
	return entity.NewSimState()
}

func testRNG() *utils.PRNGService {
	return utils.NewPRNGService(12345)
}

// addMelee создаёт простого ближника рядом с игроком (или где скажут).
func addMelee(s *entity.SimState, x, y float64) *component.Enemy {
	def := defs.EnemyLibrary["ENEMY_SHAMBLER"]
	e := &component.Enemy{
		DefID:     def.ID,
		X:         x,
		Y:         y,
		Radius:    def.Radius,
		Archetype: def.Archetype,
		HP:        def.Health,
		MaxHP:     def.Health,
		Speed:     def.Speed,
		Damage:    def.Damage,
		Score:     def.Score,
	}
	s.AddEnemy(e)
	return e
}

// findEnemyID возвращает id врага по указателю.
func findEnemyID(t *testing.T, s *entity.SimState, target *component.Enemy) types.EntityID {
	t.Helper()
	for id, e := range s.Enemies {
		if e == target {
			return id
		}
	}
	t.Fatal("enemy not registered in state")
	return 0
}
