// internal/system/pickup.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/utils"
)

// PickupSystem тянет сферы опыта к игроку внутри радиуса магнита и
// оформляет подбор. Сундуки магнит игнорируют: их нужно задеть телом.
type PickupSystem struct {
	state           *entity.SimState
	eventDispatcher *event.Dispatcher
}

func NewPickupSystem(state *entity.SimState, eventDispatcher *event.Dispatcher) *PickupSystem {
	return &PickupSystem{state: state, eventDispatcher: eventDispatcher}
}

func (s *PickupSystem) Update() {
	player := s.state.Player
	magnetRadius := config.PlayerMagnet * player.Stats.Magnet

	for _, drop := range s.state.Drops {
		if drop.Dead {
			continue
		}

		if drop.Kind == component.DropOrb {
			dist := utils.Dist(drop.X, drop.Y, player.X, player.Y)
			if dist <= magnetRadius {
				dx, dy := utils.Normalize(player.X-drop.X, player.Y-drop.Y)
				drop.X += dx * config.OrbMagnetSpeed
				drop.Y += dy * config.OrbMagnetSpeed
			}
		}

		if !utils.CirclesOverlap(drop.X, drop.Y, drop.Radius, player.X, player.Y, player.Radius) {
			continue
		}

		drop.Dead = true
		switch drop.Kind {
		case component.DropOrb:
			s.collectOrb(drop)
		case component.DropChest:
			s.eventDispatcher.Dispatch(event.Event{Type: event.ChestPicked, Data: drop.Value})
		}
	}
}

// collectOrb: опыт (с множителем), эссенция и небольшой отхил за подбор.
func (s *PickupSystem) collectOrb(drop *component.Drop) {
	player := s.state.Player
	player.Exp += drop.Value * player.Stats.ExpMultiplier
	player.BloodEssence = utils.Clamp(player.BloodEssence+config.EssencePerOrb, 0, player.MaxBloodEssence)
	player.HP = utils.Clamp(player.HP+config.PickupRegenHP, 0, player.MaxHP)
}
