// internal/system/progression.go
package system

import (
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/utils"
)

// ProgressionSystem отвечает за уровни и бешенство. Набор опыта делают
// пикапы; здесь — прокрутка порога уровня и жизненный цикл бешенства.
type ProgressionSystem struct {
	state           *entity.SimState
	eventDispatcher *event.Dispatcher
}

func NewProgressionSystem(state *entity.SimState, eventDispatcher *event.Dispatcher) *ProgressionSystem {
	return &ProgressionSystem{state: state, eventDispatcher: eventDispatcher}
}

func (s *ProgressionSystem) Update() {
	s.checkLevelUp()
	s.updateFrenzy()
}

// checkLevelUp: остаток опыта переносится, порог растёт по формуле.
// Несколько уровней за один тик возможны — каждый даёт своё событие.
func (s *ProgressionSystem) checkLevelUp() {
	player := s.state.Player
	for player.Exp >= player.NextLevelExp {
		player.Exp -= player.NextLevelExp
		player.Level++
		player.NextLevelExp = config.CalculateXPForNextLevel(player.NextLevelExp)
		s.eventDispatcher.Dispatch(event.Event{Type: event.LevelUp, Data: player.Level})
	}
}

// updateFrenzy: активация ровно на пороге, расход эссенции каждый тик,
// периодический расход hp, деактивация ровно на нуле.
func (s *ProgressionSystem) updateFrenzy() {
	player := s.state.Player

	if !player.IsFrenzy {
		if player.BloodEssence >= config.FrenzyThreshold {
			player.IsFrenzy = true
			player.FrenzyTimer = 0
			s.eventDispatcher.Dispatch(event.Event{Type: event.FrenzyStarted})
		}
		return
	}

	drain := config.FrenzyDrainPerTick / player.Stats.FrenzyEfficiency
	player.BloodEssence = utils.Clamp(player.BloodEssence-drain, 0, player.MaxBloodEssence)

	player.FrenzyTimer++
	if player.FrenzyTimer%config.FrenzyHPDrainEvery == 0 {
		player.HP -= player.MaxHP * config.FrenzyHPDrainFrac
	}

	if player.BloodEssence <= 0 {
		player.IsFrenzy = false
		s.eventDispatcher.Dispatch(event.Event{Type: event.FrenzyEnded})
	}
}
