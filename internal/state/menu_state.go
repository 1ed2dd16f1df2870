// internal/state/menu_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-survivors/internal/config"
)

// MenuState — стартовый экран. Ничего не симулирует, ждёт Space.
type MenuState struct {
	sm        *StateMachine
	lastScore int // счёт прошлого забега, 0 если забегов не было
}

func NewMenuState(sm *StateMachine, lastScore int) *MenuState {
	return &MenuState{sm: sm, lastScore: lastScore}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, 0))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text := "CRIMSON TIDE\n\nWASD/arrows - move\nSpace - dash\n1-3 - pick a boon\nEsc/P - pause\n\nPress Space to start"
	if m.lastScore > 0 {
		text += fmt.Sprintf("\n\nLast run: %d", m.lastScore)
	}
	ebitenutil.DebugPrintAt(screen, text, config.ScreenWidth/2-120, config.ScreenHeight/2-80)
}

func (m *MenuState) Exit() {}
