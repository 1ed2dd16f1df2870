// internal/state/game_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "go-survivors/internal/app"
	"go-survivors/internal/config"
	"go-survivors/internal/ui"
	"go-survivors/pkg/render"
)

// GameState — состояние игры: снимает ввод, крутит симуляцию на один тик
// за кадр и скармливает результат рендеру.
type GameState struct {
	sm       *StateMachine
	game     *game.Game
	renderer *render.WorldRenderer
	hud      *ui.HUD
	panel    *ui.UpgradePanel

	gameOverTimer int // сколько тиков показываем экран смерти до выхода в меню
	finalScore    int
}

func NewGameState(sm *StateMachine, seed int64) *GameState {
	return &GameState{
		sm:       sm,
		game:     game.NewGame(seed),
		renderer: render.NewWorldRenderer(),
		hud:      ui.NewHUD(),
		panel:    ui.NewUpgradePanel(),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update() {
	if g.game.IsGameOver() {
		g.gameOverTimer++
		if g.gameOverTimer > 30 &&
			(inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)) {
			g.sm.SetState(NewMenuState(g.sm, g.finalScore))
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	// Выбор награды: симуляция стоит, работают только цифры.
	if g.game.IsSelectionPending() {
		for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
			if inpututil.IsKeyJustPressed(key) {
				g.game.ApplyUpgrade(i)
			}
		}
		return
	}

	moveX, moveY := readMoveInput()
	dash := inpututil.IsKeyJustPressed(ebiten.KeySpace)

	result := g.game.Advance(moveX, moveY, dash)
	g.consumeResult(result)

	g.renderer.Update(g.game.State)
}

// consumeResult переводит косметические заявки тика в состояние рендера.
func (g *GameState) consumeResult(result *game.TickResult) {
	for _, w := range result.Warnings {
		g.renderer.AddWarning(render.Warning{
			X: w.X, Y: w.Y,
			TargetX: w.TargetX, TargetY: w.TargetY,
			Ring:      w.TargetX == 0 && w.TargetY == 0,
			TicksLeft: w.Duration,
		})
	}
	for _, d := range result.DamageNumbers {
		g.renderer.AddFloat(render.FloatText{
			X: d.X, Y: d.Y,
			Text: fmt.Sprintf("%d", int(d.Amount)),
			Crit: d.Crit,
		})
	}
	for _, d := range result.Dodges {
		g.renderer.AddFloat(render.FloatText{X: d.X, Y: d.Y, Text: "MISS"})
	}
	if result.ShakePower > 0 {
		g.renderer.RequestShake(result.ShakePower)
	}
	if result.GameOver {
		g.finalScore = result.FinalScore
	}
}

func readMoveInput() (float64, float64) {
	var x, y float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		x -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		x += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		y += 1
	}
	return x, y
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.State)
	g.hud.Draw(screen, g.game.State.Player, g.game.Score())

	if g.game.IsSelectionPending() {
		g.panel.Draw(screen, g.game.PendingOffers())
	}

	if g.game.IsGameOver() {
		msg := fmt.Sprintf("YOU DIED\n\nScore: %d\n\nPress Space", g.finalScore)
		ebitenutil.DebugPrintAt(screen, msg, config.ScreenWidth/2-40, config.ScreenHeight/2-30)
	}
}

func (g *GameState) Exit() {}
