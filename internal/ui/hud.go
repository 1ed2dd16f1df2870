// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
)

// HUD рисует полосы здоровья, эссенции и опыта поверх мира.
// Читает игрока только на чтение.
type HUD struct {
	face font.Face
}

func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13}
}

func (h *HUD) Draw(screen *ebiten.Image, player *component.Player, score int) {
	h.bar(screen, 20, 20, 260, 14, player.HP/player.MaxHP, config.HPBarColor)
	h.bar(screen, 20, 40, 260, 10, player.BloodEssence/player.MaxBloodEssence, config.EssenceBarColor)
	h.bar(screen, 20, 56, 260, 6, player.Exp/player.NextLevelExp, config.ExpBarColor)

	text.Draw(screen, fmt.Sprintf("Lv %d   Score %d", player.Level, score), h.face, 20, 86, config.TextLightColor)
	if player.IsFrenzy {
		text.Draw(screen, "FRENZY", h.face, 20, 102, config.FrenzyColor)
	}
	if player.DashCooldown > 0 {
		text.Draw(screen, "dash...", h.face, 240, 86, color.RGBA{150, 150, 150, 255})
	}
}

func (h *HUD) bar(screen *ebiten.Image, x, y, w, hgt float32, frac float64, c color.RGBA) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	vector.DrawFilledRect(screen, x, y, w, hgt, color.RGBA{40, 40, 50, 255}, false)
	vector.DrawFilledRect(screen, x, y, w*float32(frac), hgt, c, false)
}
