// internal/ui/upgrade_panel.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-survivors/internal/app"
	"go-survivors/internal/config"
)

// UpgradePanel — экран выбора награды при левел-апе или сундуке.
// Симуляция в это время стоит, выбор делается клавишами 1-3.
type UpgradePanel struct {
	face font.Face
}

func NewUpgradePanel() *UpgradePanel {
	return &UpgradePanel{face: basicfont.Face7x13}
}

func (p *UpgradePanel) Draw(screen *ebiten.Image, offers []app.UpgradeChoice) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 140}, false)

	title := "CHOOSE A BOON"
	text.Draw(screen, title, p.face, config.ScreenWidth/2-len(title)*7/2, 280, config.TextLightColor)

	for i, offer := range offers {
		y := float32(320 + i*56)
		vector.DrawFilledRect(screen, config.ScreenWidth/2-220, y, 440, 40, color.RGBA{35, 35, 55, 230}, false)
		line := fmt.Sprintf("[%d] %s", i+1, offer.Label)
		text.Draw(screen, line, p.face, config.ScreenWidth/2-200, int(y)+24, config.TextLightColor)
	}
}
