// pkg/render/renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/utils"
)

// Warning — активное косметическое предупреждение (линия чарджера или
// кольцо босса), живущее несколько кадров.
type Warning struct {
	X, Y     float64
	TargetX  float64
	TargetY  float64
	Ring     bool
	TicksLeft float64
}

// FloatText — всплывающая цифра урона или надпись, дрейфующая вверх.
type FloatText struct {
	X, Y      float64
	Text      string
	Crit      bool
	TicksLeft int
}

// WorldRenderer рисует симуляцию: следящую камеру, сущности, предупреждения.
// Он только читает SimState — контракт наблюдателя, мутировать нельзя.
type WorldRenderer struct {
	CamX, CamY float64
	Warnings   []Warning
	Floats     []FloatText
	ShakeT     float64
	shakePower float64
}

func NewWorldRenderer() *WorldRenderer {
	return &WorldRenderer{}
}

// AddWarning регистрирует предупреждение из TickResult.
func (r *WorldRenderer) AddWarning(w Warning) {
	r.Warnings = append(r.Warnings, w)
}

// AddFloat регистрирует всплывающий текст (цифру урона, "MISS" и т.п.).
func (r *WorldRenderer) AddFloat(f FloatText) {
	if f.TicksLeft <= 0 {
		f.TicksLeft = 40
	}
	r.Floats = append(r.Floats, f)
}

// RequestShake запускает затухающую тряску экрана.
func (r *WorldRenderer) RequestShake(power float64) {
	if power > r.shakePower {
		r.shakePower = power
		r.ShakeT = 1.0
	}
}

// Update двигает камеру за игроком и гасит косметические таймеры.
func (r *WorldRenderer) Update(state *entity.SimState) {
	player := state.Player
	r.CamX = utils.Clamp(player.X-config.ScreenWidth/2, 0, config.WorldWidth-config.ScreenWidth)
	r.CamY = utils.Clamp(player.Y-config.ScreenHeight/2, 0, config.WorldHeight-config.ScreenHeight)

	kept := r.Warnings[:0]
	for _, w := range r.Warnings {
		w.TicksLeft--
		if w.TicksLeft > 0 {
			kept = append(kept, w)
		}
	}
	r.Warnings = kept

	keptFloats := r.Floats[:0]
	for _, f := range r.Floats {
		f.TicksLeft--
		f.Y -= 0.6
		if f.TicksLeft > 0 {
			keptFloats = append(keptFloats, f)
		}
	}
	r.Floats = keptFloats

	if r.ShakeT > 0 {
		r.ShakeT -= 0.06
	}
}

func (r *WorldRenderer) offset() (float64, float64) {
	ox, oy := -r.CamX, -r.CamY
	if r.ShakeT > 0 {
		magnitude := r.shakePower * r.ShakeT
		ox += math.Sin(r.ShakeT*73) * magnitude
		oy += math.Cos(r.ShakeT*59) * magnitude
	}
	return ox, oy
}

// Draw отрисовывает весь мир на экран.
func (r *WorldRenderer) Draw(screen *ebiten.Image, state *entity.SimState) {
	screen.Fill(config.BackgroundColor)
	ox, oy := r.offset()

	for _, w := range r.Warnings {
		if w.Ring {
			vector.StrokeCircle(screen, float32(w.X+ox), float32(w.Y+oy),
				float32(config.BossWaveRadius), 2, config.WarningColor, true)
		} else {
			vector.StrokeLine(screen, float32(w.X+ox), float32(w.Y+oy),
				float32(w.TargetX+ox), float32(w.TargetY+oy), 2, config.WarningColor, true)
		}
	}

	for _, drop := range state.Drops {
		c := config.OrbColor
		if drop.Kind == component.DropChest {
			c = config.ChestColor
		}
		vector.DrawFilledCircle(screen, float32(drop.X+ox), float32(drop.Y+oy), float32(drop.Radius), c, true)
	}

	for _, enemy := range state.Enemies {
		def := defs.EnemyLibrary[enemy.DefID]
		c := def.Visuals.Color
		if enemy.HitFlash > 0 {
			c = FlashColor(c, float64(enemy.HitFlash)/float64(config.HitFlashTicks))
		}
		vector.DrawFilledCircle(screen, float32(enemy.X+ox), float32(enemy.Y+oy), float32(enemy.Radius), c, true)
		if enemy.IsElite {
			vector.StrokeCircle(screen, float32(enemy.X+ox), float32(enemy.Y+oy), float32(enemy.Radius)+2, 2, config.EliteStroke, true)
		}
		// Чарджер в подготовке заметно дрожит.
		if enemy.Charger != nil && enemy.Charger.Phase == component.ChargerPreparing {
			jitter := math.Sin(float64(enemy.Charger.Timer)) * 2
			vector.StrokeCircle(screen, float32(enemy.X+jitter+ox), float32(enemy.Y+oy), float32(enemy.Radius)+1, 1, config.WarningColor, true)
		}
	}

	for _, proj := range state.Projectiles {
		c := proj.Visuals.Color
		if c.A == 0 {
			c = color.RGBA{255, 255, 255, 255}
		}
		vector.DrawFilledCircle(screen, float32(proj.X+ox), float32(proj.Y+oy), float32(proj.Radius), c, true)
	}

	player := state.Player
	pc := config.PlayerColor
	if player.IsFrenzy {
		pc = config.FrenzyColor
	}
	if player.HitFlash > 0 {
		pc = FlashColor(pc, float64(player.HitFlash)/float64(config.HitFlashTicks))
	}
	vector.DrawFilledCircle(screen, float32(player.X+ox), float32(player.Y+oy), float32(player.Radius), pc, true)

	// Штрих направления взгляда.
	fx := player.X + math.Cos(player.Rotation)*player.Radius*1.6
	fy := player.Y + math.Sin(player.Rotation)*player.Radius*1.6
	vector.StrokeLine(screen, float32(player.X+ox), float32(player.Y+oy), float32(fx+ox), float32(fy+oy), 2, config.TextLightColor, true)

	for _, f := range r.Floats {
		txt := f.Text
		if f.Crit {
			txt += "!"
		}
		ebitenutil.DebugPrintAt(screen, txt, int(f.X+ox), int(f.Y+oy))
	}
}
