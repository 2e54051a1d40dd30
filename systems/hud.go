package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pixelforge/minismash/components"
	cfg "github.com/pixelforge/minismash/config"
	"github.com/pixelforge/minismash/fonts"
	"github.com/yohamta/donburi/ecs"
)

var barColors = [2]color.RGBA{cfg.BarRed, cfg.BarBlue}

// DrawHUD renders both health bars and the controls hint
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	rules := GetRules(e)
	round := GetRound(e)

	barW := rules.UI.HealthBarWidth
	barX := [2]float64{
		rules.UI.HealthBarMargin,
		float64(rules.Arena.Width) - rules.UI.HealthBarMargin - barW,
	}

	for i, entry := range round.Fighters {
		hp := components.Health.Get(entry)
		drawHealthBar(screen, rules, barX[i], hp, barColors[i])
	}

	fontFace := fonts.HUD.Get()
	hint := rules.UI.HintText
	hintX := (rules.Arena.Width - text.BoundString(fontFace, hint).Dx()) / 2
	text.Draw(screen, hint, fontFace, hintX, 22, cfg.White)
}

func drawHealthBar(screen *ebiten.Image, rules *cfg.Tuning, x float64, hp *components.HealthData, fill color.RGBA) {
	y := rules.UI.HealthBarY
	w := rules.UI.HealthBarWidth
	h := rules.UI.HealthBarHeight

	vector.DrawFilledRect(screen,
		float32(x), float32(y), float32(w), float32(h),
		rules.UI.HealthBarBgColor, false)

	ratio := float32(hp.Current) / float32(hp.Max)
	vector.DrawFilledRect(screen,
		float32(x), float32(y), float32(w)*ratio, float32(h),
		fill, false)
}

// DrawKOBanner dims the arena and fades in the KO text while the
// round-reset freeze is running.
func DrawKOBanner(e *ecs.ECS, screen *ebiten.Image) {
	rules := GetRules(e)
	round := GetRound(e)
	if !round.Frozen {
		return
	}

	alpha := round.FadeAlpha
	overlay := color.RGBA{A: uint8(alpha * float32(rules.UI.KOOverlayAlpha))}
	vector.DrawFilledRect(screen,
		0, 0,
		float32(rules.Arena.Width), float32(rules.Arena.Height),
		overlay, false)

	fontFace := fonts.Banner.Get()
	banner := "KO!"
	bannerX := (rules.Arena.Width - text.BoundString(fontFace, banner).Dx()) / 2
	bannerCol := color.RGBA{R: 255, G: 230, B: 150, A: uint8(alpha * 255)}
	text.Draw(screen, banner, fontFace, bannerX, rules.Arena.Height/2, bannerCol)
}
