package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pixelforge/minismash/config"
	"github.com/pixelforge/minismash/fonts"
	"github.com/pixelforge/minismash/scenes"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, 18)
	fonts.LoadFontWithSize(fonts.Banner, goregular.TTF, 48)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 12)

	return &Game{
		scene: scenes.NewArenaScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.Arena.Width, config.Arena.Height
}

func main() {
	ebiten.SetWindowSize(config.Arena.Width, config.Arena.Height)
	ebiten.SetWindowTitle("Mini Smash")
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
