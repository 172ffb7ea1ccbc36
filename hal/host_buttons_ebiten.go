//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenButtons = []struct {
	key ebiten.Key
	btn Button
}{
	{ebiten.KeyArrowUp, ButtonUp},
	{ebiten.KeyArrowDown, ButtonDown},
	{ebiten.KeyArrowLeft, ButtonLeft},
	{ebiten.KeyArrowRight, ButtonRight},
	{ebiten.KeyEnter, ButtonEnter},
	{ebiten.KeySpace, ButtonEnter},
	{ebiten.KeyEscape, ButtonEscape},
	{ebiten.KeyBackspace, ButtonEscape},
}

func (b *hostButtons) pollEbiten() {
	for _, m := range ebitenButtons {
		if inpututil.IsKeyJustPressed(m.key) {
			b.emit(m.btn, true)
		}
		if inpututil.IsKeyJustReleased(m.key) {
			b.emit(m.btn, false)
		}
	}
}
