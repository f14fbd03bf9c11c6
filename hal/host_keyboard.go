//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var hostKeys = [...]struct {
	code KeyCode
	key  ebiten.Key
}{
	{KeyUp, ebiten.KeyArrowUp},
	{KeyDown, ebiten.KeyArrowDown},
	{KeyLeft, ebiten.KeyArrowLeft},
	{KeyRight, ebiten.KeyArrowRight},
	{KeyW, ebiten.KeyW},
	{KeyA, ebiten.KeyA},
	{KeyS, ebiten.KeyS},
	{KeyD, ebiten.KeyD},
	{KeyEscape, ebiten.KeyEscape},
	{KeyTab, ebiten.KeyTab},
}

// poll samples the window's key state. It must run on the ebiten update
// goroutine.
func (k *hostKeyboard) poll() {
	for _, hk := range hostKeys {
		if inpututil.IsKeyJustPressed(hk.key) {
			k.emit(hk.code, true)
		}
		if inpututil.IsKeyJustReleased(hk.key) {
			k.emit(hk.code, false)
		}
		k.set(hk.code, ebiten.IsKeyPressed(hk.key))
	}
}
