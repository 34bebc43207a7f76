package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	. "github.com/quasilyte/gmath"
)

// Pointer is the mouse or first touch of the current frame.
type Pointer struct {
	World   Vec
	Clicked bool
}

var touchIds []ebiten.TouchID

func ReadPointer(toWorld ebiten.GeoM) Pointer {
	// a tap counts as click, re-use the touchId buffer
	touchIds = inpututil.AppendJustPressedTouchIDs(touchIds[:0])
	if len(touchIds) > 0 {
		x, y := ebiten.TouchPosition(touchIds[0])
		return Pointer{World: transformCursor(toWorld, x, y), Clicked: true}
	}

	touchIds = ebiten.AppendTouchIDs(touchIds[:0])
	if len(touchIds) > 0 {
		x, y := ebiten.TouchPosition(touchIds[0])
		return Pointer{World: transformCursor(toWorld, x, y)}
	}

	x, y := ebiten.CursorPosition()

	return Pointer{
		World:   transformCursor(toWorld, x, y),
		Clicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

func transformCursor(tr ebiten.GeoM, x, y int) Vec {
	wx, wy := tr.Apply(float64(x), float64(y))
	return Vec{X: wx, Y: wy}
}
