package main

import (
	"image/color"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/oliverbestmann/house-roads/assets"
	. "github.com/quasilyte/gmath"
)

var Font = assets.Font()

var Font16 = &text.GoTextFace{
	Source: Font,
	Size:   16.0,
}

var Font24 = &text.GoTextFace{
	Source: Font,
	Size:   24.0,
}

// Promise is the result of an AsyncTask, polled once per frame.
type Promise[T any, P any] struct {
	result   *atomic.Pointer[T]
	progress *atomic.Pointer[P]
}

func AsyncTask[T any, P any](task func(yield func(P)) T) Promise[T, P] {
	p := Promise[T, P]{
		result:   &atomic.Pointer[T]{},
		progress: &atomic.Pointer[P]{},
	}

	// spawn go-routine with task
	go func() {
		value := task(func(progress P) {
			p.progress.Store(&progress)
		})

		p.result.Store(&value)
	}()

	return p
}

// Get returns the result, or nil while the task is still running.
func (p Promise[T, P]) Get() *T {
	if p.result == nil {
		return nil
	}

	return p.result.Load()
}

// Status returns the last reported progress while the task is running.
func (p Promise[T, P]) Status() *P {
	if p.progress == nil || p.Get() != nil {
		return nil
	}

	return p.progress.Load()
}

func TransformVec(tr ebiten.GeoM, value Vec) Vec {
	x, y := tr.Apply(value.X, value.Y)
	return Vec{X: x, Y: y}
}

func rgbaOf(rgba uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8((rgba >> 24) & 0xff),
		G: uint8((rgba >> 16) & 0xff),
		B: uint8((rgba >> 8) & 0xff),
		A: uint8((rgba >> 0) & 0xff),
	}
}

func imageSizeOf(image *ebiten.Image) Vec {
	return Vec{
		X: float64(image.Bounds().Dx()),
		Y: float64(image.Bounds().Dy()),
	}
}

func DrawText(target *ebiten.Image, msg string, face text.Face, pos Vec, color color.Color, primaryAlign, secondaryAlign text.Align) {
	if color == nil {
		color = DebugColor
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.PrimaryAlign = primaryAlign
	op.SecondaryAlign = secondaryAlign
	op.ColorScale.ScaleWithColor(color)
	op.LineSpacing = face.Metrics().XHeight * 2.0
	text.Draw(target, msg, face, op)
}

func DrawTextCenter(target *ebiten.Image, msg string, face text.Face, pos Vec, color color.Color) {
	DrawText(target, msg, face, pos, color, text.AlignCenter, text.AlignCenter)
}

func DrawTextLeft(target *ebiten.Image, msg string, face text.Face, pos Vec, color color.Color) {
	DrawText(target, msg, face, pos, color, text.AlignStart, text.AlignStart)
}

// DrawTextBaseline draws msg with its baseline at pos, like a canvas fillText.
func DrawTextBaseline(target *ebiten.Image, msg string, face text.Face, pos Vec, color color.Color) {
	pos.Y -= face.Metrics().HAscent
	DrawTextLeft(target, msg, face, pos, color)
}

func MeasureText(face text.Face, t string) Vec {
	width, height := text.Measure(t, face, 0)
	return Vec{X: width, Y: height}
}

func splatVec(val float64) Vec {
	return Vec{X: val, Y: val}
}

func withAlpha(c color.Color, alpha float64) color.Color {
	r, g, b, a := c.RGBA()
	f := min(1, max(0, alpha))

	return color.RGBA64{
		R: uint16(float64(r) * f),
		G: uint16(float64(g) * f),
		B: uint16(float64(b) * f),
		A: uint16(float64(a) * f),
	}
}
