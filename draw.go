package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oliverbestmann/house-roads/houses"
	. "github.com/quasilyte/gmath"
)

var whiteImage *ebiten.Image

func init() {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// StrokeLine draws a line between two world positions. The width is given
// in world units and scales with the transform.
func StrokeLine(target *ebiten.Image, from, to Vec, width float64, toScreen ebiten.GeoM, color color.Color) {
	var path vector.Path
	path.MoveTo(float32(from.X), float32(from.Y))
	path.LineTo(float32(to.X), float32(to.Y))

	vop := &vector.StrokeOptions{
		Width:   float32(width),
		LineCap: vector.LineCapRound,
	}

	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, vop)
	drawTriangles(target, vertices, indices, toScreen, color)
}

func FillPath(target *ebiten.Image, path *vector.Path, tr ebiten.GeoM, color color.Color) {
	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	drawTriangles(target, vertices, indices, tr, color)
}

func drawTriangles(target *ebiten.Image, vertices []ebiten.Vertex, indices []uint16, tr ebiten.GeoM, color color.Color) {
	for idx := range vertices {
		x, y := tr.Apply(float64(vertices[idx].DstX), float64(vertices[idx].DstY))
		vertices[idx].DstX = float32(x)
		vertices[idx].DstY = float32(y)
	}

	top := &colorm.DrawTrianglesOptions{}
	top.AntiAlias = true

	var c colorm.ColorM
	c.ScaleWithColor(color)

	colorm.DrawTriangles(target, vertices, indices, whiteImage, c, top)
}

// NewHouseImage paints a house sprite of houses.HouseSize pixels.
func NewHouseImage(colors HouseColors) *ebiten.Image {
	const size = houses.HouseSize

	img := ebiten.NewImage(size, size)

	var roof vector.Path
	roof.MoveTo(size*0.5, size*0.05)
	roof.LineTo(size*0.95, size*0.45)
	roof.LineTo(size*0.05, size*0.45)
	roof.Close()

	FillPath(img, &roof, ebiten.GeoM{}, colors.Roof)

	vector.DrawFilledRect(img, size*0.15, size*0.45, size*0.7, size*0.5, colors.Wall, true)
	vector.DrawFilledRect(img, size*0.42, size*0.65, size*0.16, size*0.3, colors.Door, true)

	return img
}

// DrawHouse draws the sprite with its top left corner at pos, scaled to size.
func DrawHouse(target, sprite *ebiten.Image, pos Vec, size float64, toScreen ebiten.GeoM) {
	scale := size / float64(sprite.Bounds().Dx())

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X, pos.Y)
	op.GeoM.Concat(toScreen)

	target.DrawImage(sprite, op)
}

// DrawPanel draws lines of text on a translucent background.
func DrawPanel(target *ebiten.Image, pos Vec, lines []string) {
	const lineHeight = 24.0
	const padding = 8.0

	var width float64
	for _, line := range lines {
		width = max(width, MeasureText(Font16, line).X)
	}

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(PanelColor)
	op.GeoM.Scale(width+2*padding, float64(len(lines))*lineHeight+2*padding)
	op.GeoM.Translate(pos.X-padding, pos.Y-padding)
	target.DrawImage(whiteImage, op)

	for idx, line := range lines {
		DrawTextLeft(target, line, Font16, pos.Add(Vec{Y: float64(idx) * lineHeight}), DebugColor)
	}
}
