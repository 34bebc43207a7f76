package main

import "image/color"

type HouseColors struct {
	Roof color.NRGBA
	Wall color.NRGBA
	Door color.NRGBA
}

var HouseColorsIdle = HouseColors{
	Roof: rgbaOf(0xa05e5eff),
	Wall: rgbaOf(0xeee1c4ff),
	Door: rgbaOf(0x6d838eff),
}

var DebugColor color.Color = color.RGBA{R: 0xff, B: 0xff, A: 0xff}
var BackgroundColor color.Color = rgbaOf(0xdbcfb1ff)
var TextColor color.Color = rgbaOf(0x000000ff)
var RoadColor color.Color = rgbaOf(0x808080ff)
var TreeColor color.Color = rgbaOf(0xff0000ff)
var PanelColor color.Color = rgbaOf(0xffffff40)

const RoadWidth = 5.0
const SelectedHouseSize = 100.0
