package main

import (
	"fmt"
	"time"

	"github.com/fogleman/ease"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oliverbestmann/house-roads/houses"
	"github.com/oliverbestmann/house-roads/internal/config"
	"github.com/oliverbestmann/house-roads/mst"
	"github.com/oliverbestmann/house-roads/sequencer"
	"github.com/oliverbestmann/house-roads/tween"
	. "github.com/quasilyte/gmath"
	"go.uber.org/zap"
)

const noHouse = -1

// worldPadding keeps road labels and the enlarged selection on screen.
const worldPadding = 40.0

// RevealedEdge is a tree edge that is being drawn or has been drawn.
type RevealedEdge struct {
	Step mst.Step

	// Progress grows from 0 to 1 while the edge is drawn from its parent.
	Progress float64
}

// Game implements ebiten.Game interface.
type Game struct {
	logger    *zap.Logger
	animation config.AnimationConfig
	houses    *houses.Map

	screenWidth  int
	screenHeight int

	toScreen ebiten.GeoM
	toWorld  ebiten.GeoM

	debug bool
	now   time.Time

	pointer    Pointer
	houseImage *ebiten.Image

	timers tween.Scheduler
	tweens tween.Tweens
	player *sequencer.Player

	selected     int
	selectedSize float64
	steps        mst.Result
	revealed     []*RevealedEdge
	total        float64
	complete     bool
	totalAlpha   float64
}

func NewGame(logger *zap.Logger, animation config.AnimationConfig, m *houses.Map, screenWidth, screenHeight int) *Game {
	g := &Game{
		logger:       logger,
		animation:    animation,
		houses:       m,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		debug:        Debug,
		now:          time.Now(),
		houseImage:   NewHouseImage(HouseColorsIdle),
		selected:     noHouse,
	}

	g.player = sequencer.NewPlayer(
		sequencer.WithInterval(animation.Interval),
		sequencer.WithScheduler(&g.timers),
		sequencer.WithLogger(logger),
	)

	g.updateTransform()

	return g
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	_ = outsideWidth
	_ = outsideHeight

	// stay with a fixed screen size
	return g.screenWidth, g.screenHeight
}

func (g *Game) Update() error {
	// calculate delta time for animations
	now := time.Now()
	dt := now.Sub(g.now)
	g.now = now

	// replay pending tree edges first, so their tweens start this frame
	g.timers.Update(dt)
	g.tweens.Update(dt)

	g.pointer = ReadPointer(g.toWorld)

	g.Input()

	return nil
}

func (g *Game) Input() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.player.Stop() {
		g.logger.Info("animation cancelled", zap.Int("house", g.selected))
	}

	if !g.pointer.Clicked {
		return
	}

	idx, ok := g.houses.HouseAt(g.pointer.World)
	if !ok {
		g.logger.Debug("no house selected",
			zap.Float64("x", g.pointer.World.X),
			zap.Float64("y", g.pointer.World.Y))

		return
	}

	if idx == g.selected && g.player.Busy() {
		// already growing the tree from this house
		return
	}

	if err := g.Select(idx); err != nil {
		g.logger.Error("select house", zap.Int("house", idx), zap.Error(err))
	}
}

// Select makes root the selected house and replays its spanning tree,
// replacing any tree currently shown.
func (g *Game) Select(root int) error {
	steps, err := g.houses.Solve(root)
	if err != nil {
		return err
	}

	g.logger.Info("house selected", zap.Int("house", root), zap.Int("steps", len(steps)))

	// forget the previous tree, including its running reveal tweens
	g.tweens.Clear()
	g.selected = root
	g.steps = steps
	g.revealed = nil
	g.total = 0
	g.complete = false
	g.totalAlpha = 0

	// let the selected house pop up a bit before it settles
	g.selectedSize = houses.HouseSize
	g.tweens.Add(tween.Sequence(
		&tween.Simple{
			Duration: 120 * time.Millisecond,
			Target:   tween.LerpValue(&g.selectedSize, houses.HouseSize, SelectedHouseSize+8),
			Ease:     ease.OutQuad,
		},
		&tween.Simple{
			Duration: 80 * time.Millisecond,
			Target:   tween.LerpValue(&g.selectedSize, SelectedHouseSize+8, SelectedHouseSize),
			Ease:     ease.InOutQuad,
		},
	))

	g.player.Play(steps, g.revealEdge, sequencer.WithOnComplete(g.completed))

	return nil
}

func (g *Game) revealEdge(index int, step mst.Step, total float64) {
	edge := &RevealedEdge{Step: step}
	g.revealed = append(g.revealed, edge)
	g.total = total

	g.tweens.Add(&tween.Simple{
		Duration: g.animation.RevealDuration,
		Target:   tween.LerpValue(&edge.Progress, 0, 1),
		Ease:     ease.OutCubic,
	})

	g.logger.Debug("edge revealed",
		zap.Int("index", index),
		zap.Int("parent", step.Parent),
		zap.Int("child", step.Child),
		zap.Float64("total", total))
}

func (g *Game) completed(total float64) {
	g.total = total
	g.complete = true

	g.tweens.Add(&tween.Simple{
		Duration: 250 * time.Millisecond,
		Target:   tween.LerpValue(&g.totalAlpha, 0, 1),
	})

	g.logger.Info("tree complete", zap.Int("house", g.selected), zap.Float64("total", total))
}

// Draw draws the game screen.
// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor)

	g.drawRoads(screen)
	g.drawTree(screen)
	g.drawHouses(screen, g.selected, g.selectedSize)

	if g.complete {
		msg := "Total time: " + houses.FormatTime(g.total)
		DrawTextLeft(screen, msg, Font24, Vec{X: 16, Y: 16}, withAlpha(TextColor, g.totalAlpha))
	}

	if g.debug {
		g.drawDebugText(screen)
	}
}

func (g *Game) drawRoads(screen *ebiten.Image) {
	for _, road := range g.houses.Roads {
		from := g.houses.Houses[road.From]
		to := g.houses.Houses[road.To]

		StrokeLine(screen, from.Center(), to.Center(), RoadWidth, g.toScreen, RoadColor)

		// the label sits next to the middle of the road
		label := from.Position().Add(to.Position()).Mulf(0.5).Add(Vec{X: 25, Y: 25})
		DrawTextBaseline(screen, "Time: "+houses.FormatTime(road.Time), Font16, TransformVec(g.toScreen, label), TextColor)
	}
}

func (g *Game) drawTree(screen *ebiten.Image) {
	for _, edge := range g.revealed {
		from := g.houses.Houses[edge.Step.Parent].Center()
		to := g.houses.Houses[edge.Step.Child].Center()

		end := Vec{
			X: Lerp(from.X, to.X, edge.Progress),
			Y: Lerp(from.Y, to.Y, edge.Progress),
		}

		StrokeLine(screen, from, end, RoadWidth, g.toScreen, TreeColor)
	}
}

func (g *Game) drawHouses(screen *ebiten.Image, selected int, selectedSize float64) {
	for idx, house := range g.houses.Houses {
		pos := house.Position()
		size := float64(houses.HouseSize)

		if idx == selected {
			// grow around the center of the house
			pos = pos.Sub(splatVec((selectedSize - size) / 2))
			size = selectedSize
		}

		DrawHouse(screen, g.houseImage, pos, size, g.toScreen)
	}
}

func (g *Game) drawDebugText(screen *ebiten.Image) {
	hovered := "none"
	if idx, ok := g.houses.HouseAt(g.pointer.World); ok {
		hovered = fmt.Sprintf("%d", idx)
	}

	selected := "none"
	if g.selected != noHouse {
		selected = fmt.Sprintf("%d", g.selected)
	}

	lines := []string{
		fmt.Sprintf("%1.1f fps", ebiten.ActualFPS()),
		fmt.Sprintf("Houses: %d, roads: %d", len(g.houses.Houses), len(g.houses.Roads)),
		fmt.Sprintf("Selected: %s, hovered: %s", selected, hovered),
		fmt.Sprintf("Steps: %d of %d, total %s", len(g.revealed), len(g.steps), houses.FormatTime(g.total)),
		fmt.Sprintf("Timers: %d, tweens: %d", g.timers.Pending(), g.tweens.Len()),
	}

	pos := Vec{X: 16, Y: float64(g.screenHeight) - float64(len(lines))*24 - 16}
	DrawPanel(screen, pos, lines)
}

func (g *Game) updateTransform() {
	bounds := g.houses.Bounds()

	// houses at negative coordinates are moved into view
	offset := Vec{X: max(0, -bounds.Min.X), Y: max(0, -bounds.Min.Y)}

	worldWidth := bounds.Max.X + offset.X + worldPadding
	worldHeight := bounds.Max.Y + offset.Y + worldPadding

	scale := min(float64(g.screenWidth)/worldWidth, float64(g.screenHeight)/worldHeight)

	g.toScreen = ebiten.GeoM{}
	g.toScreen.Translate(offset.X, offset.Y)
	g.toScreen.Scale(scale, scale)

	// create an inverse of the transform to transform from screen coordinates
	// to world coordinates
	g.toWorld = g.toScreen
	g.toWorld.Invert()
}
