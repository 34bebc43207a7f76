package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Loaded is the outcome of a background load.
type Loaded[T any] struct {
	Value T
	Err   error
}

type Loader[T any] struct {
	Next    func(T) ebiten.Game
	Promise Promise[Loaded[T], string]
	Logger  *zap.Logger

	game ebiten.Game
	err  error

	ScreenWidth, ScreenHeight int
}

func (l *Loader[T]) Update() error {
	switch {
	case l.game != nil:
		return l.game.Update()

	case l.err != nil:
		// keep showing the error, nothing to update

	default:
		if result := l.Promise.Get(); result != nil {
			if result.Err != nil {
				l.err = result.Err
				l.Logger.Error("Error while loading the houses", zap.Error(result.Err))
				return nil
			}

			l.game = l.Next(result.Value)
			l.game.Layout(l.ScreenWidth, l.ScreenHeight)
		}
	}

	return nil
}

func (l *Loader[T]) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor)

	switch {
	case l.game != nil:
		l.game.Draw(screen)

	case l.err != nil:
		l.drawText(screen, "Error while loading the houses:\n"+l.err.Error())

	default:
		desc := "loading..."
		if status := l.Promise.Status(); status != nil {
			desc = *status + "..."
		}

		l.drawText(screen, desc)
	}
}

func (l *Loader[T]) drawText(screen *ebiten.Image, t string) {
	center := imageSizeOf(screen).Mulf(0.5)
	DrawTextCenter(screen, t, Font24, center, TextColor)
}

func (l *Loader[T]) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if l.game != nil {
		return l.game.Layout(outsideWidth, outsideHeight)
	}

	return l.ScreenWidth, l.ScreenHeight
}
