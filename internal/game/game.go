// Package game connects the frame loop and overlay to an ebiten window.
package game

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/fps-viewer/internal/config"
	"github.com/iburimskiy/fps-viewer/internal/frame"
	"github.com/iburimskiy/fps-viewer/internal/imageio"
	"github.com/iburimskiy/fps-viewer/internal/overlay"
	"github.com/iburimskiy/fps-viewer/internal/widget"
)

type Options struct {
	Loop    *frame.Loop
	Image   image.Image
	Face    text.Face
	Watcher *imageio.Watcher
	Log     zerolog.Logger
}

type game struct {
	loop    *frame.Loop
	picture *ebiten.Image
	surface *surface
	events  eventQueue
	watcher *imageio.Watcher
	log     zerolog.Logger
}

func New(opts Options) (*game, error) {
	if opts.Loop == nil || opts.Image == nil || opts.Face == nil {
		return nil, errors.New("game needs a loop, an image and a font")
	}
	b := opts.Image.Bounds()
	return &game{
		loop:    opts.Loop,
		picture: ebiten.NewImageFromImage(opts.Image),
		surface: &surface{face: opts.Face, w: b.Dx(), h: b.Dy()},
		watcher: opts.Watcher,
		log:     opts.Log,
	}, nil
}

func (g *game) Update() error {
	events := g.events.poll()
	g.reloadIfChanged()

	if g.loop.Step(events, g.layout) {
		return ebiten.Termination
	}
	g.log.Trace().Dur("interval", g.loop.LastInterval()).Int("target", g.loop.TargetRate()).
		Bool("paused", g.loop.Paused()).Int("events", len(events)).Msg("frame")
	return nil
}

func (g *game) layout(boxText string) widget.Layout {
	return overlay.LayoutFor(g.surface, boxText)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	screen.DrawImage(g.picture, nil)

	g.surface.dst = screen
	overlay.Draw(g.surface, g.loop.State())
	g.surface.dst = nil
}

// Layout keeps one logical pixel per window pixel so the overlay follows
// resizes.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.surface.w, g.surface.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *game) reloadIfChanged() {
	if g.watcher == nil {
		return
	}
	select {
	case <-g.watcher.Changed():
	default:
		return
	}
	img, err := imageio.Load(g.watcher.Path())
	if err != nil {
		g.log.Warn().Err(err).Msg("reload failed, keeping previous image")
		return
	}
	g.picture.Deallocate()
	g.picture = ebiten.NewImageFromImage(img)
	g.log.Info().Str("path", g.watcher.Path()).Int("width", img.Bounds().Dx()).
		Int("height", img.Bounds().Dy()).Msg("image reloaded")
}

// GraphicsLibrary maps an adapter index to an ebiten back end.
func GraphicsLibrary(adapter int) ebiten.GraphicsLibrary {
	switch adapter {
	case 1:
		return ebiten.GraphicsLibraryOpenGL
	case 2:
		return ebiten.GraphicsLibraryDirectX
	case 3:
		return ebiten.GraphicsLibraryMetal
	}
	return ebiten.GraphicsLibraryAuto
}

type RunOptions struct {
	Width, Height int
	Adapter       int
	Icon          image.Image
}

// Run opens a resizable window and blocks until the loop quits. Pacing is
// done by the frame loop, so vsync is off and ebiten ticks once per frame.
func Run(g *game, opts RunOptions) error {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(false)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	if opts.Icon != nil {
		ebiten.SetWindowIcon([]image.Image{opts.Icon})
	}

	err := ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{
		GraphicsLibrary: GraphicsLibrary(opts.Adapter),
	})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
