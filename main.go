package main

import (
	"image/color"
	"os"

	"go.uber.org/zap"

	"gfxscreen/pkg/device/virtual"
	"gfxscreen/pkg/display"
	"gfxscreen/pkg/gfx"
	"gfxscreen/pkg/snapshot"
)

func main() {
	logger, _ := zap.NewDevelopment()

	dev := virtual.Mock(logger)
	if err := dev.Startup(); err != nil {
		panic(err)
	}

	if err := dev.SetLight(100); err != nil {
		panic(err)
	}

	fb := display.NewFramebuffer(320, 480)
	canvas := gfx.NewCanvas(fb, logger)

	canvas.GradientRectangle(0, 0, fb.Width(), fb.Height(),
		color.RGBA{R: 0x20, G: 0x30, B: 0x80, A: 0xFF},
		color.RGBA{R: 0x00, G: 0x00, B: 0x10, A: 0xFF},
		gfx.GradientVertical)

	canvas.With(gfx.Alpha(128), func(it display.Surface) {
		gfx.RoundRectangle(it, 40, 60, 240, 120, 16, color.White)
	})

	canvas.With(gfx.Additive(), func(it display.Surface) {
		gfx.EllipseGradient(it, 160, 340, 100, 70,
			color.RGBA{R: 0x80, G: 0x00, B: 0x00, A: 0xFF},
			color.RGBA{R: 0x00, G: 0x60, B: 0x00, A: 0xFF},
			gfx.GradientHorizontal)
	})

	canvas.With(gfx.BackgroundAsSource(gfx.Grayscale(255)), func(it display.Surface) {
		it.FilledRectangle(0, 400, fb.Width(), 80, color.White)
	})

	if err := dev.DrawBitmap(0, 0, fb.Image()); err != nil {
		panic(err)
	}

	snap, err := snapshot.Take(fb)
	if err != nil {
		panic(err)
	}

	f, err := os.Create("screen.bmp")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	if _, err := snap.WriteTo(f); err != nil {
		panic(err)
	}
}
