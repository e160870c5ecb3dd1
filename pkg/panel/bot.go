package panel

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"
	"time"

	"github.com/inhies/go-bytesize"
	tele "gopkg.in/telebot.v3"

	"gfxscreen/pkg/display"
	"gfxscreen/pkg/gfx"
	"gfxscreen/pkg/proto"
	"gfxscreen/pkg/snapshot"
)

func NewBot(token string, dev proto.Control, canvas *gfx.Canvas, params *Params) (*Bot, error) {
	pref := tele.Settings{
		Token: token,
		Poller: &tele.LongPoller{
			Timeout: 30 * time.Second,
		},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	return &Bot{
		b:      b,
		dev:    dev,
		canvas: canvas,
		params: params,
	}, nil
}

// Bot is the chat control surface: power, backlight, and a couple of
// live compositing commands against the running canvas.
type Bot struct {
	b      *tele.Bot
	dev    proto.Control
	canvas *gfx.Canvas
	params *Params

	landscape bool
	inverted  bool
	mirrored  bool
}

func (b *Bot) handleBase() {
	b.b.Handle("/open", func(context tele.Context) error {
		if err := b.dev.Startup(); err != nil {
			return context.Reply(fmt.Sprintf("open failed: %s", err))
		}

		b.params.Wakeup()
		return context.Reply("OK")
	})

	b.b.Handle("/close", func(context tele.Context) error {
		if err := b.dev.Shutdown(); err != nil {
			return context.Reply(fmt.Sprintf("close failed: %s", err))
		}

		b.params.Pause()
		return context.Reply("OK")
	})

	b.b.Handle("/light", func(context tele.Context) error {
		in := context.Message().Payload
		if in == "" {
			return context.Reply(strconv.Itoa(int(b.params.ScreenLight)))
		}

		if parsed, err := strconv.ParseUint(in, 10, 8); err == nil {
			b.params.ScreenLight = uint8(parsed)
		}

		if err := b.dev.SetLight(b.params.GetLight()); err != nil {
			return context.Reply(fmt.Sprintf("change failed: %s", err))
		}

		return context.Reply("OK")
	})

	b.b.Handle("/rotate", func(context tele.Context) error {
		b.landscape = !b.landscape
		if context.Message().Payload == "invert" {
			b.inverted = !b.inverted
		}

		if err := b.dev.SetRotate(b.landscape, b.inverted); err != nil {
			return context.Reply(fmt.Sprintf("rotate failed: %s", err))
		}

		b.params.SwapRatio()
		return context.Reply("OK")
	})

	b.b.Handle("/invert", func(context tele.Context) error {
		b.mirrored = !b.mirrored
		if err := b.dev.SetMirror(b.mirrored); err != nil {
			return context.Reply(fmt.Sprintf("mirror failed: %s", err))
		}

		return context.Reply("OK")
	})
}

func (b *Bot) handleCanvas() {
	// Inverts what is currently on screen: the pipeline starts from the
	// background pixel and complements it.
	b.b.Handle("/negate", func(context tele.Context) error {
		b.canvas.With(gfx.BackgroundAsSource(gfx.Invert()), func(it display.Surface) {
			it.FilledRectangle(0, 0, it.Width(), it.Height(), color.White)
		})

		if err := b.present(); err != nil {
			return context.Reply(fmt.Sprintf("present failed: %s", err))
		}

		return context.Reply("OK")
	})

	b.b.Handle("/gray", func(context tele.Context) error {
		b.canvas.With(gfx.Grayscale(255), func(it display.Surface) {
			it.FilledRectangle(0, 0, it.Width(), it.Height(), color.White)
		})

		if err := b.present(); err != nil {
			return context.Reply(fmt.Sprintf("present failed: %s", err))
		}

		return context.Reply("OK")
	})

	b.b.Handle("/snap", func(context tele.Context) error {
		snap, err := snapshot.Take(b.canvas.Display())
		if err != nil {
			return context.Reply(fmt.Sprintf("snapshot failed: %s", err))
		}

		bs := snap.Encode()
		doc := &tele.Document{
			File:     tele.FromReader(bytes.NewReader(bs)),
			FileName: "screen.bmp",
			Caption:  bytesize.New(float64(len(bs))).String(),
		}

		return context.Reply(doc)
	})
}

func (b *Bot) present() error {
	fb, ok := b.canvas.Display().(*display.Framebuffer)
	if !ok {
		return nil
	}

	return b.dev.DrawBitmap(0, 0, fb.Image())
}

func (b *Bot) Start() {
	b.handleBase()
	b.handleCanvas()
	go b.b.Start()
}

func (b *Bot) Stop() {
	b.b.Stop()
}
