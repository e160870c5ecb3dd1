package main

import (
	"context"
	"net/http"

	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"gfxscreen/pkg/device/inch35"
	"gfxscreen/pkg/device/remote"
	"gfxscreen/pkg/device/virtual"
	"gfxscreen/pkg/display"
	"gfxscreen/pkg/gfx"
	"gfxscreen/pkg/panel"
	"gfxscreen/pkg/proto"
	"gfxscreen/pkg/snapshot"
)

var serial = flag.String("serial", "ttyACM0", "serial name")
var listen = flag.String("listen", ":9123", "listen addr")
var mock = flag.Bool("mock", false, "use the virtual device")
var store = flag.String("store", "", "snapshot store dir")
var tgToken = flag.String("tg-token", "", "telegram bot token")

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			zap.NewDevelopment,
			func() (*proto.Serial, *http.Server) {
				return proto.NewSerial(*serial),
					&http.Server{Addr: *listen}
			},
			func(s *proto.Serial, logger *zap.Logger) (proto.Control, error) {
				if *mock {
					return virtual.Mock(logger), nil
				}
				return inch35.New(s, logger)
			},
			func() *display.Framebuffer {
				return display.NewFramebuffer(320, 480)
			},
			func(fb *display.Framebuffer) display.Display {
				return fb
			},
			func() (*snapshot.Store, error) {
				return snapshot.NewStore(*store)
			},
			gfx.NewCanvas,
			func() *panel.Params {
				return panel.NewParams(320, 480)
			},
		),
		fx.Invoke(
			remote.Proxy,
			snapshot.Serve,
			runBot,
		),
	).Run()
}

func runBot(dev proto.Control, canvas *gfx.Canvas, params *panel.Params, lifecycle fx.Lifecycle) error {
	if *tgToken == "" {
		return nil
	}

	bot, err := panel.NewBot(*tgToken, dev, canvas, params)
	if err != nil {
		return err
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			bot.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			bot.Stop()
			return nil
		},
	})

	return nil
}
