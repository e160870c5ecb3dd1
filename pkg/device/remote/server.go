package remote

import (
	"bytes"
	"image/png"
	"net/rpc"

	"github.com/pkg/errors"

	"gfxscreen/pkg/display"
	"gfxscreen/pkg/proto"
	"gfxscreen/pkg/snapshot"
)

// Proxy exposes a local device (and its framebuffer) over RPC. The HTTP
// server itself is owned by the caller; this only registers the service
// on the default paths.
func Proxy(dev proto.Control, disp display.Display) error {
	svc := &Service{dev: dev, disp: disp}
	if err := rpc.Register(svc); err != nil {
		return err
	}

	rpc.HandleHTTP()
	return nil
}

type Service struct {
	dev  proto.Control
	disp display.Display
}

func (s *Service) Command(name string, _ *EmptyResponse) error {
	switch name {
	case "startup":
		return s.dev.Startup()
	case "shutdown":
		return s.dev.Shutdown()
	case "restart":
		return s.dev.Restart()
	}

	return errors.New("unknown command")
}

func (s *Service) SetLight(light uint8, _ *EmptyResponse) error {
	return s.dev.SetLight(light)
}

func (s *Service) SetMirror(mirror bool, _ *EmptyResponse) error {
	return s.dev.SetMirror(mirror)
}

func (s *Service) SetRotate(req SetRotateRequest, _ *EmptyResponse) error {
	return s.dev.SetRotate(req.Landscape, req.Invert)
}

func (s *Service) DrawBitmap(req *DrawBitmapRequest, _ *EmptyResponse) error {
	img, err := png.Decode(bytes.NewBuffer(req.Image))
	if err != nil {
		return err
	}

	return s.dev.DrawBitmap(req.PosX, req.PosY, img)
}

// Snapshot returns the current framebuffer as a BMP file.
func (s *Service) Snapshot(_ struct{}, resp *SnapshotResponse) error {
	snap, err := snapshot.Take(s.disp)
	if err != nil {
		return err
	}

	resp.BMP = snap.Encode()
	return nil
}
