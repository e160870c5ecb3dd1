package proto

import (
	"image"
)

// Control is the contract of a physical (or remote) screen device. The
// compositing core never talks to it directly; a rendered framebuffer
// is handed over via DrawBitmap.
type Control interface {
	Startup() error
	Shutdown() error
	Restart() error

	SetLight(light uint8) error
	SetMirror(mirror bool) error
	SetRotate(landscape bool, invert bool) error

	DrawBitmap(posX uint16, posY uint16, image image.Image) error
}
