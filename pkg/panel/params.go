package panel

import (
	"sync"
	"time"
)

func NewParams(width, height int) *Params {
	return &Params{
		ErrorWait:   3 * time.Second,
		RefreshWait: 30 * time.Second,
		ScreenLight: 50,
		wakeup:      make(chan struct{}, 1),
		width:       width,
		height:      height,
	}
}

// Params holds the runtime knobs of the render loop.
type Params struct {
	l sync.RWMutex

	ErrorWait   time.Duration
	RefreshWait time.Duration
	ScreenLight uint8

	wakeup chan struct{}
	paused bool
	width  int
	height int
}

func (p *Params) Paused() bool {
	p.l.RLock()
	defer p.l.RUnlock()
	return p.paused
}

func (p *Params) WakeupChan() <-chan struct{} {
	return p.wakeup
}

func (p *Params) Pause() {
	p.l.Lock()
	defer p.l.Unlock()
	p.paused = true
}

func (p *Params) Wakeup() {
	p.l.Lock()
	p.paused = false
	p.l.Unlock()

	select {
	case p.wakeup <- struct{}{}:
	default:
	}
}

func (p *Params) SwapRatio() {
	p.l.Lock()
	defer p.l.Unlock()
	p.width, p.height = p.height, p.width
}

func (p *Params) Size() (int, int) {
	p.l.RLock()
	defer p.l.RUnlock()
	return p.width, p.height
}

// GetLight maps the 0-100 user scale onto the inverted 0-255 hardware
// scale.
func (p *Params) GetLight() uint8 {
	return uint8((1 - float64(p.ScreenLight)/100) * 255)
}
