package gfx

import "gfxscreen/pkg/bitmap"

func NewPipeline() *Pipeline {
	return &Pipeline{readBackground: true}
}

// Pipeline is the ordered chain of effects applied to each pixel.
// Insertion order is execution order. The two derived flags are
// recomputed on every Add:
//
//   - readBackground stays true unless every step declares it does not
//     need the background (a pure performance optimization),
//   - bgAsSource becomes true if any step declares it, and being a
//     functional requirement it forces readBackground back on.
type Pipeline struct {
	steps          []Effect
	readBackground bool
	bgAsSource     bool
}

func (p *Pipeline) Add(effects ...Effect) {
	p.steps = append(p.steps, effects...)
	p.derive()
}

func (p *Pipeline) derive() {
	read := false
	source := false

	for _, e := range p.steps {
		if e.NeedsBackground() {
			read = true
		}
		if e.BackgroundAsSource() {
			source = true
		}
	}

	if len(p.steps) == 0 {
		read = true
	}
	if source {
		read = true
	}

	p.readBackground = read
	p.bgAsSource = source
}

// Apply folds the chain left to right: step i's output becomes step
// i+1's foreground, bg is threaded unchanged. An empty pipeline is the
// identity on fg.
func (p *Pipeline) Apply(x, y int, fg, bg bitmap.Pixel) bitmap.Pixel {
	out := fg
	for _, e := range p.steps {
		out = e.Blend(x, y, out, bg)
	}
	return out
}

// Clear drops all effects and resets the flags to their defaults.
func (p *Pipeline) Clear() {
	p.steps = p.steps[:0]
	p.readBackground = true
	p.bgAsSource = false
}

func (p *Pipeline) Len() int {
	return len(p.steps)
}

// ReadsBackground reports whether applying the pipeline requires the
// current framebuffer pixel.
func (p *Pipeline) ReadsBackground() bool {
	return p.readBackground
}

// BackgroundAsSource reports whether the chain starts from the
// background pixel instead of the incoming color.
func (p *Pipeline) BackgroundAsSource() bool {
	return p.bgAsSource
}
