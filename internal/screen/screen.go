// Package screen converts the framebuffer of the device into RGBA images.
//
// With a persistence of zero, lit pixels use the last palette color and unlit
// pixels the first one. A persistence greater than zero emulates the phosphor
// of a CRT: a pixel that turns off steps down through the palette colors,
// keeping every intermediate color for the given number of frames.
package screen

import (
	"errors"
	"image"
	"image/color"

	"github.com/retroenv/retrochip8/internal/device"
)

// Palette lists the display colors from fully off to fully on.
type Palette []color.RGBA

// DefaultPalette is a dark blue background with a warm white foreground and
// one intermediate grey for fading pixels.
var DefaultPalette = Palette{
	{R: 0x00, G: 0x00, B: 0x44, A: 0xff},
	{R: 0x80, G: 0x80, B: 0x88, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xcc, A: 0xff},
}

// DefaultPersistence is the number of frames every fade color is shown.
const DefaultPersistence = 2

// DefaultScale is the size of a display pixel in window pixels.
const DefaultScale = 10

var errPaletteTooSmall = errors.New("palette needs at least an off and an on color")

// Screen renders display snapshots and keeps the phosphor level per pixel.
type Screen struct {
	palette     Palette
	persistence int
	maxLevel    int

	levels [device.PixelCount]int
}

// New returns a new screen. Negative persistence values are treated as zero.
func New(palette Palette, persistence int) (*Screen, error) {
	if len(palette) < 2 {
		return nil, errPaletteTooSmall
	}
	if persistence < 0 {
		persistence = 0
	}

	s := &Screen{
		palette:     palette,
		persistence: persistence,
		maxLevel:    1,
	}
	if persistence > 0 {
		s.maxLevel = (len(palette) - 1) * persistence
	}
	return s, nil
}

// NewImage returns an image that matches the display dimensions.
func NewImage() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, device.Width, device.Height))
}

// Render draws the display snapshot into the image, which has to be at least
// the size of the display. It returns true if a pixel is still fading and the
// next frame needs to be rendered even if the display did not change.
func (s *Screen) Render(update device.Update, img *image.RGBA) bool {
	fading := false

	for y := 0; y < device.Height; y++ {
		for x := 0; x < device.Width; x++ {
			idx := y*device.Width + x

			if update.Pixels[idx] != 0 {
				s.levels[idx] = s.maxLevel
			} else if s.levels[idx] > 0 {
				s.levels[idx]--
				if s.levels[idx] > 0 {
					fading = true
				}
			}

			img.SetRGBA(x, y, s.color(s.levels[idx]))
		}
	}
	return fading
}

// color returns the palette color for a phosphor level. A level keeps the
// color of the last full persistence step that it passed.
func (s *Screen) color(level int) color.RGBA {
	if s.persistence == 0 {
		if level > 0 {
			return s.palette[len(s.palette)-1]
		}
		return s.palette[0]
	}

	index := (level + s.persistence - 1) / s.persistence
	return s.palette[index]
}

// Reset turns off all pixels immediately.
func (s *Screen) Reset() {
	s.levels = [device.PixelCount]int{}
}
