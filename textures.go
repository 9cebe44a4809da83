package umbra

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// generateCircle creates a premultiplied white circle image with the given
// radius. feather is the fraction of the radius over which alpha falls off
// with a smoothstep: 1.0 gives a soft glow dot, values near 0 give a hard
// disc with a thin antialiased rim.
func generateCircle(radius, feather float64) *ebiten.Image {
	size := int(math.Ceil(radius * 2))
	if size < 1 {
		size = 1
	}
	if feather < 0.02 {
		feather = 0.02
	}
	img := ebiten.NewImage(size, size)
	pix := make([]byte, size*size*4)

	cx, cy := radius, radius
	inner := 1 - feather
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			dist := math.Sqrt(dx*dx+dy*dy) / radius

			var alpha float64
			switch {
			case dist >= 1:
				alpha = 0
			case dist <= inner:
				alpha = 1
			default:
				// smoothstep from 1 at the inner edge to 0 at the rim
				t := 1 - (dist-inner)/feather
				alpha = t * t * (3 - 2*t)
			}

			a := uint8(alpha * 255)
			off := (y*size + x) * 4
			pix[off+0] = a // premultiplied white
			pix[off+1] = a
			pix[off+2] = a
			pix[off+3] = a
		}
	}
	img.WritePixels(pix)
	return img
}

// generateGlow creates a radial gradient image: color c at full strength in
// the center, fading to transparent at the rim with a smoothstep falloff.
// Pixels are premultiplied.
func generateGlow(radius float64, c Color) *ebiten.Image {
	size := int(math.Ceil(radius * 2))
	if size < 1 {
		size = 1
	}
	img := ebiten.NewImage(size, size)
	pix := make([]byte, size*size*4)

	cx, cy := radius, radius
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			dist := math.Sqrt(dx*dx+dy*dy) / radius

			var alpha float64
			if dist >= 1 {
				alpha = 0
			} else {
				t := 1 - dist
				alpha = t * t * (3 - 2*t) * c.A
			}

			off := (y*size + x) * 4
			pix[off+0] = uint8(clamp01(c.R*alpha) * 255)
			pix[off+1] = uint8(clamp01(c.G*alpha) * 255)
			pix[off+2] = uint8(clamp01(c.B*alpha) * 255)
			pix[off+3] = uint8(alpha * 255)
		}
	}
	img.WritePixels(pix)
	return img
}

// dotSpriteRadius is the texel radius of the shared soft dot sprite. Stars,
// burst particles, and meteor heads all draw this one image scaled per use,
// so a single modest texture serves every size.
const dotSpriteRadius = 16

// spriteSet holds the lazily generated textures the compositor draws with.
// Size-dependent images (the black hole layers) are rebuilt when marked
// dirty by a resize; the shared dot is generated once.
type spriteSet struct {
	dot       *ebiten.Image
	holeGlow  *ebiten.Image
	holeDisc  *ebiten.Image
	holeDirty bool
}

// ensureDot returns the shared soft dot sprite, generating it on first use.
func (t *spriteSet) ensureDot() *ebiten.Image {
	if t.dot == nil {
		t.dot = generateCircle(dotSpriteRadius, 1.0)
	}
	return t.dot
}

// ensureHole regenerates the black hole layer textures when dirty.
// glowRadius and discRadius are logical pixels; ratio oversamples the
// textures for high-density displays (they are drawn back at 1/ratio).
func (t *spriteSet) ensureHole(glowRadius, discRadius, ratio float64, glow Color) {
	if !t.holeDirty && t.holeGlow != nil {
		return
	}
	if ratio < 1 {
		ratio = 1
	}
	if t.holeGlow != nil {
		t.holeGlow.Deallocate()
	}
	if t.holeDisc != nil {
		t.holeDisc.Deallocate()
	}
	t.holeGlow = generateGlow(glowRadius*ratio, glow)
	t.holeDisc = generateCircle(discRadius*ratio, 0.04)
	t.holeDirty = false
}

// dispose releases all generated textures.
func (t *spriteSet) dispose() {
	if t.dot != nil {
		t.dot.Deallocate()
		t.dot = nil
	}
	if t.holeGlow != nil {
		t.holeGlow.Deallocate()
		t.holeGlow = nil
	}
	if t.holeDisc != nil {
		t.holeDisc.Deallocate()
		t.holeDisc = nil
	}
}
