package umbra

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// backgroundColor is the deep-space clear color behind every layer.
var backgroundColor = Color{R: 0.015, G: 0.015, B: 0.045, A: 1}

// Draw paints the scene onto screen in the fixed layer order: background,
// stars, black hole glow, event-horizon disc, meteors, lightning, burst
// particles. Draw only reads pool state; all mutation happens in Advance.
func (s *Scene) Draw(screen *ebiten.Image) {
	t0 := debugNow(s.debug)

	screen.Fill(backgroundColor.toRGBA())
	s.drawStars(screen)
	s.drawBlackHole(screen)
	s.drawMeteors(screen)
	s.drawLightning(screen)
	s.drawBurst(screen)

	if s.debug {
		s.stats.drawTime = debugSince(t0)
		s.drawOverlay(screen)
		s.debugLog()
	}
	s.flushScreenshots(screen)
}

// drawSprite draws img centered on (x, y) at the given on-screen radius,
// tinted and blended as requested. img must be a premultiplied sprite from
// the sprite set.
func drawSprite(dst, img *ebiten.Image, x, y, radius float64, tint Color, blend BlendMode) {
	w := float64(img.Bounds().Dx())
	scale := radius * 2 / w
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-radius, y-radius)
	op.ColorScale.Scale(
		float32(tint.R*tint.A),
		float32(tint.G*tint.A),
		float32(tint.B*tint.A),
		float32(tint.A),
	)
	op.Blend = blend.EbitenBlend()
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// drawStars renders the star field additively, so overlapping stars
// brighten instead of occluding. Twinkle is derived from the clock at draw
// time; stars carry no per-frame state.
func (s *Scene) drawStars(screen *ebiten.Image) {
	dot := s.sprites.ensureDot()
	for i := range s.stars {
		st := &s.stars[i]
		a := s.starAlpha(st, s.now)
		drawSprite(screen, dot, st.x, st.y, st.radius*2, Color{1, 1, 1, a}, BlendAdd)
	}
}

// drawBlackHole renders the two concentric layers: the outer glow with
// normal blending, then the event-horizon disc with an XOR blend that
// punches a true-black hole through everything beneath it.
func (s *Scene) drawBlackHole(screen *ebiten.Image) {
	glowR, discR := s.holeRadii()
	s.sprites.ensureHole(glowR, discR, s.pixelRatio, s.cfg.BlackHole.GlowColor)

	inv := 1 / s.pixelRatio
	for _, layer := range []struct {
		img    *ebiten.Image
		radius float64
		blend  BlendMode
	}{
		{s.sprites.holeGlow, glowR, BlendNormal},
		{s.sprites.holeDisc, discR, BlendXor},
	} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(inv, inv)
		op.GeoM.Translate(s.centerX-layer.radius, s.centerY-layer.radius)
		op.Blend = layer.blend.EbitenBlend()
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(layer.img, op)
	}
}

// drawMeteors renders each trail as line segments fading from a warm hue
// at the head to near-transparent white at the tail, width tapering the
// same way, then an additive head glow on top.
func (s *Scene) drawMeteors(screen *ebiten.Image) {
	dot := s.sprites.ensureDot()
	for _, m := range s.meteors.live {
		hr, hg, hb := hsv(m.hue, 0.8, 1)
		n := len(m.trail)
		for i := 1; i < n; i++ {
			// t runs 0 at the tail end to 1 at the head.
			t := float64(i) / float64(n-1)
			c := Color{
				R: lerp(1, hr, t),
				G: lerp(1, hg, t),
				B: lerp(1, hb, t),
				A: lerp(0.03, 0.85, t),
			}
			width := lerp(0.4, m.size, t)
			a, b := m.trail[i-1], m.trail[i]
			vector.StrokeLine(screen,
				float32(a.X), float32(a.Y),
				float32(b.X), float32(b.Y),
				float32(width), c.toRGBA(), true)
		}
		drawSprite(screen, dot, m.x, m.y, m.size*3,
			Color{R: 1, G: 0.95, B: 0.85, A: 0.9}, BlendAdd)
	}
}

// drawLightning renders each bolt twice: a wide low-alpha glow stroke,
// then a thin bright core, both fading linearly with age.
func (s *Scene) drawLightning(screen *ebiten.Image) {
	for i := range s.bolts.bolts {
		b := &s.bolts.bolts[i]
		fade := clamp01(1 - b.age/b.life)
		glow := Color{R: 0.55, G: 0.65, B: 1, A: 0.22 * fade}.toRGBA()
		core := Color{R: 0.92, G: 0.95, B: 1, A: fade}.toRGBA()
		for j := 1; j < len(b.points); j++ {
			p, q := b.points[j-1], b.points[j]
			vector.StrokeLine(screen,
				float32(p.X), float32(p.Y), float32(q.X), float32(q.Y),
				4.5, glow, true)
			vector.StrokeLine(screen,
				float32(p.X), float32(p.Y), float32(q.X), float32(q.Y),
				1.4, core, true)
		}
	}
}

// drawBurst renders the big-bang particles additively. Size and opacity
// both shrink linearly toward zero over each particle's life.
func (s *Scene) drawBurst(screen *ebiten.Image) {
	dot := s.sprites.ensureDot()
	for i := range s.burst.parts {
		p := &s.burst.parts[i]
		remain := clamp01(1 - p.age/p.life)
		radius := p.size * remain
		if radius <= 0.05 {
			continue
		}
		drawSprite(screen, dot, p.x, p.y, radius,
			Color{R: p.r, G: p.g, B: p.b, A: remain}, BlendAdd)
	}
}
