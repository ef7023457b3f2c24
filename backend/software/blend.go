package software

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/nvg"
)

// factor returns the weight of blend factor f for one channel. sc and dc
// are the source and destination channel values; sa and da the alphas.
// alpha is set when weighting the alpha channel.
func factor(f gputypes.BlendFactor, sc, sa, dc, da float32, alpha bool) float32 {
	switch f {
	case gputypes.BlendFactorZero:
		return 0
	case gputypes.BlendFactorOne:
		return 1
	case gputypes.BlendFactorSrc:
		return sc
	case gputypes.BlendFactorOneMinusSrc:
		return 1 - sc
	case gputypes.BlendFactorSrcAlpha:
		return sa
	case gputypes.BlendFactorOneMinusSrcAlpha:
		return 1 - sa
	case gputypes.BlendFactorDst:
		return dc
	case gputypes.BlendFactorOneMinusDst:
		return 1 - dc
	case gputypes.BlendFactorDstAlpha:
		return da
	case gputypes.BlendFactorOneMinusDstAlpha:
		return 1 - da
	case gputypes.BlendFactorSrcAlphaSaturated:
		if alpha {
			return 1
		}
		return min(sa, 1-da)
	default:
		return 0
	}
}

// blend combines the premultiplied source s with the premultiplied
// destination d using additive blending.
func blend(cs nvg.CompositeState, s, d nvg.Color) nvg.Color {
	ch := func(sc, dc float32) float32 {
		return sc*factor(cs.SrcRGB, sc, s.A, dc, d.A, false) + dc*factor(cs.DstRGB, sc, s.A, dc, d.A, false)
	}
	a := s.A*factor(cs.SrcAlpha, s.A, s.A, d.A, d.A, true) + d.A*factor(cs.DstAlpha, s.A, s.A, d.A, d.A, true)
	return nvg.Color{R: ch(s.R, d.R), G: ch(s.G, d.G), B: ch(s.B, d.B), A: a}
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// blendPixel blends s into the pixel at offset i of pix.
func blendPixel(pix []uint8, i int, cs nvg.CompositeState, s nvg.Color) {
	p := pix[i : i+4 : i+4]
	d := nvg.Color{
		R: float32(p[0]) / 255,
		G: float32(p[1]) / 255,
		B: float32(p[2]) / 255,
		A: float32(p[3]) / 255,
	}
	o := blend(cs, s, d)
	p[0], p[1], p[2], p[3] = to8(o.R), to8(o.G), to8(o.B), to8(o.A)
}
