package nvg

import "github.com/gogpu/gputypes"

// BlendFactor is a GPU blend factor. The canvas only stores factors;
// backends apply them.
type BlendFactor = gputypes.BlendFactor

// CompositeOperation is one of the Porter-Duff style compositing modes.
type CompositeOperation int

// Composite operations.
const (
	CompositeSrcOver CompositeOperation = iota
	CompositeSrcIn
	CompositeSrcOut
	CompositeAtop
	CompositeDstOver
	CompositeDstIn
	CompositeDstOut
	CompositeDstAtop
	CompositeLighter
	CompositeCopy
	CompositeXor
)

var compositeNames = [...]string{
	"SrcOver", "SrcIn", "SrcOut", "Atop", "DstOver", "DstIn",
	"DstOut", "DstAtop", "Lighter", "Copy", "Xor",
}

// String returns the operation name.
func (op CompositeOperation) String() string {
	if op < 0 || int(op) >= len(compositeNames) {
		return "Unknown"
	}
	return compositeNames[op]
}

// CompositeState holds the blend factors of the current composite
// operation, separately for color and alpha.
type CompositeState struct {
	SrcRGB   BlendFactor
	DstRGB   BlendFactor
	SrcAlpha BlendFactor
	DstAlpha BlendFactor
}

// Composite returns the blend factors of op. Unknown operations behave
// like CompositeSrcOver.
func Composite(op CompositeOperation) CompositeState {
	var src, dst BlendFactor
	switch op {
	case CompositeSrcIn:
		src, dst = gputypes.BlendFactorDstAlpha, gputypes.BlendFactorZero
	case CompositeSrcOut:
		src, dst = gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorZero
	case CompositeAtop:
		src, dst = gputypes.BlendFactorDstAlpha, gputypes.BlendFactorOneMinusSrcAlpha
	case CompositeDstOver:
		src, dst = gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorOne
	case CompositeDstIn:
		src, dst = gputypes.BlendFactorZero, gputypes.BlendFactorSrcAlpha
	case CompositeDstOut:
		src, dst = gputypes.BlendFactorZero, gputypes.BlendFactorOneMinusSrcAlpha
	case CompositeDstAtop:
		src, dst = gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorSrcAlpha
	case CompositeLighter:
		src, dst = gputypes.BlendFactorOne, gputypes.BlendFactorOne
	case CompositeCopy:
		src, dst = gputypes.BlendFactorOne, gputypes.BlendFactorZero
	case CompositeXor:
		src, dst = gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorOneMinusSrcAlpha
	default:
		src, dst = gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha
	}
	return BlendFunc(src, dst)
}

// BlendFunc uses the same factors for color and alpha.
func BlendFunc(src, dst BlendFactor) CompositeState {
	return CompositeState{SrcRGB: src, DstRGB: dst, SrcAlpha: src, DstAlpha: dst}
}

// BlendFuncSeparate uses distinct factors for color and alpha.
func BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha BlendFactor) CompositeState {
	return CompositeState{SrcRGB: srcRGB, DstRGB: dstRGB, SrcAlpha: srcAlpha, DstAlpha: dstAlpha}
}

// BlendState converts the factors to a pipeline blend state using
// additive blending.
func (s CompositeState) BlendState() gputypes.BlendState {
	return gputypes.BlendState{
		Color: gputypes.BlendComponent{
			SrcFactor: s.SrcRGB,
			DstFactor: s.DstRGB,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: s.SrcAlpha,
			DstFactor: s.DstAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
	}
}
