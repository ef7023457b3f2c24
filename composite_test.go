package nvg

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestComposite(t *testing.T) {
	tests := []struct {
		op       CompositeOperation
		src, dst BlendFactor
	}{
		{CompositeSrcOver, gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha},
		{CompositeSrcIn, gputypes.BlendFactorDstAlpha, gputypes.BlendFactorZero},
		{CompositeSrcOut, gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorZero},
		{CompositeAtop, gputypes.BlendFactorDstAlpha, gputypes.BlendFactorOneMinusSrcAlpha},
		{CompositeDstOver, gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorOne},
		{CompositeDstIn, gputypes.BlendFactorZero, gputypes.BlendFactorSrcAlpha},
		{CompositeDstOut, gputypes.BlendFactorZero, gputypes.BlendFactorOneMinusSrcAlpha},
		{CompositeDstAtop, gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorSrcAlpha},
		{CompositeLighter, gputypes.BlendFactorOne, gputypes.BlendFactorOne},
		{CompositeCopy, gputypes.BlendFactorOne, gputypes.BlendFactorZero},
		{CompositeXor, gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorOneMinusSrcAlpha},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			got := Composite(tt.op)
			want := CompositeState{SrcRGB: tt.src, DstRGB: tt.dst, SrcAlpha: tt.src, DstAlpha: tt.dst}
			if got != want {
				t.Errorf("Composite(%v) = %+v, want %+v", tt.op, got, want)
			}
		})
	}
}

func TestCompositeUnknownIsSrcOver(t *testing.T) {
	if got := Composite(CompositeOperation(99)); got != Composite(CompositeSrcOver) {
		t.Errorf("Composite(99) = %+v, want SrcOver", got)
	}
	if got := CompositeOperation(99).String(); got != "Unknown" {
		t.Errorf("String() = %q, want Unknown", got)
	}
}

func TestBlendState(t *testing.T) {
	s := BlendFuncSeparate(
		gputypes.BlendFactorSrcAlpha, gputypes.BlendFactorOneMinusSrcAlpha,
		gputypes.BlendFactorOne, gputypes.BlendFactorZero,
	)
	bs := s.BlendState()
	if bs.Color.SrcFactor != gputypes.BlendFactorSrcAlpha || bs.Color.DstFactor != gputypes.BlendFactorOneMinusSrcAlpha {
		t.Errorf("color component = %+v", bs.Color)
	}
	if bs.Alpha.SrcFactor != gputypes.BlendFactorOne || bs.Alpha.DstFactor != gputypes.BlendFactorZero {
		t.Errorf("alpha component = %+v", bs.Alpha)
	}
	if bs.Color.Operation != gputypes.BlendOperationAdd || bs.Alpha.Operation != gputypes.BlendOperationAdd {
		t.Errorf("operations = %v/%v, want Add", bs.Color.Operation, bs.Alpha.Operation)
	}
}
