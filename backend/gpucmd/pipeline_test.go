package gpucmd_test

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/nvg"
	"github.com/gogpu/nvg/backend/gpucmd"
)

func TestPipelineStencilStates(t *testing.T) {
	tests := []struct {
		pipeline    gpucmd.Pipeline
		front, back gputypes.StencilOperation
		compare     gputypes.CompareFunction
		color       bool
	}{
		{gpucmd.PipelineDraw, gputypes.StencilOperationKeep, gputypes.StencilOperationKeep, gputypes.CompareFunctionAlways, true},
		{gpucmd.PipelineFillStencil, gputypes.StencilOperationIncrementWrap, gputypes.StencilOperationDecrementWrap, gputypes.CompareFunctionAlways, false},
		{gpucmd.PipelineFillFringe, gputypes.StencilOperationKeep, gputypes.StencilOperationKeep, gputypes.CompareFunctionEqual, true},
		{gpucmd.PipelineFillCover, gputypes.StencilOperationZero, gputypes.StencilOperationZero, gputypes.CompareFunctionNotEqual, true},
		{gpucmd.PipelineStrokeBase, gputypes.StencilOperationIncrementClamp, gputypes.StencilOperationIncrementClamp, gputypes.CompareFunctionEqual, true},
		{gpucmd.PipelineStrokeFringe, gputypes.StencilOperationKeep, gputypes.StencilOperationKeep, gputypes.CompareFunctionEqual, true},
		{gpucmd.PipelineStrokeClear, gputypes.StencilOperationZero, gputypes.StencilOperationZero, gputypes.CompareFunctionAlways, false},
	}
	for _, tt := range tests {
		t.Run(tt.pipeline.String(), func(t *testing.T) {
			ds := tt.pipeline.DepthStencil()
			if ds.Format != gputypes.TextureFormatDepth24PlusStencil8 {
				t.Errorf("Format = %v, want Depth24PlusStencil8", ds.Format)
			}
			if ds.StencilFront.PassOp != tt.front || ds.StencilBack.PassOp != tt.back {
				t.Errorf("PassOp = %v/%v, want %v/%v", ds.StencilFront.PassOp, ds.StencilBack.PassOp, tt.front, tt.back)
			}
			if ds.StencilFront.Compare != tt.compare || ds.StencilBack.Compare != tt.compare {
				t.Errorf("Compare = %v/%v, want %v", ds.StencilFront.Compare, ds.StencilBack.Compare, tt.compare)
			}
			if got := tt.pipeline.WritesColor(); got != tt.color {
				t.Errorf("WritesColor() = %v, want %v", got, tt.color)
			}
		})
	}
}

func TestPipelineCoverClearsOnFail(t *testing.T) {
	ds := gpucmd.PipelineFillCover.DepthStencil()
	if ds.StencilFront.FailOp != gputypes.StencilOperationZero {
		t.Errorf("FailOp = %v, want Zero", ds.StencilFront.FailOp)
	}
}

func TestPipelineDescriptor(t *testing.T) {
	blend := nvg.Composite(nvg.CompositeDstOut).BlendState()
	d := gpucmd.PipelineFillStencil.Descriptor(gputypes.TextureFormatRGBA8Unorm, blend)

	if d.Label != "nvg_FillStencil" {
		t.Errorf("Label = %q, want nvg_FillStencil", d.Label)
	}
	if d.VertexEntryPoint != "vs_main" || d.FragmentEntryPoint != "fs_main" {
		t.Errorf("entry points = %q, %q", d.VertexEntryPoint, d.FragmentEntryPoint)
	}
	if len(d.Targets) != 1 {
		t.Fatalf("len(Targets) = %d, want 1", len(d.Targets))
	}
	tg := d.Targets[0]
	if tg.Format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format = %v, want RGBA8Unorm", tg.Format)
	}
	if tg.WriteMask != gputypes.ColorWriteMaskNone {
		t.Errorf("WriteMask = %v, want None", tg.WriteMask)
	}
	if tg.Blend == nil || *tg.Blend != blend {
		t.Errorf("Blend = %v, want %v", tg.Blend, blend)
	}
	if d.Primitive.CullMode != gputypes.CullModeNone {
		t.Errorf("CullMode = %v, want None", d.Primitive.CullMode)
	}
	if d.Multisample.Count != 1 {
		t.Errorf("Multisample.Count = %d, want 1", d.Multisample.Count)
	}
}

func TestVertexLayout(t *testing.T) {
	l := gpucmd.VertexLayout()
	if len(l) != 1 || l[0].ArrayStride != gpucmd.VertexStride {
		t.Fatalf("layout = %+v, want one buffer of stride %d", l, gpucmd.VertexStride)
	}
	attrs := l[0].Attributes
	if len(attrs) != 2 {
		t.Fatalf("len(Attributes) = %d, want 2", len(attrs))
	}
	for i, want := range []uint64{0, 8} {
		if attrs[i].Offset != want || attrs[i].ShaderLocation != uint32(i) {
			t.Errorf("attribute %d = %+v, want offset %d location %d", i, attrs[i], want, i)
		}
	}
}

func TestBindGroupLayouts(t *testing.T) {
	ls := gpucmd.BindGroupLayouts()
	if len(ls) != 2 {
		t.Fatalf("len = %d, want 2", len(ls))
	}
	if got := len(ls[1].Entries); got != 3 {
		t.Fatalf("paint entries = %d, want 3", got)
	}
	u := ls[1].Entries[0].Buffer
	if u == nil || !u.HasDynamicOffset {
		t.Errorf("fragment uniforms must use a dynamic offset")
	}
	if ls[1].Entries[1].Texture == nil || ls[1].Entries[2].Sampler == nil {
		t.Errorf("bindings 1 and 2 must be texture and sampler")
	}
}

func TestPipelineNames(t *testing.T) {
	if got := gpucmd.Pipeline(42).String(); got != "Unknown" {
		t.Errorf("String() = %q, want Unknown", got)
	}
	if got := gpucmd.PipelineStrokeClear.String(); got != "StrokeClear" {
		t.Errorf("String() = %q, want StrokeClear", got)
	}
}
