package gpucmd

import (
	"github.com/gogpu/gputypes"
)

// StencilFormat is the depth-stencil attachment format all pipelines use.
const StencilFormat = gputypes.TextureFormatDepth24PlusStencil8

// Pipeline names the fixed state a Draw is executed with.
type Pipeline int

// Pipelines.
const (
	// PipelineDraw draws color without touching the stencil buffer.
	PipelineDraw Pipeline = iota
	// PipelineFillStencil winds fill fans into the stencil buffer:
	// front faces increment, back faces decrement, no color.
	PipelineFillStencil
	// PipelineFillFringe draws fill fringes where the stencil is zero.
	PipelineFillFringe
	// PipelineFillCover covers the fill bounds where the stencil is non
	// zero and resets it.
	PipelineFillCover
	// PipelineStrokeBase draws stroke interiors once per pixel, marking
	// them in the stencil buffer.
	PipelineStrokeBase
	// PipelineStrokeFringe draws stroke fringes where the stencil is zero.
	PipelineStrokeFringe
	// PipelineStrokeClear resets the stencil under a stroke, no color.
	PipelineStrokeClear
)

var pipelineNames = [...]string{
	"Draw", "FillStencil", "FillFringe", "FillCover",
	"StrokeBase", "StrokeFringe", "StrokeClear",
}

// String returns the pipeline name.
func (p Pipeline) String() string {
	if p < 0 || int(p) >= len(pipelineNames) {
		return "Unknown"
	}
	return pipelineNames[p]
}

// PipelineDescriptor is the device independent description of a render
// pipeline running the canvas program.
type PipelineDescriptor struct {
	Label              string
	VertexEntryPoint   string
	FragmentEntryPoint string
	Buffers            []gputypes.VertexBufferLayout
	Primitive          gputypes.PrimitiveState
	DepthStencil       *gputypes.DepthStencilState
	Multisample        gputypes.MultisampleState
	Targets            []gputypes.ColorTargetState
}

// VertexLayout returns the vertex buffer layout: position at location 0
// and UV at location 1.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
			},
		},
	}
}

// BindGroupLayouts returns the layouts of group 0 (view uniforms) and
// group 1 (fragment uniforms, paint texture and sampler).
func BindGroupLayouts() []gputypes.BindGroupLayoutDescriptor {
	return []gputypes.BindGroupLayoutDescriptor{
		{
			Label: "nvg_view_layout",
			Entries: []gputypes.BindGroupLayoutEntry{
				{
					Binding:    0,
					Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
					Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
				},
			},
		},
		{
			Label: "nvg_paint_layout",
			Entries: []gputypes.BindGroupLayoutEntry{
				{
					Binding:    0,
					Visibility: gputypes.ShaderStageFragment,
					Buffer: &gputypes.BufferBindingLayout{
						Type:             gputypes.BufferBindingTypeUniform,
						HasDynamicOffset: true,
						MinBindingSize:   uniformSize,
					},
				},
				{
					Binding:    1,
					Visibility: gputypes.ShaderStageFragment,
					Texture: &gputypes.TextureBindingLayout{
						SampleType:    gputypes.TextureSampleTypeFloat,
						ViewDimension: gputypes.TextureViewDimension2D,
					},
				},
				{
					Binding:    2,
					Visibility: gputypes.ShaderStageFragment,
					Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
				},
			},
		},
	}
}

func face(compare gputypes.CompareFunction, pass gputypes.StencilOperation) gputypes.StencilFaceState {
	return gputypes.StencilFaceState{
		Compare:     compare,
		FailOp:      gputypes.StencilOperationKeep,
		DepthFailOp: gputypes.StencilOperationKeep,
		PassOp:      pass,
	}
}

func stencilState(front, back gputypes.StencilFaceState) *gputypes.DepthStencilState {
	return &gputypes.DepthStencilState{
		Format:            StencilFormat,
		DepthWriteEnabled: false,
		DepthCompare:      gputypes.CompareFunctionAlways,
		StencilFront:      front,
		StencilBack:       back,
		StencilReadMask:   0xFF,
		StencilWriteMask:  0xFF,
	}
}

// DepthStencil returns the stencil state of p.
func (p Pipeline) DepthStencil() *gputypes.DepthStencilState {
	var front, back gputypes.StencilFaceState
	switch p {
	case PipelineFillStencil:
		front = face(gputypes.CompareFunctionAlways, gputypes.StencilOperationIncrementWrap)
		back = face(gputypes.CompareFunctionAlways, gputypes.StencilOperationDecrementWrap)
	case PipelineFillFringe, PipelineStrokeFringe:
		front = face(gputypes.CompareFunctionEqual, gputypes.StencilOperationKeep)
		back = front
	case PipelineFillCover:
		front = face(gputypes.CompareFunctionNotEqual, gputypes.StencilOperationZero)
		front.FailOp = gputypes.StencilOperationZero
		back = front
	case PipelineStrokeBase:
		front = face(gputypes.CompareFunctionEqual, gputypes.StencilOperationIncrementClamp)
		back = front
	case PipelineStrokeClear:
		front = face(gputypes.CompareFunctionAlways, gputypes.StencilOperationZero)
		back = front
	default:
		front = face(gputypes.CompareFunctionAlways, gputypes.StencilOperationKeep)
		back = front
	}
	return stencilState(front, back)
}

// WritesColor reports whether p writes the color target.
func (p Pipeline) WritesColor() bool {
	return p != PipelineFillStencil && p != PipelineStrokeClear
}

// Descriptor describes p for a color target of the given format blended
// with blend.
func (p Pipeline) Descriptor(format gputypes.TextureFormat, blend gputypes.BlendState) PipelineDescriptor {
	target := gputypes.ColorTargetState{
		Format:    format,
		Blend:     &blend,
		WriteMask: gputypes.ColorWriteMaskAll,
	}
	if !p.WritesColor() {
		target.WriteMask = gputypes.ColorWriteMaskNone
	}
	return PipelineDescriptor{
		Label:              "nvg_" + p.String(),
		VertexEntryPoint:   "vs_main",
		FragmentEntryPoint: "fs_main",
		Buffers:            VertexLayout(),
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		DepthStencil: p.DepthStencil(),
		Multisample:  gputypes.DefaultMultisampleState(),
		Targets:      []gputypes.ColorTargetState{target},
	}
}
