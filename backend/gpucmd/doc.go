// Package gpucmd records canvas rendering as GPU-ready command lists.
//
// A Recorder implements nvg.Renderer without talking to a device. Each
// Flush produces a Frame: one vertex buffer, a uint32 index list, a block
// of fragment uniforms laid out for dynamic offsets, texture uploads and a
// sequence of Draws naming one of a small set of pipelines. An executor
// built on any WebGPU style API creates the pipelines from
// Pipeline.Descriptor, uploads the buffers and replays the draws in order.
//
// The WGSL program shared by all pipelines is embedded in the package and
// compiled to SPIR-V with naga on first use:
//
//	rec := gpucmd.New(800, 600, gpucmd.WithSubmit(func(f *gpucmd.Frame) error {
//		return executor.Submit(f)
//	}))
//	c := nvg.New(rec)
//	c.BeginFrame(&nvg.White)
//	...
//	c.EndFrame()
//
// Bindings used by the program:
//
//	group(0) binding(0)  view uniforms (Frame.ViewBytes)
//	group(1) binding(0)  fragment uniforms, dynamic offset Draw.Uniform
//	group(1) binding(1)  paint texture (Draw.Image, or a 1x1 dummy)
//	group(1) binding(2)  sampler for the paint texture
//
// Non-convex fills use the stencil buffer. The depth-stencil attachment
// must be Depth24PlusStencil8 and cleared to zero at the start of a frame.
package gpucmd
