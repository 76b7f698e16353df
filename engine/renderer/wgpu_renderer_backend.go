package renderer

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/xRyann2255/ICHack26-sub001/common"
)

// frameUniformsSize is the byte size of the uniform block as uploaded.
const frameUniformsSize = uint64(unsafe.Sizeof(frameUniforms{}))

// groundExtent is the half-extent of the ground plane in scene units. Large
// enough that the plane edge sits past the far fog distance of every preset.
const groundExtent = float32(4096)

// frameUniforms is the GPU-side uniform block for the flyover pass. Fields are
// padded to vec4 boundaries to satisfy WGSL uniform alignment; the w
// components carry scalars (fog enable flag, sun intensity, overlay opacity).
type frameUniforms struct {
	ViewProjection [16]float32
	FogColor       [4]float32 // rgb, w = enabled (0 or 1)
	FogParams      [4]float32 // x = near, y = far
	SunDirection   [4]float32 // xyz, w = intensity
	SunColor       [4]float32
	Ambient        [4]float32
	CameraPosition [4]float32 // xyz, w = overlay opacity
}

// flyoverShaderSource is the single WGSL program for the flyover pass: the
// ground plane transformed by the camera, shaded with the heatmap overlay,
// a lambert term over the flat up normal, and distance fog toward the sky.
const flyoverShaderSource = `
struct FrameUniforms {
    view_projection: mat4x4<f32>,
    fog_color: vec4<f32>,
    fog_params: vec4<f32>,
    sun_direction: vec4<f32>,
    sun_color: vec4<f32>,
    ambient: vec4<f32>,
    camera_position: vec4<f32>,
};

@group(0) @binding(0) var<uniform> frame: FrameUniforms;
@group(0) @binding(1) var overlay_texture: texture_2d<f32>;
@group(0) @binding(2) var overlay_sampler: sampler;

struct VertexOut {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) world_position: vec3<f32>,
    @location(1) uv: vec2<f32>,
};

@vertex
fn vs_main(@location(0) position: vec3<f32>, @location(1) uv: vec2<f32>) -> VertexOut {
    var out: VertexOut;
    out.clip_position = frame.view_projection * vec4<f32>(position, 1.0);
    out.world_position = position;
    out.uv = uv;
    return out;
}

@fragment
fn fs_main(in: VertexOut) -> @location(0) vec4<f32> {
    let base = vec3<f32>(0.16, 0.17, 0.18);
    let overlay = textureSample(overlay_texture, overlay_sampler, in.uv);
    var color = mix(base, overlay.rgb, overlay.a * frame.camera_position.w);

    let normal = vec3<f32>(0.0, 1.0, 0.0);
    let to_sun = normalize(-frame.sun_direction.xyz);
    let diffuse = max(dot(normal, to_sun), 0.0) * frame.sun_direction.w;
    color = color * (frame.ambient.rgb + frame.sun_color.rgb * diffuse);

    if (frame.fog_color.w > 0.5) {
        let dist = distance(in.world_position, frame.camera_position.xyz);
        let span = max(frame.fog_params.y - frame.fog_params.x, 1.0);
        let fog = clamp((dist - frame.fog_params.x) / span, 0.0, 1.0);
        color = mix(color, frame.fog_color.rgb, fog);
    }

    return vec4<f32>(color, 1.0);
}
`

// rendererBackend abstracts the GPU API from the renderer facade.
type rendererBackend interface {
	// ConfigureSurface (re)configures the surface, depth texture, and cached
	// render pass descriptor for the given pixel size.
	ConfigureSurface(width, height int)

	// SetPresentMode switches frame pacing. Takes effect on the next
	// ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the render pass clear color (the sky).
	SetClearColor(r, g, b float32)

	// SetOverlayTexture uploads the overlay texture and rebuilds the bind
	// group around the new view.
	SetOverlayTexture(stagingData common.TextureStagingData) error

	// RenderFrame records and submits one frame with the given uniforms.
	RenderFrame(uniforms frameUniforms) error

	// Present flips the most recently rendered frame to the surface.
	Present()
}

// wgpuFlyoverBackend is the WebGPU implementation of rendererBackend.
type wgpuFlyoverBackend struct {
	mu *sync.Mutex

	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat        *wgpu.TextureFormat
	depthTextureView     *wgpu.TextureView
	renderPassDescriptor *wgpu.RenderPassDescriptor

	presentMode   wgpu.PresentMode
	surfaceWidth  int
	surfaceHeight int

	pipeline        *wgpu.RenderPipeline
	bindGroupLayout *wgpu.BindGroupLayout
	bindGroup       *wgpu.BindGroup
	uniformBuffer   *wgpu.Buffer
	vertexBuffer    *wgpu.Buffer
	vertexCount     uint32
	overlayView     *wgpu.TextureView
	overlaySampler  *wgpu.Sampler

	// Per-frame state between RenderFrame and Present.
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

var _ rendererBackend = &wgpuFlyoverBackend{}

// newWGPURendererBackend creates the WebGPU instance, surface, adapter,
// device, and queue. The surface is not configured yet; call ConfigureSurface
// with the window's pixel size before rendering.
func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool) rendererBackend {
	runtime.LockOSThread()
	b := &wgpuFlyoverBackend{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeFifo,
	}
	b.surface = b.instance.CreateSurface(surfaceDescriptor)

	a, err := b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    b.surface,
	})
	if err != nil {
		panic(err)
	}
	b.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Flyover Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		panic(err)
	}
	b.device = d
	b.queue = d.GetQueue()

	return b
}

func (b *wgpuFlyoverBackend) ConfigureSurface(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surfaceFormat = &capabilities.Formats[0]
	b.surfaceWidth = width
	b.surfaceHeight = height

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	depthTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth24Plus,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		panic(err)
	}
	b.depthTextureView, err = depthTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}

	// Build the cached render pass descriptor. The color attachment View is
	// set per-frame to the acquired swapchain view; the clear value doubles as
	// the sky color and is updated by SetClearColor.
	clearValue := wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0}
	if b.renderPassDescriptor != nil {
		clearValue = b.renderPassDescriptor.ColorAttachments[0].ClearValue
	}
	b.renderPassDescriptor = &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       nil, // set per-frame to the swapchain view
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: clearValue,
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthTextureView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	}
}

func (b *wgpuFlyoverBackend) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch mode {
	case PresentModeUncapped:
		b.presentMode = wgpu.PresentModeImmediate
	case PresentModeVSync:
		fallthrough
	default:
		b.presentMode = wgpu.PresentModeFifo
	}
}

func (b *wgpuFlyoverBackend) SetClearColor(r, g, bl float32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.renderPassDescriptor == nil {
		return
	}
	b.renderPassDescriptor.ColorAttachments[0].ClearValue = wgpu.Color{
		R: float64(r), G: float64(g), B: float64(bl), A: 1.0,
	}
}

func (b *wgpuFlyoverBackend) SetOverlayTexture(stagingData common.TextureStagingData) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	tex, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:     "Overlay Texture",
		Usage:     wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              stagingData.Width,
			Height:             stagingData.Height,
			DepthOrArrayLayers: 1,
		},
		Format:        wgpu.TextureFormatRGBA8UnormSrgb,
		MipLevelCount: 1,
		SampleCount:   1,
	})
	if err != nil {
		return err
	}

	b.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  tex,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		stagingData.Pixels,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  stagingData.Width * 4,
			RowsPerImage: stagingData.Height,
		},
		&wgpu.Extent3D{
			Width:              stagingData.Width,
			Height:             stagingData.Height,
			DepthOrArrayLayers: 1,
		},
	)

	view, err := tex.CreateView(nil)
	if err != nil {
		return err
	}
	b.overlayView = view

	// The bind group bakes in the texture view, so a new overlay invalidates it.
	b.bindGroup = nil

	return nil
}

func (b *wgpuFlyoverBackend) RenderFrame(uniforms frameUniforms) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameSurface != nil {
		return fmt.Errorf("previous frame surface not yet presented")
	}

	if err := b.ensurePipeline(); err != nil {
		return err
	}
	if err := b.ensureBindGroup(); err != nil {
		return err
	}

	b.queue.WriteBuffer(b.uniformBuffer, 0, common.StructToBytes(&uniforms))

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
	}
	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	b.renderPassDescriptor.ColorAttachments[0].View = view
	pass := encoder.BeginRenderPass(b.renderPassDescriptor)
	pass.SetPipeline(b.pipeline)
	pass.SetBindGroup(0, b.bindGroup, nil)
	pass.SetVertexBuffer(0, b.vertexBuffer, 0, wgpu.WholeSize)
	pass.Draw(b.vertexCount, 1, 0, 0)
	pass.End()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		encoder.Release()
		view.Release()
		surfaceTexture.Release()
		return err
	}
	b.queue.Submit(commandBuffer)
	commandBuffer.Release()
	encoder.Release()

	b.frameSurface = surfaceTexture
	b.frameView = view

	return nil
}

func (b *wgpuFlyoverBackend) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameSurface == nil {
		return
	}

	b.surface.Present()

	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	b.frameSurface.Release()
	b.frameSurface = nil
}

// ensurePipeline builds the flyover render pipeline, ground plane mesh,
// uniform buffer, and sampler on first use. Requires a configured surface.
func (b *wgpuFlyoverBackend) ensurePipeline() error {
	if b.pipeline != nil {
		return nil
	}
	if b.surfaceFormat == nil {
		return fmt.Errorf("surface not configured")
	}

	module, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Flyover Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: flyoverShaderSource,
		},
	})
	if err != nil {
		return err
	}

	layout, err := b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Flyover Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: frameUniformsSize,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	})
	if err != nil {
		return err
	}
	b.bindGroupLayout = layout

	pipelineLayout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Flyover Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{layout},
	})
	if err != nil {
		return err
	}

	pipeline, err := b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Flyover Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: 5 * 4, // pos3 + uv2
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
						{Format: wgpu.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    *b.surfaceFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
	if err != nil {
		return err
	}
	b.pipeline = pipeline

	// Ground plane: two triangles spanning the fog range, uv across the full
	// overlay texture.
	e := groundExtent
	vertices := []float32{
		// x, y, z, u, v
		-e, 0, -e, 0, 0,
		-e, 0, e, 0, 1,
		e, 0, e, 1, 1,
		-e, 0, -e, 0, 0,
		e, 0, e, 1, 1,
		e, 0, -e, 1, 0,
	}
	vertexData := common.SliceToBytes(vertices)
	vbuf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Ground Plane Vertex Buffer",
		Size:  uint64(len(vertexData)),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}
	b.queue.WriteBuffer(vbuf, 0, vertexData)
	b.vertexBuffer = vbuf
	b.vertexCount = 6

	ubuf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Frame Uniform Buffer",
		Size:  frameUniformsSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}
	b.uniformBuffer = ubuf

	sampler, err := b.device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "Overlay Sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeLinear,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return err
	}
	b.overlaySampler = sampler

	return nil
}

// ensureBindGroup builds the frame bind group, creating a transparent 1x1
// placeholder overlay when none has been uploaded yet.
func (b *wgpuFlyoverBackend) ensureBindGroup() error {
	if b.bindGroup != nil {
		return nil
	}

	if b.overlayView == nil {
		if err := b.createPlaceholderOverlay(); err != nil {
			return err
		}
	}

	bindGroup, err := b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Flyover Bind Group",
		Layout: b.bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: b.uniformBuffer, Offset: 0, Size: wgpu.WholeSize},
			{Binding: 1, TextureView: b.overlayView},
			{Binding: 2, Sampler: b.overlaySampler},
		},
	})
	if err != nil {
		return err
	}
	b.bindGroup = bindGroup

	return nil
}

func (b *wgpuFlyoverBackend) createPlaceholderOverlay() error {
	tex, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:     "Placeholder Overlay",
		Usage:     wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              1,
			Height:             1,
			DepthOrArrayLayers: 1,
		},
		Format:        wgpu.TextureFormatRGBA8UnormSrgb,
		MipLevelCount: 1,
		SampleCount:   1,
	})
	if err != nil {
		return err
	}
	b.queue.WriteTexture(
		&wgpu.ImageCopyTexture{Texture: tex, Aspect: wgpu.TextureAspectAll},
		[]byte{0, 0, 0, 0},
		&wgpu.TextureDataLayout{BytesPerRow: 4, RowsPerImage: 1},
		&wgpu.Extent3D{Width: 1, Height: 1, DepthOrArrayLayers: 1},
	)
	view, err := tex.CreateView(nil)
	if err != nil {
		return err
	}
	b.overlayView = view
	return nil
}
