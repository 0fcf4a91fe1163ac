// Package hardware reports the GPU capability available to the host
// process. The probe never affects pixel output; it exists so a caller can
// tell the difference between a real GPU-backed run and a headless
// fallback.
package hardware

import (
	"context"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"
)

// Info describes the hardware the probe found.
type Info struct {
	// Mode is "gpu" when an adapter was acquired, "cpu" otherwise.
	Mode string
	// Device is a human-readable description, e.g. "Vulkan - NVIDIA
	// GeForce RTX 3080", or "software (headless)" on fallback.
	Device string
}

const (
	modeGPU = "gpu"
	modeCPU = "cpu"

	fallbackDevice = "software (headless)"
)

// Probe requests a high-performance adapter through gogpu/wgpu and reports
// what it finds. It never returns an error: any failure to acquire an
// adapter — missing driver, sandboxed environment, context cancellation —
// is reported as the cpu fallback rather than propagated, since the probe
// is advisory and must not block a render.
func Probe(ctx context.Context) Info {
	type result struct {
		adapter core.AdapterID
		ok      bool
	}

	done := make(chan result, 1)
	go func() {
		instance := core.NewInstance(&gputypes.InstanceDescriptor{
			Backends: gputypes.BackendsPrimary,
		})
		adapter, err := instance.RequestAdapter(&gputypes.RequestAdapterOptions{
			PowerPreference: gputypes.PowerPreferenceHighPerformance,
		})
		done <- result{adapter: adapter, ok: err == nil}
	}()

	select {
	case <-ctx.Done():
		return Info{Mode: modeCPU, Device: fallbackDevice}
	case r := <-done:
		if !r.ok {
			return Info{Mode: modeCPU, Device: fallbackDevice}
		}
		info, err := core.GetAdapterInfo(r.adapter)
		_ = core.AdapterDrop(r.adapter)
		if err != nil {
			return Info{Mode: modeCPU, Device: fallbackDevice}
		}
		return Info{Mode: modeGPU, Device: fmt.Sprintf("%s - %s", info.Backend, info.Name)}
	}
}
