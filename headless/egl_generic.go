//go:build !linux

package headless

import (
	"fmt"
	"unsafe"

	"github.com/richinsley/glbind/binding"
)

// Headless is only available on Linux. This stub keeps callers
// compiling on other platforms.
type Headless struct{}

func NewHeadless(width, height int) (*Headless, error) {
	return nil, fmt.Errorf("headless: egl rendering is not supported on this platform")
}

func (h *Headless) Dimensions() (int, int) { return 0, 0 }

func (h *Headless) Bind(s binding.Surface) error {
	return fmt.Errorf("headless: egl rendering is not supported on this platform")
}

func (h *Headless) Unbind() error { return nil }

func (h *Headless) IsCurrent() bool { return false }

func (h *Headless) ProcAddress(name string) unsafe.Pointer { return nil }

func (h *Headless) SwapBuffers() {}

func (h *Headless) Shutdown() {}
