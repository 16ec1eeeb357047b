package graphics

// Tests for the backend adapter and cell plumbing. Constructing a full
// Display needs a live GL context; everything below it is exercised
// against a fake platform driver instead.

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/glbind/binding"
	"github.com/richinsley/glbind/takeable"
)

type stubSurface struct{ w, h int }

func (s *stubSurface) Dimensions() (int, int) { return s.w, s.h }

type stubDriver struct {
	bound   binding.Surface
	bindErr error
	procs   map[string]unsafe.Pointer
}

func (d *stubDriver) Bind(s binding.Surface) error {
	if d.bindErr != nil {
		return d.bindErr
	}
	d.bound = s
	return nil
}

func (d *stubDriver) Unbind() error { d.bound = nil; return nil }

func (d *stubDriver) IsCurrent() bool { return d.bound != nil }

func (d *stubDriver) ProcAddress(name string) unsafe.Pointer { return d.procs[name] }

func newTestBackend(t *testing.T, drv *stubDriver) (*displayBackend, *binding.Context) {
	t.Helper()
	bc := binding.New(drv)
	cell := takeable.New(bc)
	return &displayBackend{cell: cell}, bc
}

func TestBackendDimensionsFallBackToPlaceholder(t *testing.T) {
	b, _ := newTestBackend(t, &stubDriver{})
	w, h := b.FramebufferDimensions()
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)
}

func TestBackendForwardsDimensionsWhileCurrent(t *testing.T) {
	drv := &stubDriver{}
	b, bc := newTestBackend(t, drv)
	require.NoError(t, bc.MakeCurrent(&stubSurface{1024, 768}))

	w, h := b.FramebufferDimensions()
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)

	b.SetFramebufferDimensions(1920, 1080)
	w, h = b.FramebufferDimensions()
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)
}

func TestBackendSetDimensionsDroppedWhileNotCurrent(t *testing.T) {
	b, _ := newTestBackend(t, &stubDriver{})
	b.SetFramebufferDimensions(1920, 1080)
	w, h := b.FramebufferDimensions()
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)
}

func TestBackendIsCurrent(t *testing.T) {
	drv := &stubDriver{}
	b, bc := newTestBackend(t, drv)
	assert.False(t, b.IsCurrent())
	require.NoError(t, bc.MakeCurrent(&stubSurface{640, 480}))
	assert.True(t, b.IsCurrent())
}

func TestBackendProcAddress(t *testing.T) {
	marker := new(int)
	drv := &stubDriver{procs: map[string]unsafe.Pointer{"glViewport": unsafe.Pointer(marker)}}
	b, _ := newTestBackend(t, drv)
	assert.Equal(t, unsafe.Pointer(marker), b.ProcAddress("glViewport"))
	assert.Nil(t, b.ProcAddress("glBogus"))
}

func TestRebindSurfaceKeepsCellPopulated(t *testing.T) {
	drv := &stubDriver{}
	bc := binding.New(drv)
	require.NoError(t, bc.MakeCurrent(&stubSurface{800, 600}))

	d := &Display{cell: takeable.New(bc)}

	next := &stubSurface{320, 240}
	require.NoError(t, d.RebindSurface(next))
	assert.Same(t, next, drv.bound)

	// A failed handoff must also leave the cell holding the context.
	drv.bindErr = errors.New("no resources")
	err := d.RebindSurface(&stubSurface{100, 100})
	require.Error(t, err)
	assert.NotNil(t, d.GLContext())
}
