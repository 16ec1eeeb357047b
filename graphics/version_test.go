package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	cases := []struct {
		raw  string
		want Version
	}{
		{"4.1 Metal - 88", Version{OpenGL, 4, 1}},
		{"3.3.0 NVIDIA 535.154.05", Version{OpenGL, 3, 3}},
		{"4.6 (Core Profile) Mesa 23.2.1", Version{OpenGL, 4, 6}},
		{"OpenGL ES 3.2 Mesa 23.2.1", Version{OpenGLES, 3, 2}},
		{"OpenGL ES-CM 1.1 Apple", Version{OpenGLES, 1, 1}},
		{" 3.3 ", Version{OpenGL, 3, 3}},
	}
	for _, tc := range cases {
		got, err := ParseVersion(tc.raw)
		require.NoError(t, err, "raw %q", tc.raw)
		assert.Equal(t, tc.want, got, "raw %q", tc.raw)
	}
}

func TestParseVersionRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "OpenGL ES", "banana", "4"} {
		_, err := ParseVersion(raw)
		assert.Error(t, err, "raw %q", raw)
	}
}

func TestVersionSupported(t *testing.T) {
	assert.True(t, Version{OpenGL, 3, 3}.Supported())
	assert.True(t, Version{OpenGL, 4, 1}.Supported())
	assert.False(t, Version{OpenGL, 3, 2}.Supported())
	assert.False(t, Version{OpenGL, 2, 1}.Supported())
	assert.True(t, Version{OpenGLES, 3, 0}.Supported())
	assert.False(t, Version{OpenGLES, 2, 0}.Supported())
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "OpenGL 4.1", Version{OpenGL, 4, 1}.String())
	assert.Equal(t, "OpenGL ES 3.0", Version{OpenGLES, 3, 0}.String())
}

func TestIncompatibleErrorMessage(t *testing.T) {
	err := &IncompatibleOpenGLError{Version: Version{OpenGL, 2, 1}}
	assert.Contains(t, err.Error(), "OpenGL 2.1")
}
