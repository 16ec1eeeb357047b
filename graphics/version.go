package graphics

import (
	"fmt"
	"strings"
)

// Minimum implementation versions the rendering core supports.
const (
	minGLMajor   = 3
	minGLMinor   = 3
	minGLESMajor = 3
	minGLESMinor = 0
)

// API identifies which flavor of OpenGL an implementation exposes.
type API int

const (
	OpenGL API = iota
	OpenGLES
)

func (a API) String() string {
	if a == OpenGLES {
		return "OpenGL ES"
	}
	return "OpenGL"
}

// Version is a parsed GL_VERSION value.
type Version struct {
	API   API
	Major int
	Minor int
}

func (v Version) String() string {
	return fmt.Sprintf("%s %d.%d", v.API, v.Major, v.Minor)
}

// AtLeast reports whether v is at least major.minor.
func (v Version) AtLeast(major, minor int) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

// Supported reports whether the rendering core supports v.
func (v Version) Supported() bool {
	if v.API == OpenGLES {
		return v.AtLeast(minGLESMajor, minGLESMinor)
	}
	return v.AtLeast(minGLMajor, minGLMinor)
}

// ParseVersion parses a GL_VERSION string. Desktop GL reports
// "major.minor[.release] vendor-info"; GLES prefixes it with
// "OpenGL ES " (or "OpenGL ES-CM " on old common profiles).
func ParseVersion(raw string) (Version, error) {
	v := Version{API: OpenGL}
	s := strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(s, "OpenGL ES-CM "); ok {
		v.API = OpenGLES
		s = rest
	} else if rest, ok := strings.CutPrefix(s, "OpenGL ES "); ok {
		v.API = OpenGLES
		s = rest
	}
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}

	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return Version{}, fmt.Errorf("unparsable GL_VERSION string %q", raw)
	}
	if _, err := fmt.Sscanf(parts[0]+"."+parts[1], "%d.%d", &v.Major, &v.Minor); err != nil {
		return Version{}, fmt.Errorf("unparsable GL_VERSION string %q", raw)
	}
	return v, nil
}
