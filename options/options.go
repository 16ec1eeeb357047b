package options

type Options struct {
	Width    *int
	Height   *int
	Title    *string
	BitDepth *int
	Headless *bool    // Render into an EGL pbuffer instead of a window
	Duration *float64 // Seconds to render in headless mode
	FPS      *int     // Frame pacing for headless mode
}
