package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/richinsley/glbind/binding"
	"github.com/richinsley/glbind/glfwcontext"
	"github.com/richinsley/glbind/graphics"
	"github.com/richinsley/glbind/headless"
	"github.com/richinsley/glbind/options"
	"github.com/richinsley/glbind/renderer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := &options.Options{
		Width:    flag.Int("width", 800, "Width of the window or pbuffer"),
		Height:   flag.Int("height", 600, "Height of the window or pbuffer"),
		Title:    flag.String("title", "glbind triangle", "Window title"),
		BitDepth: flag.Int("bitdepth", 8, "Bits per color channel"),
		Headless: flag.Bool("headless", false, "Render into an EGL pbuffer instead of a window"),
		Duration: flag.Float64("duration", 2.0, "Seconds to render in headless mode"),
		FPS:      flag.Int("fps", 60, "Frame pacing for headless mode"),
	}
	help := flag.Bool("help", false, "Show help message")
	flag.Parse()

	if *help {
		fmt.Println("Colored triangle driven through the context-currency lifecycle")
		flag.PrintDefaults()
		return
	}

	if *opts.Headless {
		if err := runHeadless(opts); err != nil {
			log.Fatalf("Headless rendering failed: %v", err)
		}
		return
	}
	if err := runWindowed(opts); err != nil {
		log.Fatalf("Rendering failed: %v", err)
	}
}

func runWindowed(opts *options.Options) error {
	if err := glfwcontext.Init(); err != nil {
		return err
	}
	defer glfwcontext.Terminate()

	win, err := glfwcontext.New(opts, true, nil)
	if err != nil {
		return err
	}
	defer win.Shutdown()

	ctx := binding.New(glfwcontext.NewDriver())
	if err := ctx.MakeCurrent(win); err != nil {
		return err
	}

	display, err := graphics.NewDisplay(ctx)
	if err != nil {
		return err
	}
	log.Printf("Context: %s on %s", display.Context().Version(), display.Context().Renderer())

	scene, err := renderer.NewTriangle()
	if err != nil {
		return err
	}

	// The windowing layer does not push resizes into the context
	// state; forward them ourselves.
	win.SetResizeCallback(func(width, height int) {
		display.SetFramebufferDimensions(width, height)
	})

	// Iconify/restore stands in for the suspend/resume cycle of
	// mobile targets: release the binding and drop the scene on the
	// way down, rebind and rebuild on the way up.
	win.SetIconifyCallback(func(iconified bool) {
		if iconified {
			scene.Destroy()
			scene = nil
			if err := ctx.MakeNotCurrent(); err != nil {
				log.Printf("Failed to release context: %v", err)
			}
			return
		}
		if err := ctx.MakeCurrent(win); err != nil {
			log.Printf("Failed to rebind context: %v", err)
			return
		}
		scene, err = renderer.NewTriangle()
		if err != nil {
			log.Printf("Failed to rebuild scene: %v", err)
		}
	})

	for !win.ShouldClose() {
		if !ctx.IsCurrent() || scene == nil {
			// Suspended; keep servicing events until restored.
			glfwcontext.WaitEvents()
			continue
		}

		frame := display.Draw()
		frame.Clear(0, 0, 0, 0)
		scene.Draw(frame)
		if err := frame.Finish(); err != nil {
			return err
		}
		win.EndFrame()
	}

	if scene != nil {
		scene.Destroy()
	}
	return nil
}

func runHeadless(opts *options.Options) error {
	h, err := headless.NewHeadless(*opts.Width, *opts.Height)
	if err != nil {
		return err
	}
	defer h.Shutdown()

	// EGL context creation leaves the context current.
	ctx := binding.Wrap(h, h)

	display, err := graphics.NewDisplay(ctx)
	if err != nil {
		return err
	}
	log.Printf("Context: %s on %s", display.Context().Version(), display.Context().Renderer())

	scene, err := renderer.NewTriangle()
	if err != nil {
		return err
	}
	defer scene.Destroy()

	frames := int(*opts.Duration * float64(*opts.FPS))
	for i := 0; i < frames; i++ {
		frame := display.Draw()
		frame.Clear(0, 0, 0, 0)
		scene.Draw(frame)
		if err := frame.Finish(); err != nil {
			return err
		}
		h.SwapBuffers()
	}

	w, hgt := display.Context().FramebufferDimensions()
	log.Printf("Rendered %d frames at %dx%d", frames, w, hgt)
	return nil
}
