package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/richinsley/goshadertweak/bindings"
	"github.com/richinsley/goshadertweak/console"
	"github.com/richinsley/goshadertweak/glfwcontext"
	"github.com/richinsley/goshadertweak/inputs"
	"github.com/richinsley/goshadertweak/options"
	"github.com/richinsley/goshadertweak/renderer"
	"github.com/richinsley/goshadertweak/watcher"
)

// viewer routes window input to the binding session and reports changes.
type viewer struct {
	session *bindings.Session
	console *console.Console
	// set by F2, taken by the render loop after the next frame is drawn
	snapshot bool
}

func (v *viewer) KeyReleased(k inputs.Key) {
	switch k {
	case inputs.KeyHelp:
		v.console.Help(v.session.Table)
		v.console.Values(v.session.Table)
		return
	case inputs.KeySnapshot:
		v.snapshot = true
		return
	}
	name, err := v.session.Dispatcher.KeyReleased(k)
	switch {
	case errors.Is(err, bindings.ErrUnbound):
	case err != nil:
		log.Printf("Warning: %v", err)
	default:
		v.console.Status(name, v.session.Table[name])
	}
}

func (v *viewer) Dragged(dx, dy float64) {
	if !v.session.Dispatcher.Drag(dx, dy) {
		return
	}
	for _, name := range []string{bindings.PanX, bindings.PanY} {
		if d, ok := v.session.Table[name]; ok {
			v.console.Status(name, d)
		}
	}
}

func (v *viewer) Scrolled(amount float64) {
	if v.session.Dispatcher.Scroll(amount) {
		v.console.Status(bindings.Zoom, v.session.Table[bindings.Zoom])
	}
}

// readSources returns the vertex and fragment text. The vertex text is
// empty when no vertex file is configured.
func readSources(opts *options.ShaderOptions) (vertex, fragment string, err error) {
	data, err := os.ReadFile(*opts.Fragment)
	if err != nil {
		return "", "", fmt.Errorf("failed to read fragment shader: %w", err)
	}
	fragment = string(data)
	if *opts.Vertex != "" {
		data, err = os.ReadFile(*opts.Vertex)
		if err != nil {
			return "", "", fmt.Errorf("failed to read vertex shader: %w", err)
		}
		vertex = string(data)
	}
	return vertex, fragment, nil
}

func sources(vertex, fragment string) []string {
	if vertex == "" {
		return []string{fragment}
	}
	return []string{vertex, fragment}
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts, err := options.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, options.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	vertex, fragment, err := readSources(opts)
	if err != nil {
		log.Fatalf("%v", err)
	}
	session, err := bindings.Open(*opts.Sidecar, sources(vertex, fragment)...)
	if err != nil {
		log.Fatalf("Failed to bind uniforms: %v", err)
	}
	log.Printf("Bindings saved to %s", session.Path)

	if err := glfwcontext.InitGraphics(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfwcontext.TerminateGraphics()

	ctx, err := glfwcontext.New(opts)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer ctx.Shutdown()

	r, err := renderer.NewRenderer(ctx, *opts.WebGL)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Shutdown()
	if err := r.Load(vertex, fragment); err != nil {
		log.Fatalf("Failed to load shader: %v", err)
	}

	con := console.New(os.Stdout)
	view := &viewer{session: session, console: con}
	ctx.SetInputHandler(view)
	con.Help(session.Table)

	var changes <-chan string
	if *opts.Watch {
		w, err := watcher.New(opts.Sources()...)
		if err != nil {
			log.Fatalf("Failed to watch shader files: %v", err)
		}
		defer w.Close()
		changes = w.Changes()
	}

	log.Println("Starting interactive render loop...")
	for !ctx.ShouldClose() {
		select {
		case path := <-changes:
			log.Printf("Reloading after change to %s", path)
			if err := reload(opts, session, r); err != nil {
				con.Warn("Reload failed: %v", err)
			} else {
				con.Help(session.Table)
			}
		default:
		}
		r.RenderFrame(session.Table)
		if view.snapshot {
			view.snapshot = false
			if err := saveSnapshot(r, *opts.Fragment); err != nil {
				con.Warn("Snapshot failed: %v", err)
			}
		}
		ctx.EndFrame()
	}
}

// saveSnapshot writes the frame just drawn next to the fragment shader.
func saveSnapshot(r *renderer.Renderer, fragment string) error {
	img, err := r.Snapshot()
	if err != nil {
		return err
	}
	path := renderer.SnapshotPath(fragment, time.Now())
	if err := renderer.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Printf("Snapshot saved to %s", path)
	return nil
}

// reload re-reads the sources, rebuilds the program and merges any new
// declarations into the session. The program is rebuilt first so a shader
// that does not compile leaves the bindings untouched.
func reload(opts *options.ShaderOptions, session *bindings.Session, r *renderer.Renderer) error {
	vertex, fragment, err := readSources(opts)
	if err != nil {
		return err
	}
	if err := r.Load(vertex, fragment); err != nil {
		return err
	}
	return session.Reload(sources(vertex, fragment)...)
}
