package options

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/mitchellh/go-homedir"

	"github.com/richinsley/goshadertweak/bindings"
)

// ShaderOptions holds the viewer settings. Fields are pointers so they can
// be bound straight to flags.
type ShaderOptions struct {
	Shader   *string // base path, expands to <base>.v.glsl and <base>.f.glsl
	Fragment *string
	Vertex   *string // empty uses the built-in fullscreen vertex shader
	Sidecar  *string // defaults to the shader path plus ".tweak.yaml"
	Width    *int
	Height   *int
	Title    *string
	WebGL    *bool // sources are WebGL2 GLSL and get translated
	Watch    *bool // reload when a source file changes
	Config   *string
	Help     *bool
}

// ErrHelp is returned by Parse when -help or -h was given.
var ErrHelp = flag.ErrHelp

// Parse reads the command line. Values from a -config file fill in
// anything not given as a flag.
func Parse(args []string, output io.Writer) (*ShaderOptions, error) {
	fs := flag.NewFlagSet("goshadertweak", flag.ContinueOnError)
	fs.SetOutput(output)

	o := &ShaderOptions{
		Shader:   fs.String("shader", "", "Shader base path; loads <base>.v.glsl and <base>.f.glsl"),
		Fragment: fs.String("fragment", "", "Fragment shader file"),
		Vertex:   fs.String("vertex", "", "Vertex shader file (built-in fullscreen quad if empty)"),
		Sidecar:  fs.String("sidecar", "", "Binding file (default <shader>.tweak.yaml)"),
		Width:    fs.Int("width", 512, "Window width"),
		Height:   fs.Int("height", 512, "Window height"),
		Title:    fs.String("title", "", "Window title (default the shader path)"),
		WebGL:    fs.Bool("webgl", false, "Sources are WebGL2 GLSL and are translated to GLSL 4.10"),
		Watch:    fs.Bool("watch", false, "Reload the shader when its files change"),
		Config:   fs.String("config", "", "TOML file with default settings"),
		Help:     fs.Bool("help", false, "Show help message"),
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *o.Help {
		fmt.Fprintln(output, "Shader Uniform Tweaker")
		fs.PrintDefaults()
		return o, ErrHelp
	}
	if fs.NArg() > 0 && *o.Fragment == "" && *o.Shader == "" {
		*o.Fragment = fs.Arg(0)
	}

	if *o.Config != "" {
		path, err := homedir.Expand(*o.Config)
		if err != nil {
			return nil, err
		}
		cfg, err := loadConfig(path)
		if err != nil {
			return nil, err
		}
		set := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		cfg.apply(o, set)
	}

	if err := o.resolve(); err != nil {
		return nil, err
	}
	return o, nil
}

// resolve expands paths and fills in derived defaults.
func (o *ShaderOptions) resolve() error {
	for _, p := range []*string{o.Shader, o.Fragment, o.Vertex, o.Sidecar} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("failed to expand %q: %w", *p, err)
		}
		*p = expanded
	}

	source := *o.Fragment
	if *o.Shader != "" {
		source = *o.Shader
		if *o.Fragment == "" {
			*o.Fragment = *o.Shader + ".f.glsl"
		}
		if *o.Vertex == "" {
			*o.Vertex = *o.Shader + ".v.glsl"
		}
	}
	if *o.Fragment == "" {
		return errors.New("no fragment shader given, use -fragment or -shader")
	}
	if *o.Sidecar == "" {
		*o.Sidecar = bindings.SidecarPath(source)
	}
	if *o.Title == "" {
		*o.Title = source
	}
	if *o.Width <= 0 || *o.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", *o.Width, *o.Height)
	}
	return nil
}

// Sources lists the shader files in the order they are scanned.
func (o *ShaderOptions) Sources() []string {
	if *o.Vertex == "" {
		return []string{*o.Fragment}
	}
	return []string{*o.Vertex, *o.Fragment}
}
