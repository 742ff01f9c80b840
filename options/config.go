package options

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig is the TOML form of ShaderOptions. Absent keys stay nil.
type fileConfig struct {
	Shader   *string `toml:"shader"`
	Fragment *string `toml:"fragment"`
	Vertex   *string `toml:"vertex"`
	Sidecar  *string `toml:"sidecar"`
	Width    *int    `toml:"width"`
	Height   *int    `toml:"height"`
	Title    *string `toml:"title"`
	WebGL    *bool   `toml:"webgl"`
	Watch    *bool   `toml:"watch"`
}

func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg fileConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// apply copies config values into o for every flag not in set.
func (c *fileConfig) apply(o *ShaderOptions, set map[string]bool) {
	setString(o.Shader, c.Shader, !set["shader"])
	setString(o.Fragment, c.Fragment, !set["fragment"] && *o.Fragment == "")
	setString(o.Vertex, c.Vertex, !set["vertex"])
	setString(o.Sidecar, c.Sidecar, !set["sidecar"])
	setString(o.Title, c.Title, !set["title"])
	if c.Width != nil && !set["width"] {
		*o.Width = *c.Width
	}
	if c.Height != nil && !set["height"] {
		*o.Height = *c.Height
	}
	if c.WebGL != nil && !set["webgl"] {
		*o.WebGL = *c.WebGL
	}
	if c.Watch != nil && !set["watch"] {
		*o.Watch = *c.Watch
	}
}

func setString(dst, src *string, ok bool) {
	if src != nil && ok {
		*dst = *src
	}
}
