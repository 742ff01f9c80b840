package translator

import (
	"context"
	"fmt"

	gst "github.com/richinsley/goshadertranslator"
)

var translator *gst.ShaderTranslator

func GetTranslator() (*gst.ShaderTranslator, error) {
	if translator == nil {
		t, err := gst.NewShaderTranslator(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to start shader translator: %w", err)
		}
		translator = t
	}
	return translator, nil
}

// Translated is a WebGL2 shader rewritten as desktop GLSL 4.10.
type Translated struct {
	Code string
	// Names maps each declared uniform to the name it has in Code.
	Names map[string]string
}

// Translate converts a WebGL2 shader stage ("vertex" or "fragment").
func Translate(source, stage string) (*Translated, error) {
	t, err := GetTranslator()
	if err != nil {
		return nil, err
	}
	sh, err := t.TranslateShader(source, stage, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return nil, fmt.Errorf("%s shader translation failed: %w", stage, err)
	}
	out := &Translated{
		Code:  sh.Code,
		Names: make(map[string]string, len(sh.Variables)),
	}
	for name, v := range sh.Variables {
		out.Names[name] = v.MappedName
	}
	return out, nil
}
