package assets

import (
	"embed"
	"fmt"
)

//go:embed shaders/*.vert shaders/*.frag
var shaderFS embed.FS

// LoadShader returns an embedded GLSL file as a null-terminated string for
// OpenGL.
func LoadShader(name string) (string, error) {
	b, err := shaderFS.ReadFile("shaders/" + name)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	// Ensure null termination for gl.Str
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}

// GUIShaders returns the vertex and fragment sources of the GUI material.
func GUIShaders() (vs, fs string, err error) {
	if vs, err = LoadShader("gui.vert"); err != nil {
		return "", "", err
	}
	if fs, err = LoadShader("gui.frag"); err != nil {
		return "", "", err
	}
	return vs, fs, nil
}
