package shaders

import (
	"strings"
	"testing"
)

func TestSplitCombinedShader(t *testing.T) {

	src := `// Pyramid shader
//shader:vertex
#version 410
void main() {}

//shader:fragment
#version 410
out vec4 c;
void main() { c = vec4(1); }
`

	sources, err := SplitCombinedShader([]byte(src))
	if err != nil {
		t.Fatalf("SplitCombinedShader() error = %v", err)
	}

	if len(sources) != 2 {
		t.Fatalf("got %d sources, want 2", len(sources))
	}

	if sources[0].Type != ShaderType_Vertex || sources[1].Type != ShaderType_Fragment {
		t.Errorf("types = %v, %v", sources[0].Type, sources[1].Type)
	}

	if strings.Contains(string(sources[0].Src), "out vec4") {
		t.Error("vertex source contains fragment code")
	}

	if !strings.HasPrefix(strings.TrimSpace(string(sources[1].Src)), "#version 410") {
		t.Errorf("fragment source = %q", sources[1].Src)
	}
}

func TestSplitCombinedShaderErrors(t *testing.T) {

	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{name: "no markers", src: "#version 410\nvoid main(){}", wantErr: "minimum shader types"},
		{name: "vertex only", src: "//shader:vertex\nvoid main(){}", wantErr: "fragment"},
		{name: "fragment only", src: "//shader:fragment\nvoid main(){}", wantErr: "vertex"},
		{name: "geometry", src: "//shader:vertex\n//shader:geometry\n//shader:fragment\n", wantErr: "unknown shader type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SplitCombinedShader([]byte(tt.src))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}
