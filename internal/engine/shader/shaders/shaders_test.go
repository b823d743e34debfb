package shaders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedSource(t *testing.T) {
	src := Embedded()
	for name, text := range map[string]string{"vertex": src.Vertex, "fragment": src.Fragment} {
		if !strings.HasPrefix(text, "#version 410 core") {
			t.Errorf("%s: missing version line", name)
		}
	}
	// Every uniform looked up by Lookup must be declared somewhere.
	for _, u := range []string{
		"uModel", "uView", "uProjection", "uNormalMatrix", "uCameraPosition",
		"uGlobalAmbient", "uLightEnabled", "uLightPosition", "uLightAmbient",
		"uLightDiffuse", "uLightSpecular", "uLightAttenuation", "uSpotDirection",
		"uSpotParams", "uMaterialAmbient", "uMaterialDiffuse", "uMaterialSpecular",
		"uMaterialEmission", "uMaterialShininess", "uUseTexture", "uUseNormalMap",
		"uTexture", "uNormalMap", "uTextureScale", "uRealistic", "uOutline",
	} {
		if !strings.Contains(src.Vertex, u) && !strings.Contains(src.Fragment, u) {
			t.Errorf("uniform %s not declared", u)
		}
	}
}

func TestLoad(t *testing.T) {
	src, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if src != Embedded() {
		t.Error("empty dir should select the embedded program")
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, VertexFile), []byte("vert"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("missing fragment file: expected error")
	}
	if err := os.WriteFile(filepath.Join(dir, FragmentFile), []byte("frag"), 0o644); err != nil {
		t.Fatal(err)
	}
	src, err = Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if src.Vertex != "vert" || src.Fragment != "frag" {
		t.Errorf("LoadSource: got %+v", src)
	}
}

func TestIsShaderFile(t *testing.T) {
	tests := map[string]bool{
		"/a/lighting.vert":  true,
		"lighting.frag":     true,
		"/a/lighting.frag~": false,
		"/a/other.vert":     false,
	}
	for path, want := range tests {
		if got := isShaderFile(path); got != want {
			t.Errorf("isShaderFile(%q): got %v, want %v", path, got, want)
		}
	}
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, FragmentFile)
	if err := os.WriteFile(path, []byte("void main() {}"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Changed():
		if filepath.Base(got) != FragmentFile {
			t.Errorf("Changed: got %s, want %s", got, FragmentFile)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}
