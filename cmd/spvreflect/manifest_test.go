package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/shade/internal/shadertest"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "shade.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "abs.spv")
	path := writeManifest(t, dir, `
[[shader]]
path = "shaders/blit.frag.spv"

[[shader]]
path = "shaders/cull.comp.spv"
compute = true
entry = "cull"

[[shader]]
path = "`+filepath.ToSlash(abs)+`"
`)

	jobs, err := loadManifest(path)
	if err != nil {
		t.Fatalf("loadManifest() error = %v", err)
	}
	want := []shaderJob{
		{Path: filepath.Join(dir, "shaders", "blit.frag.spv")},
		{Path: filepath.Join(dir, "shaders", "cull.comp.spv"), Compute: true, Entry: "cull"},
		{Path: abs},
	}
	if len(jobs) != len(want) {
		t.Fatalf("got %d jobs, want %d", len(jobs), len(want))
	}
	for i := range want {
		if jobs[i] != want[i] {
			t.Errorf("jobs[%d] = %+v, want %+v", i, jobs[i], want[i])
		}
	}
}

func TestLoadManifest_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"invalid toml", "[[shader]\npath = 1", "failed to parse TOML"},
		{"no shaders", "title = \"x\"\n", "no [[shader]] entries"},
		{"no path", "[[shader]]\ncompute = true\n", "shader 1 has no path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.body)
			_, err := loadManifest(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("loadManifest() error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestManifestCommand(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "shaders"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeShader(t, filepath.Join(dir, "shaders"), "tex.spv", shadertest.FragmentTexture())
	writeShader(t, filepath.Join(dir, "shaders"), "cs.spv", shadertest.ComputeStorage())
	path := writeManifest(t, dir, `
[[shader]]
path = "shaders/tex.spv"

[[shader]]
path = "shaders/cs.spv"
compute = true
`)

	var buf strings.Builder
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"--quiet", "--color", "off", "manifest", "--format", "text", path})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"tex.spv: main (Fragment)", "cs.spv: main (GLCompute)", "workgroup [64 1 1]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}
