package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/shade"
	"github.com/gogpu/shade/internal/shadertest"
)

// To regenerate the golden reports after an intentional format change:
//
//	UPDATE_GOLDEN=1 go test ./cmd/spvreflect/...
func TestGoldenReports(t *testing.T) {
	derived := shade.Options{StagesFromEntryPoint: true, DeriveReadOnly: true}

	tests := []struct {
		name    string
		words   []uint32
		compute bool
		opts    shade.Options
	}{
		{name: "vertex_position", words: shadertest.VertexPosition()},
		{name: "fragment_color", words: shadertest.FragmentColor()},
		{name: "fragment_texture", words: shadertest.FragmentTexture()},
		{name: "push_constants", words: shadertest.PushConstants()},
		{name: "compute_storage", words: shadertest.ComputeStorage(), compute: true},
		{name: "compute_storage_derived", words: shadertest.ComputeStorage(), compute: true, opts: derived},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entry *shade.Entry
			var err error
			if tt.compute {
				entry, err = shade.ParseComputeWithOptions(tt.words, tt.opts)
			} else {
				entry, err = shade.ParseWithOptions(tt.words, tt.opts)
			}
			if err != nil {
				t.Fatalf("reflect: %v", err)
			}

			var buf bytes.Buffer
			if err := writeText(&buf, newReport(tt.name+".spv", entry, nil)); err != nil {
				t.Fatalf("writeText: %v", err)
			}
			compareGolden(t, filepath.Join("testdata", "golden", tt.name+".txt"), buf.String())
		})
	}
}

func compareGolden(t *testing.T, path, actual string) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDEN") != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("create golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(actual), 0o644); err != nil {
			t.Fatalf("write golden file: %v", err)
		}
		t.Logf("updated golden file: %s", path)
		return
	}

	expected, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		t.Fatalf("golden file missing: %s\nRun with UPDATE_GOLDEN=1 to create.\n\nActual output:\n%s", path, actual)
	}
	if err != nil {
		t.Fatalf("read golden file %s: %v", path, err)
	}

	// Git may check files out with \r\n on Windows.
	want := strings.ReplaceAll(string(expected), "\r\n", "\n")
	if want != actual {
		t.Errorf("output differs from golden %s:\n%s", path, diffLines(want, actual))
	}
}

// diffLines shows the first differing line of two texts with some context.
func diffLines(expected, actual string) string {
	el := strings.Split(expected, "\n")
	al := strings.Split(actual, "\n")
	n := max(len(el), len(al))

	line := func(lines []string, i int) string {
		if i < len(lines) {
			return lines[i]
		}
		return ""
	}

	first := -1
	for i := range n {
		if line(el, i) != line(al, i) {
			first = i
			break
		}
	}
	if first < 0 {
		return "(no difference found)"
	}

	const contextLines = 2
	var sb strings.Builder
	fmt.Fprintf(&sb, "first difference at line %d:\n", first+1)
	for i := max(0, first-contextLines); i < min(n, first+contextLines+1); i++ {
		e, a := line(el, i), line(al, i)
		if e == a {
			fmt.Fprintf(&sb, "  %s\n", e)
			continue
		}
		fmt.Fprintf(&sb, "- %s\n+ %s\n", e, a)
	}
	return sb.String()
}
