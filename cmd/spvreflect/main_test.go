package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/gogpu/shade"
	"github.com/gogpu/shade/internal/shadertest"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func writeShader(t *testing.T, dir, name string, words []uint32) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, shadertest.Bytes(words), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewReport(t *testing.T) {
	entry, err := shade.Parse(shadertest.FragmentTexture())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	r := newReport("tex.spv", entry, nil)
	if r.EntryPoint != "main" || r.Stage != "Fragment" {
		t.Errorf("entry = %q (%q), want main (Fragment)", r.EntryPoint, r.Stage)
	}
	if r.WorkgroupSize != nil {
		t.Errorf("WorkgroupSize = %v, want nil", r.WorkgroupSize)
	}
	if len(r.Inputs) != 1 || r.Inputs[0].Name != "v_uv" || r.Inputs[0].Format != "R32G32Sfloat" {
		t.Errorf("Inputs = %+v", r.Inputs)
	}
	if len(r.Outputs) != 1 || r.Outputs[0].Locations != 1 {
		t.Errorf("Outputs = %+v", r.Outputs)
	}
	want := BindingInfo{Set: 0, Binding: 0, Kind: "CombinedImageSampler(2D)", Count: 1, Stages: "Fragment", ReadOnly: true}
	if len(r.Descriptors) != 1 || r.Descriptors[0] != want {
		t.Errorf("Descriptors = %+v, want [%+v]", r.Descriptors, want)
	}
	if r.PushConstants != nil {
		t.Errorf("PushConstants = %+v, want none", r.PushConstants)
	}

	failed := newReport("bad.spv", nil, errors.New("boom"))
	if failed.Error != "boom" || failed.Descriptors != nil {
		t.Errorf("failed report = %+v", failed)
	}
}

func TestNewReport_Compute(t *testing.T) {
	entry, err := shade.ParseCompute(shadertest.ComputeStorage())
	if err != nil {
		t.Fatalf("ParseCompute() error = %v", err)
	}
	r := newReport("cs.spv", entry, nil)
	if len(r.WorkgroupSize) != 3 || r.WorkgroupSize[0] != 64 {
		t.Errorf("WorkgroupSize = %v, want [64 1 1]", r.WorkgroupSize)
	}
	if r.Inputs != nil || r.Outputs != nil {
		t.Errorf("compute report has interface: %+v %+v", r.Inputs, r.Outputs)
	}
	if len(r.Descriptors) != 2 || r.Descriptors[1].Binding != 1 {
		t.Errorf("Descriptors = %+v", r.Descriptors)
	}
}

func TestWriteReports(t *testing.T) {
	entry, err := shade.Parse(shadertest.PushConstants())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	reports := []Report{
		newReport("pc.spv", entry, nil),
		newReport("bad.spv", nil, errors.New("shade ParseFailure: truncated")),
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeReports(&buf, "text", reports); err != nil {
			t.Fatalf("writeReports() error = %v", err)
		}
		out := buf.String()
		for _, want := range []string{
			"pc.spv: main (Fragment)",
			"out [0, 1) R32G32B32A32Sfloat f_color",
			"push constants [0, 16) Vertex|TessellationControl|TessellationEvaluation|Geometry|Fragment|Compute",
			"bad.spv: error: shade ParseFailure: truncated",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("text output missing %q\n%s", want, out)
			}
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeReports(&buf, "json", reports); err != nil {
			t.Fatalf("writeReports() error = %v", err)
		}
		var got []Report
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(got) != 2 || got[0].PushConstants[0].Size != 16 || got[1].Error == "" {
			t.Errorf("decoded = %+v", got)
		}
	})

	t.Run("msgpack", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeReports(&buf, "msgpack", reports); err != nil {
			t.Fatalf("writeReports() error = %v", err)
		}
		var got []Report
		if err := msgpack.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid msgpack: %v", err)
		}
		if len(got) != 2 || got[0].Path != "pc.spv" || got[0].Outputs[0].Name != "f_color" {
			t.Errorf("decoded = %+v", got)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if err := writeReports(&bytes.Buffer{}, "yaml", reports); err == nil {
			t.Error("writeReports() should reject an unknown format")
		}
	})
}

func TestReflectAll(t *testing.T) {
	dir := t.TempDir()
	frag := writeShader(t, dir, "frag.spv", shadertest.FragmentTexture())
	vert := writeShader(t, dir, "vert.spv", shadertest.VertexPosition())
	garbage := filepath.Join(dir, "garbage.spv")
	if err := os.WriteFile(garbage, []byte{1, 2, 3, 4, 5, 6, 7, 8}, 0o600); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.spv")

	jobs := []shaderJob{{Path: frag}, {Path: garbage}, {Path: vert}, {Path: missing}}
	reports, err := reflectAll(context.Background(), jobs, reflectConfig{Jobs: 2})
	if err != nil {
		t.Fatalf("reflectAll() error = %v", err)
	}
	if len(reports) != len(jobs) {
		t.Fatalf("got %d reports, want %d", len(reports), len(jobs))
	}
	for i, r := range reports {
		if r.Path != jobs[i].Path {
			t.Errorf("reports[%d].Path = %q, want %q", i, r.Path, jobs[i].Path)
		}
	}
	if reports[0].Error != "" || reports[2].Error != "" {
		t.Errorf("valid shaders failed: %q, %q", reports[0].Error, reports[2].Error)
	}
	if !strings.Contains(reports[1].Error, "ParseFailure") {
		t.Errorf("garbage error = %q, want a parse failure", reports[1].Error)
	}
	if reports[3].Error == "" {
		t.Error("missing file should fail")
	}
	if reports[2].Stage != "Vertex" || len(reports[2].Inputs) != 1 {
		t.Errorf("vertex report = %+v", reports[2])
	}
}

func TestReflectAll_Options(t *testing.T) {
	dir := t.TempDir()
	cs := writeShader(t, dir, "cs.spv", shadertest.ComputeStorage())

	cfg := reflectConfig{StagesFromEntryPoint: true, DeriveReadOnly: true}
	reports, err := reflectAll(context.Background(), []shaderJob{{Path: cs, Compute: true}}, cfg)
	if err != nil {
		t.Fatalf("reflectAll() error = %v", err)
	}
	d := reports[0].Descriptors
	if len(d) != 2 {
		t.Fatalf("Descriptors = %+v", d)
	}
	if d[0].Stages != "Compute" || !d[0].ReadOnly || d[1].ReadOnly {
		t.Errorf("Descriptors = %+v, want compute-only with src read-only and dst writable", d)
	}

	reports, err = reflectAll(context.Background(), []shaderJob{{Path: cs, Compute: true, Entry: "nope"}}, cfg)
	if err != nil {
		t.Fatalf("reflectAll() error = %v", err)
	}
	if !strings.Contains(reports[0].Error, "EntryPointNotFound") {
		t.Errorf("Error = %q, want EntryPointNotFound", reports[0].Error)
	}
}

func TestReflectAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := reflectAll(ctx, []shaderJob{{Path: "a.spv"}}, reflectConfig{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("reflectAll() error = %v, want context.Canceled", err)
	}
}

func TestRunJobs(t *testing.T) {
	dir := t.TempDir()
	frag := writeShader(t, dir, "frag.spv", shadertest.FragmentColor())
	out := filepath.Join(dir, "report.json")

	cfg := reflectConfig{Format: "json", Output: out}
	if err := runJobs(context.Background(), &bytes.Buffer{}, []shaderJob{{Path: frag}}, cfg); err != nil {
		t.Fatalf("runJobs() error = %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"f_color"`) {
		t.Errorf("report file = %s", data)
	}

	var buf bytes.Buffer
	jobs := []shaderJob{{Path: frag}, {Path: filepath.Join(dir, "missing.spv")}}
	err = runJobs(context.Background(), &buf, jobs, reflectConfig{Format: "text"})
	if !errors.Is(err, errShadersFailed) {
		t.Errorf("runJobs() error = %v, want errShadersFailed", err)
	}
	if !strings.Contains(buf.String(), "frag.spv: main (Fragment)") {
		t.Errorf("successful report missing from output:\n%s", buf.String())
	}
}

func TestReflectCommand(t *testing.T) {
	dir := t.TempDir()
	frag := writeShader(t, dir, "frag.spv", shadertest.FragmentTexture())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"--quiet", "--color", "off", "reflect", "--stage-masks", "derive", frag})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(buf.String(), "set 0 binding 0: CombinedImageSampler(2D) x1 Fragment read-only") {
		t.Errorf("output:\n%s", buf.String())
	}

	rootCmd.SetArgs([]string{"reflect", "--stage-masks", "sometimes", frag})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Execute() should reject an unknown stage-masks mode")
	}
}

func TestRunDis(t *testing.T) {
	dir := t.TempDir()
	frag := writeShader(t, dir, "frag.spv", shadertest.FragmentColor())

	var buf bytes.Buffer
	disCmd.SetOut(&buf)
	if err := runDis(disCmd, []string{frag}); err != nil {
		t.Fatalf("runDis() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"; SPIR-V", "OpEntryPoint Fragment", `"main"`} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q\n%s", want, out)
		}
	}

	bad := filepath.Join(dir, "bad.spv")
	if err := os.WriteFile(bad, []byte{0, 0, 0, 0}, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := runDis(disCmd, []string{bad}); err == nil {
		t.Error("runDis() should fail on a malformed module")
	}
}
