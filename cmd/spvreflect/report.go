// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/gogpu/shade"
)

// Report is the serialized reflection result of one shader file.
type Report struct {
	Path          string          `json:"path" msgpack:"path"`
	EntryPoint    string          `json:"entry_point,omitempty" msgpack:"entry_point,omitempty"`
	Stage         string          `json:"stage,omitempty" msgpack:"stage,omitempty"`
	WorkgroupSize []uint32        `json:"workgroup_size,omitempty" msgpack:"workgroup_size,omitempty"`
	Inputs        []VariableInfo  `json:"inputs,omitempty" msgpack:"inputs,omitempty"`
	Outputs       []VariableInfo  `json:"outputs,omitempty" msgpack:"outputs,omitempty"`
	Descriptors   []BindingInfo   `json:"descriptors,omitempty" msgpack:"descriptors,omitempty"`
	PushConstants []PushConstInfo `json:"push_constants,omitempty" msgpack:"push_constants,omitempty"`
	Error         string          `json:"error,omitempty" msgpack:"error,omitempty"`
}

// VariableInfo is one stage input or output.
type VariableInfo struct {
	Location  uint32 `json:"location" msgpack:"location"`
	Locations uint32 `json:"locations" msgpack:"locations"`
	Format    string `json:"format" msgpack:"format"`
	Name      string `json:"name,omitempty" msgpack:"name,omitempty"`
}

// BindingInfo is one descriptor binding.
type BindingInfo struct {
	Set      int    `json:"set" msgpack:"set"`
	Binding  int    `json:"binding" msgpack:"binding"`
	Kind     string `json:"kind" msgpack:"kind"`
	Count    uint32 `json:"count" msgpack:"count"`
	Stages   string `json:"stages" msgpack:"stages"`
	ReadOnly bool   `json:"read_only" msgpack:"read_only"`
}

// PushConstInfo is one push-constant range.
type PushConstInfo struct {
	Offset uint32 `json:"offset" msgpack:"offset"`
	Size   uint32 `json:"size" msgpack:"size"`
	Stages string `json:"stages" msgpack:"stages"`
}

func newReport(path string, entry *shade.Entry, err error) Report {
	r := Report{Path: path}
	if err != nil {
		r.Error = err.Error()
		return r
	}

	if entry.EntryPoint != "" {
		r.EntryPoint = entry.EntryPoint
		r.Stage = entry.Stage.String()
	}
	if entry.WorkgroupSize != [3]uint32{} {
		r.WorkgroupSize = entry.WorkgroupSize[:]
	}
	r.Inputs = variableInfos(entry.Input)
	r.Outputs = variableInfos(entry.Output)

	l := entry.Layout
	for _, set := range l.Sets() {
		for _, binding := range l.Bindings(set) {
			desc, _ := l.Descriptor(set, binding)
			r.Descriptors = append(r.Descriptors, BindingInfo{
				Set:      set,
				Binding:  binding,
				Kind:     desc.Kind.String(),
				Count:    desc.ArrayCount,
				Stages:   desc.Stages.String(),
				ReadOnly: desc.ReadOnly,
			})
		}
	}
	for i := range l.NumPushConstantRanges() {
		pc, _ := l.PushConstantRange(i)
		r.PushConstants = append(r.PushConstants, PushConstInfo{
			Offset: pc.Offset,
			Size:   pc.Size,
			Stages: pc.Stages.String(),
		})
	}
	return r
}

func variableInfos(set *shade.InterfaceSet) []VariableInfo {
	var out []VariableInfo
	for _, v := range set.Elements() {
		out = append(out, VariableInfo{
			Location:  v.Location.Start,
			Locations: v.Location.Len(),
			Format:    v.Format.String(),
			Name:      v.Name,
		})
	}
	return out
}

// writeReports encodes reports to w in the named format.
func writeReports(w io.Writer, format string, reports []Report) error {
	switch format {
	case "text":
		for _, r := range reports {
			if err := writeText(w, r); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case "msgpack":
		return msgpack.NewEncoder(w).Encode(reports)
	default:
		return fmt.Errorf("unknown format %q (want text, json or msgpack)", format)
	}
}

func writeText(w io.Writer, r Report) error {
	tw := &textWriter{w: w}
	header := pathColor.Sprint(r.Path)
	switch {
	case r.Error != "":
		tw.printf("%s: %s %s\n", header, errorColor.Sprint("error:"), r.Error)
		return tw.err
	case r.EntryPoint != "":
		tw.printf("%s: %s (%s)\n", header, r.EntryPoint, r.Stage)
	default:
		tw.printf("%s:\n", header)
	}

	if r.WorkgroupSize != nil {
		tw.printf("  workgroup %v\n", r.WorkgroupSize)
	}
	for _, v := range r.Inputs {
		tw.variable("in ", v)
	}
	for _, v := range r.Outputs {
		tw.variable("out", v)
	}
	for _, d := range r.Descriptors {
		access := "read-write"
		if d.ReadOnly {
			access = "read-only"
		}
		tw.printf("  set %d binding %d: %s x%d %s %s\n", d.Set, d.Binding, d.Kind, d.Count, d.Stages, access)
	}
	for _, pc := range r.PushConstants {
		tw.printf("  push constants [%d, %d) %s\n", pc.Offset, pc.Offset+pc.Size, pc.Stages)
	}
	return tw.err
}

// textWriter keeps the first write error.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textWriter) variable(dir string, v VariableInfo) {
	name := v.Name
	if name == "" {
		name = "<unnamed>"
	}
	t.printf("  %s [%d, %d) %s %s\n", dir, v.Location, v.Location+v.Locations, v.Format, name)
}
