// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

// Kind describes one lane type for which an accessor is generated.
type Kind struct {
	GoType string // "int8"
	Suffix string // "Int8"
	Shape  string // "i8x16"
}

// DefaultKinds returns the ten lane types of v128.Lanes in declaration order.
func DefaultKinds() []Kind {
	return []Kind{
		{"int8", "Int8", "i8x16"},
		{"uint8", "Uint8", "u8x16"},
		{"int16", "Int16", "i16x8"},
		{"uint16", "Uint16", "u16x8"},
		{"int32", "Int32", "i32x4"},
		{"uint32", "Uint32", "u32x4"},
		{"int64", "Int64", "i64x2"},
		{"uint64", "Uint64", "u64x2"},
		{"float32", "Float32", "f32x4"},
		{"float64", "Float64", "f64x2"},
	}
}

// Generator renders the accessor file.
type Generator struct {
	OutputFile string // Output path
	PackageOut string // Output package name
	Kinds      []Kind // Lane types to emit accessors for
}

// Run renders the file and writes it to OutputFile.
func (g *Generator) Run() error {
	src, err := g.Render()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(g.OutputFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(g.OutputFile, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", g.OutputFile, err)
	}
	return nil
}

// Render returns the formatted Go source of the accessor file.
func (g *Generator) Render() ([]byte, error) {
	if g.PackageOut == "" {
		return nil, errors.New("package name is required")
	}
	if len(g.Kinds) == 0 {
		return nil, errors.New("no lane types to generate")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by v128gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n", g.PackageOut)
	for _, k := range g.Kinds {
		fmt.Fprintf(&buf, "\n// As%s reinterprets the bits of v as %s lanes (%s).\n", k.Suffix, k.GoType, k.Shape)
		fmt.Fprintf(&buf, "func (v Vec128[T]) As%s() Vec128[%s] {\n", k.Suffix, k.GoType)
		fmt.Fprintf(&buf, "\treturn As[%s](v)\n", k.GoType)
		fmt.Fprintf(&buf, "}\n")
	}

	formatted, err := imports.Process(filepath.Base(g.OutputFile), buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return formatted, nil
}
