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

// Command v128gen generates the per-lane-type reinterpretation shorthands
// (AsInt8, AsUint8, ..., AsFloat64) of v128.Vec128.
//
// Usage:
//
//	v128gen -output as_gen.go -pkg v128
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/v128gen -output as_gen.go -pkg v128
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "as_gen.go", "Output Go source file")
	packageOut = flag.String("pkg", "v128", "Output package name")
)

func main() {
	flag.Parse()

	gen := &Generator{
		OutputFile: *outputFile,
		PackageOut: *packageOut,
		Kinds:      DefaultKinds(),
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %d accessors in %s\n", len(gen.Kinds), *outputFile)
}
