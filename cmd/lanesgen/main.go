// Copyright 2026 go-lanes Authors
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

// Command lanesgen regenerates lanes/instantiations.go, the table of
// concrete vector aliases and their memory layouts. The supported set is
// derived from one rule: a shape is kept when its physical lanes fit a
// 64-byte register, with the 3-lane shapes always present at 4 physical
// lanes.
package main

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

type element struct {
	Name  string
	Bytes int
}

// Declaration order of the alias groups in the generated file.
var elements = []element{
	{"float32", 4},
	{"float64", 8},
	{"int8", 1},
	{"int16", 2},
	{"int32", 4},
	{"int64", 8},
	{"uint8", 1},
	{"uint16", 2},
	{"uint32", 4},
	{"uint64", 8},
}

var laneCounts = []int{2, 3, 4, 8, 16, 32, 64}

const registerBytes = 64

type shape struct {
	Name      string
	Elem      string
	Lanes     int
	PhysLanes int
	ElemBytes int
	Bytes     int
}

func shapesFor(e element) []shape {
	titled := cases.Title(language.English).String(e.Name)
	counts := lo.Filter(laneCounts, func(n int, _ int) bool {
		return n == 3 || n*e.Bytes <= registerBytes
	})
	return lo.Map(counts, func(n int, _ int) shape {
		phys := n
		if n == 3 {
			phys = 4
		}
		return shape{
			Name:      fmt.Sprintf("%sx%d", titled, n),
			Elem:      e.Name,
			Lanes:     n,
			PhysLanes: phys,
			ElemBytes: e.Bytes,
			Bytes:     phys * e.Bytes,
		}
	})
}

var fileTemplate = template.Must(template.New("instantiations").Parse(
	`// Code generated by lanesgen. DO NOT EDIT.

package lanes

// Concrete aliases for every supported element type and lane count. The
// widest shape in each family fills a 64-byte register; the 3-lane shapes
// occupy 4 physical lanes.
type (
{{- range $gi, $g := .Groups}}
{{- if $gi}}
{{end}}
{{- range $g}}
	{{.Name}} = Vec{{.Lanes}}[{{.Elem}}]
{{- end}}
{{- end}}
)

// Layouts lists the memory shape of every alias above, in declaration
// order.
var Layouts = []Layout{
{{- range .Rows}}
	{Name: "{{.Name}}", Elem: "{{.Elem}}", Lanes: {{.Lanes}}, PhysLanes: {{.PhysLanes}}, ElemBytes: {{.ElemBytes}}, Bytes: {{.Bytes}}},
{{- end}}
}
`))

func generate(out string) error {
	groups := lo.Map(elements, func(e element, _ int) []shape {
		return shapesFor(e)
	})
	data := struct {
		Groups [][]shape
		Rows   []shape
	}{
		Groups: groups,
		Rows:   lo.Flatten(groups),
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return err
	}
	// Alias blocks come out unaligned; the imports pass gofmts them.
	src, err := imports.Process(out, buf.Bytes(), nil)
	if err != nil {
		return err
	}
	return os.WriteFile(out, src, 0o644)
}

var command = &cobra.Command{
	Use:  "lanesgen [-o output_file]",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out, _ := cmd.PersistentFlags().GetString("output")
		if err := generate(out); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	command.PersistentFlags().StringP("output", "o", "lanes/instantiations.go", "output file for the generated alias table")
}

func main() {
	if err := command.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
