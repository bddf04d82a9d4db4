// Command qmtile-encode reads a JSON mesh description and writes a
// Quantized Mesh binary tile. It is a thin caller of the qmtile package: it
// contains no encoding logic of its own, only flag parsing and I/O wiring.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tilecoder/qmtile"
)

// meshFile is the on-disk JSON shape accepted on stdin or via -in: flat
// position/index arrays, optional planar bounds, and an optional
// vertex-normals flag.
type meshFile struct {
	Positions     []float64   `json:"positions"`
	Indices       []uint32    `json:"indices"`
	Bounds        *[4]float64 `json:"bounds,omitempty"`
	VertexNormals bool        `json:"vertex_normals,omitempty"`
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "qmtile-encode:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("qmtile-encode", flag.ContinueOnError)
	inPath := fs.String("in", "", "path to the JSON mesh description (default: stdin)")
	outPath := fs.String("out", "", "path to write the binary tile (default: stdout)")
	strict := fs.Bool("strict", false, "fail on a degenerate (zero-radius) bounding sphere")

	if err := fs.Parse(args); err != nil {
		return err
	}

	in := stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	var mf meshFile
	if err := json.NewDecoder(in).Decode(&mf); err != nil {
		return fmt.Errorf("decoding mesh JSON: %w", err)
	}

	opts := []qmtile.Option{qmtile.WithStrict(*strict)}
	if mf.Bounds != nil {
		b := *mf.Bounds
		opts = append(opts, qmtile.WithBounds(b[0], b[1], b[2], b[3]))
	}
	if mf.VertexNormals {
		opts = append(opts, qmtile.WithExtension(qmtile.VertexNormalsExtension{}))
	}

	out := stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		out = f
	}

	mesh := qmtile.Mesh{Positions: mf.Positions, Indices: mf.Indices}

	return qmtile.Encode(out, mesh, opts...)
}
