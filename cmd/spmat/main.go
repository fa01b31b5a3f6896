// spmat loads two sparse matrices from text files, applies one operation
// selected by a single-character code, and saves the result. All prompting,
// printing and path handling lives here; the sparse package stays silent.
package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/katalvlaran/sparsemat/sparse"
)

// operation code
var OpFlag = cli.StringFlag{
	Name:  "op",
	Usage: "operation code: a (addition), b (subtraction), c (multiplication)",
	Value: "a",
}

func main() {
	app := cli.NewApp()
	app.Name = "spmat"
	app.Usage = "apply one sparse-matrix operation to two matrix files"
	app.ArgsUsage = "<left-file> <right-file> <out-file>"
	app.Flags = []cli.Flag{OpFlag}
	app.Action = spmatAction
	app.Description = `
The spmat command reads two matrices in the rows=/cols=/(r, c, v) text
format, applies the operation selected by --op, and writes the result to
the output path, replacing any existing content.
`

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func spmatAction(ctx *cli.Context) error {
	if ctx.NArg() != 3 {
		return fmt.Errorf("expected <left-file> <right-file> <out-file>, got %d argument(s)", ctx.NArg())
	}

	left, err := sparse.FromFile(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	right, err := sparse.FromFile(ctx.Args().Get(1))
	if err != nil {
		return err
	}

	var result *sparse.Matrix
	switch code := ctx.String(OpFlag.Name); code {
	case "a":
		result, err = sparse.Add(left, right)
	case "b":
		result, err = sparse.Sub(left, right)
	case "c":
		result, err = sparse.Mul(left, right)
	default:
		return fmt.Errorf("unknown operation code %q (want a, b or c)", code)
	}
	if err != nil {
		return err
	}

	return result.Save(ctx.Args().Get(2))
}
