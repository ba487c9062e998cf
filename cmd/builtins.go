package cmd

import (
	"fmt"
	"github.com/cottand/tsck/frontend/builtins/dts"
	"github.com/cottand/tsck/frontend/ilerr"
	"github.com/spf13/cobra"
	"go/token"
	"os"
	"path/filepath"
)

var BuiltinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Work with the declarations of global names",
}

var BuiltinsGenCmd = &cobra.Command{
	Use:          "gen lib.d.ts",
	Short:        "Generate a builtins artifact from the ambient declarations of a declaration file",
	RunE:         runBuiltinsGen,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var genOutPath *string

func init() {
	genOutPath = BuiltinsGenCmd.Flags().StringP("out", "o", "", "output path (default stdout)")
	BuiltinsCmd.AddCommand(BuiltinsGenCmd)
}

type fileSetProvider struct{ fset *token.FileSet }

func (p fileSetProvider) FileSet() *token.FileSet { return p.fset }

func runBuiltinsGen(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read declarations: %w", err)
	}

	fset := token.NewFileSet()
	artifact, errs, err := dts.Generate(fset, filepath.Base(args[0]), data)
	if err != nil {
		return err
	}
	// unsupported declarations are left out of the artifact
	for _, e := range errs.Errors() {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "skipped:", ilerr.FormatWithCodeAndSource(e, fileSetProvider{fset}))
	}

	out, err := artifact.Marshal()
	if err != nil {
		return err
	}
	if *genOutPath == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(*genOutPath, out, 0o644); err != nil {
		return fmt.Errorf("could not write artifact: %w", err)
	}
	return nil
}
