package main

import (
	"fmt"
	"os"

	"github.com/oisee/miniucd/pkg/ucd"
	"github.com/oisee/miniucd/pkg/ucdgen"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ucdgen",
		Short: "Compile Unicode Character Database source files into a Go query package",
	}

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newQueryCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ucdgen:", err)
		os.Exit(1)
	}
}

func newGenerateCmd() *cobra.Command {
	var input string
	var output string
	var pkgName string
	var propertyName string
	var defaultValue string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run the ingest/coalesce/intern/select/emit pipeline over a UCD source file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" || propertyName == "" {
				return fmt.Errorf("--input and --property are required")
			}
			f, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("opening %s: %w", input, err)
			}
			defer f.Close()

			records, err := ucdgen.IngestSingleValueProperty(input, f)
			if err != nil {
				return fmt.Errorf("ingest: %w", err)
			}
			fmt.Printf("ingested %d records for %s\n", len(records), propertyName)

			spec := ucdgen.PropertySpec{Name: propertyName, Shape: ucdgen.ShapeCatalog, Default: defaultValue}
			runs, err := ucdgen.Coalesce(spec, records, ucd.MaxCodePoint)
			if err != nil {
				return fmt.Errorf("coalesce: %w", err)
			}
			fmt.Printf("coalesced into %d runs\n", len(runs))

			in := ucdgen.NewInterner()
			values := make([]uint32, len(runs))
			for i, r := range runs {
				values[i] = in.InternString(r.Value)
			}
			width := ucdgen.SelectPropertyWidth(spec, len(in.StringAtoms()))
			compiled := ucdgen.CompiledProperty{
				Spec:       spec,
				Boundaries: ucdgen.Boundaries(runs),
				Values:     values,
				Width:      width,
				// The catalog's distinct values are discovered from the
				// input itself, so the interned atom strings double as
				// the value enum's names: InternString assigns ordinals
				// in the same order StringAtoms() returns them in.
				ValueNames: in.StringAtoms(),
			}
			fmt.Printf("selected %d-bit representation, %d atoms\n", width, len(in.StringAtoms()))

			src, err := ucdgen.Emit(pkgName, []ucdgen.CompiledProperty{compiled})
			if err != nil {
				return fmt.Errorf("emit: %w", err)
			}

			if output == "" {
				_, err = os.Stdout.Write(src)
				return err
			}
			return os.WriteFile(output, src, 0o644)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "path to a single-value-per-codepoint UCD source file")
	cmd.Flags().StringVar(&output, "output", "", "output Go source path (default: stdout)")
	cmd.Flags().StringVar(&pkgName, "package", "ucdgen_out", "package name for the generated file")
	cmd.Flags().StringVar(&propertyName, "property", "", "property name being compiled")
	cmd.Flags().StringVar(&defaultValue, "default", "", "default value for codepoints the input does not mention")
	return cmd
}

func newStatsCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print record and distinct-value counts for a UCD source file without emitting anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				return fmt.Errorf("--input is required")
			}
			f, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("opening %s: %w", input, err)
			}
			defer f.Close()
			records, err := ucdgen.IngestSingleValueProperty(input, f)
			if err != nil {
				return fmt.Errorf("ingest: %w", err)
			}
			distinct := map[string]int{}
			for _, r := range records {
				distinct[r.Value]++
			}
			fmt.Printf("%d records, %d distinct values\n", len(records), len(distinct))
			for v, n := range distinct {
				fmt.Printf("  %-20s %d\n", v, n)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "path to a UCD source file")
	return cmd
}

func newValidateCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Re-check coalescing invariants over an ingested file without emitting Go source",
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				return fmt.Errorf("--input is required")
			}
			f, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("opening %s: %w", input, err)
			}
			defer f.Close()
			records, err := ucdgen.IngestSingleValueProperty(input, f)
			if err != nil {
				return fmt.Errorf("ingest: %w", err)
			}
			spec := ucdgen.PropertySpec{Name: "validate", Shape: ucdgen.ShapeCatalog, Default: ""}
			runs, err := ucdgen.Coalesce(spec, records, ucd.MaxCodePoint)
			if err != nil {
				return fmt.Errorf("coalesce: %w", err)
			}
			prevEnd := -1
			for i, r := range runs {
				if int(r.Start) != prevEnd+1 && i != 0 {
					return &ucdgen.InvariantViolationError{Property: spec.Name, Detail: fmt.Sprintf("run %d starts at %d, expected %d", i, r.Start, prevEnd+1)}
				}
				if r.Start >= r.End {
					return &ucdgen.InvariantViolationError{Property: spec.Name, Detail: fmt.Sprintf("run %d is empty or inverted: [%d,%d)", i, r.Start, r.End)}
				}
				prevEnd = int(r.End) - 1
			}
			fmt.Printf("OK: %d runs, monotonic and gap-free\n", len(runs))
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "path to a UCD source file")
	return cmd
}

func newQueryCmd() *cobra.Command {
	var property string
	var codepoint int

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Look up a single property value for a single codepoint against the compiled pkg/ucd artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			if property == "" {
				return fmt.Errorf("--property is required")
			}
			v, err := ucd.Query(property, rune(codepoint))
			if err != nil {
				return err
			}
			fmt.Printf("U+%04X %s = %v\n", codepoint, property, v)
			return nil
		},
	}
	cmd.Flags().StringVar(&property, "property", "", "property name or alias to query")
	cmd.Flags().IntVar(&codepoint, "codepoint", 0, "codepoint to query, as a decimal integer")
	return cmd
}
