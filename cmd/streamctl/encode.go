package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newEncodeCmd())
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <out-file> <value>...",
		Short: "Pack values into a stream file",
		Long: `The encode command parses the given values against the schema and
writes them to a stream file with the selected codec. When more values
than schema letters are given, the schema repeats.

Example:
  streamctl encode --codec sparse --schema uld out.bin 7 -40 2.5
  streamctl encode --schema ub out.bin 1 true 2 false 3 true`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args[0], args[1:])
		},
	}
}

func runEncode(out string, values []string) error {
	schema, err := parseSchema(schemaStr)
	if err != nil {
		return err
	}
	if len(values)%len(schema) != 0 {
		return fmt.Errorf("%d values do not fill the %d-letter schema evenly", len(values), len(schema))
	}
	w, err := newWriteStream(codecName, 64)
	if err != nil {
		return err
	}
	for i, text := range values {
		if err := writeValue(w, schema[i%len(schema)], text); err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
	}
	end := w.Position()
	if err := os.WriteFile(out, w.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Printf("wrote %d values (%d bytes, %s codec) to %s\n", len(values), end, codecName, out)
	return nil
}
