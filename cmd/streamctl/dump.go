package main

import (
	"fmt"

	"github.com/densebyte/streamkit/stream"
	"github.com/spf13/cobra"
)

var (
	dumpOffset int
	dumpCount  int
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpOffset, "offset", 0, "Byte offset to start reading at")
	cmd.Flags().IntVar(&dumpCount, "count", 1, "Number of schema repetitions to read")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the values of a stream file",
		Long: `The dump command reads a stream file with the selected codec and
prints its values, one per line. The file carries no type information,
so the schema must match what the producer wrote, repetition for
repetition.

Example:
  streamctl dump --codec sparse --schema uld --count 10 out.bin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}
}

func runDump(path string) error {
	schema, err := parseSchema(schemaStr)
	if err != nil {
		return err
	}
	f, err := stream.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := newReadStream(codecName, f.Bytes(), dumpOffset)
	if err != nil {
		return err
	}
	for rep := 0; rep < dumpCount; rep++ {
		for _, typ := range schema {
			fmt.Printf("%c %s\n", typ, formatValue(r, typ))
		}
	}
	return nil
}
