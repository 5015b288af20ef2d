package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	codecName string
	schemaStr string
)

var rootCmd = &cobra.Command{
	Use:   "streamctl",
	Short: "Encode and inspect compact scalar stream files",
	Long: `streamctl packs scalar values into compact binary stream files and
dumps them back out. The encodings are not self-describing, so every
command needs the codec family and the value type sequence out of band:

  --codec   varint (byte-aligned) or sparse (bit-packed)
  --schema  one letter per value: u=uint32 i=int32 b=bool y=byte
            f=float32 d=float64 l=int64`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().
		StringVar(&codecName, "codec", "varint", "Codec family: varint or sparse")
	rootCmd.PersistentFlags().
		StringVar(&schemaStr, "schema", "", "Value type sequence, one letter per value")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
