package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blockforge/dxtlt/bcdecode"
)

func newInspectCmd() *cobra.Command {
	var format string
	var in string
	var blockIndex int

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Decode one block to RGBA and print its 4x4 pixel grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(in)
			if err != nil {
				return fmt.Errorf("dxtltcli: reading input: %w", err)
			}

			blockSize := f.blockSize()
			start := blockIndex * blockSize
			if start < 0 || start+blockSize > len(data) {
				return fmt.Errorf("dxtltcli: block %d out of range for a %d-byte input", blockIndex, len(data))
			}
			src := data[start : start+blockSize]

			var block *bcdecode.Block
			switch f {
			case FormatBC1:
				block, err = bcdecode.DecodeBC1(src)
			case FormatBC2:
				block, err = bcdecode.DecodeBC2(src)
			case FormatBC3:
				block, err = bcdecode.DecodeBC3(src)
			}
			if err != nil {
				return err
			}

			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					p := block.At(x, y)
					fmt.Printf("#%02X%02X%02X%02X ", p.R, p.G, p.B, p.A)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "block format: bc1, bc2, or bc3 (required)")
	cmd.Flags().StringVar(&in, "in", "", "input file (required)")
	cmd.Flags().IntVar(&blockIndex, "block", 0, "zero-based block index to decode")
	cmd.MarkFlagRequired("format")
	cmd.MarkFlagRequired("in")
	return cmd
}
