// SPDX-License-Identifier: GPL-2.0-only

// Command retrocompressor is a thin CLI over the lzsshuff, lzw, and td0
// packages: it does flag parsing and file I/O only and never duplicates
// codec logic.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dfgordon/retrocompressor/lzsshuff"
	"github.com/dfgordon/retrocompressor/lzw"
	"github.com/dfgordon/retrocompressor/td0"
)

var (
	mode    string
	inPath  string
	outPath string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "retrocompressor",
		Short: "Encode and decode legacy LZSS+Huffman, LZW, and TD0 streams",
	}
	root.AddCommand(newOpCmd("compress"), newOpCmd("expand"))
	return root
}

func newOpCmd(op string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   op,
		Short: op + " a stream with the selected codec",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(op)
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "codec: lzss_huff|lzw|td0 (required)")
	cmd.Flags().StringVarP(&inPath, "input", "i", "", "input file (required)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (required)")
	cmd.MarkFlagRequired("mode")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	return cmd
}

func runOp(op string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	defer logger.Sync()

	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}

	var out []byte
	switch mode {
	case "lzss_huff":
		if op == "compress" {
			out, _, _, err = lzsshuff.Compress(data, lzsshuff.DefaultOptions())
		} else {
			out, _, _, err = lzsshuff.Expand(data, lzsshuff.DefaultOptions())
		}
	case "lzw":
		if op == "compress" {
			out, _, _, err = lzw.Compress(data, lzw.DefaultOptions())
		} else {
			out, _, _, err = lzw.Expand(data, lzw.DefaultOptions())
		}
	case "td0":
		opts := td0.DefaultOptions()
		opts.Logger = logger
		if op == "compress" {
			out, _, _, err = td0.Compress(data, opts)
		} else {
			out, _, _, err = td0.Expand(data, opts)
		}
		if errors.Is(err, td0.ErrAlreadyInForm) {
			logger.Warn("td0: image already in requested form, nothing to do")
			return nil
		}
	default:
		return fmt.Errorf("unknown mode %q: want lzss_huff, lzw, or td0", mode)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}
