package main

import (
	"bufio"
	goflag "flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"hackasm/pkg/asm"
	"hackasm/pkg/utils"
)

var (
	outPath     string
	dumpSymbols bool
)

var rootCmd = &cobra.Command{
	Use:   "hackasm [file.asm]",
	Short: "Two-pass assembler for the Hack machine",
	Long: `hackasm translates Hack assembly source into 16-bit binary
machine instructions, one per output line.

Labels declared as (NAME) resolve to the address of the next
instruction; other symbols are variables, assigned RAM slots from 16
upward in order of first use. Lines with an unrecognized mnemonic are
reported and skipped; the rest of the program still assembles.

With no argument the input and output file names are read from an
interactive prompt.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file path (default: input with .hack extension)")
	rootCmd.Flags().BoolVar(&dumpSymbols, "dump-symbols", false, "pretty-print the final symbol table to stderr")

	// glog's -v / -vmodule / -logtostderr flags.
	rootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
	goflag.Set("logtostderr", "true")
}

func run(args []string) error {
	var inPath string
	if len(args) == 1 {
		inPath = args[0]
	} else {
		stdin := bufio.NewScanner(os.Stdin)

		fmt.Print("Enter the input file name\n")
		if !stdin.Scan() {
			return fmt.Errorf("no input file name given")
		}
		inPath = strings.TrimSpace(stdin.Text())

		if outPath == "" {
			fmt.Print("Enter the output file name\n")
			if stdin.Scan() {
				outPath = strings.TrimSpace(stdin.Text())
			}
		}
	}
	fullPath, _, err := utils.GetPathInfo(inPath)
	if err != nil {
		return fmt.Errorf("resolving input path: %w", err)
	}
	if outPath == "" {
		outPath = utils.OutputPath(fullPath)
	}

	in, err := os.Open(fullPath)
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	glog.V(1).Infof("assembling %s -> %s", fullPath, outPath)

	a := asm.NewAssembler()
	if err := a.AssembleStream(in, out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	if dumpSymbols {
		pp.Fprintf(os.Stderr, "Symbols: %v\n", a.Symbols().Entries())
	}

	diags := a.Diagnostics()
	for _, d := range diags {
		glog.Errorf("%s: %v", inPath, d)
	}
	if len(diags) > 0 {
		return fmt.Errorf("%d instruction(s) dropped", len(diags))
	}
	return nil
}

func main() {
	defer glog.Flush()
	if err := rootCmd.Execute(); err != nil {
		glog.Exitf("%v", err)
	}
}
