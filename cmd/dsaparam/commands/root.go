package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"dsaparam/internal/app"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "dsaparam [flags] [numbits]",
		Short: "Generate, inspect and re-encode DSA domain parameters",
		Long: "dsaparam manages DSA domain parameters (p, q, g). With a numbits\n" +
			"argument it generates a fresh set; otherwise it loads one from the\n" +
			"input stream. The result can be printed as text, emitted as an\n" +
			"embeddable Go fragment, re-serialized, and used to derive a keypair.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				bits, err := strconv.Atoi(args[0])
				if err != nil || bits <= 0 {
					return fmt.Errorf("invalid bit count %q", args[0])
				}
				opts.Bits = bits
			}

			cfg, err := opts.Resolve()
			if err != nil {
				return err
			}
			cfg.Diag = cmd.ErrOrStderr()

			if cfg.Bits == 0 {
				in, err := app.OpenInput(opts.InFile)
				if err != nil {
					return fmt.Errorf("opening input: %w", err)
				}
				defer in.Close()
				cfg.In = in
			}

			out, err := app.OpenOutput(opts.OutFile, cfg.GenKey)
			if err != nil {
				return fmt.Errorf("opening output: %w", err)
			}
			defer out.Close()
			cfg.Out = out

			return app.Run(cfg)
		},
	}

	fl := root.Flags()
	fl.StringVar(&opts.InFile, "in", "", "input file (default stdin)")
	fl.StringVar(&opts.OutFile, "out", "", "output file (default stdout)")
	fl.StringVar(&opts.InFormat, "inform", "PEM", "input format, PEM or DER")
	fl.StringVar(&opts.OutFormat, "outform", "PEM", "output format, PEM or DER")
	fl.BoolVar(&opts.Text, "text", false, "print the parameters as text")
	fl.BoolVarP(&opts.Code, "code", "C", false, "emit Go code embedding the parameters")
	fl.BoolVar(&opts.NoOut, "noout", false, "suppress serialized parameter output")
	fl.BoolVar(&opts.GenKey, "genkey", false, "derive a keypair and write the private key")
	fl.BoolVar(&opts.Verbose, "verbose", false, "report generation progress on stderr")

	return root
}
