package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"yoth.dev/onekit-go/wire"
)

type colorFlags struct {
	alpha   float64
	lighten float64
	darken  float64
	clamp   bool
	swatch  bool
}

func newColorCmd(root *rootFlags) *cobra.Command {
	flags := &colorFlags{}

	cmd := &cobra.Command{
		Use:   "color HEX",
		Short: "Inspect a hex color and adjust its brightness",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.load(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			req := wire.ColorRequest{
				Hex:     args[0],
				Lighten: flags.lighten,
				Darken:  flags.darken,
				Clamp:   flags.clamp,
			}
			if cmd.Flags().Changed("alpha") {
				req.Alpha = &flags.alpha
			}

			resp, err := a.formatColor(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "hex  %s\n", resp.Hex)
			fmt.Fprintf(out, "rgb  %d %d %d alpha %.2f\n", resp.Red, resp.Green, resp.Blue, resp.Alpha)
			fmt.Fprintf(out, "hsb  %.1f %.3f %.3f\n", resp.Hue, resp.Saturation, resp.Brightness)

			if flags.swatch || isTerminal(out) {
				fmt.Fprintln(out, swatch(resp))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&flags.alpha, "alpha", 1, "Alpha between 0 and 1")
	cmd.Flags().Float64Var(&flags.lighten, "lighten", 0, "Raise brightness by this fraction")
	cmd.Flags().Float64Var(&flags.darken, "darken", 0, "Lower brightness by this fraction")
	cmd.Flags().BoolVar(&flags.clamp, "clamp", false, "Keep adjusted channels within range")
	cmd.Flags().BoolVar(&flags.swatch, "swatch", false, "Print a swatch even when not on a terminal")

	return cmd
}

func swatch(c wire.ColorResponse) string {
	return color.RGB(uint8(c.Red), uint8(c.Green), uint8(c.Blue), true).Sprint("    " + c.Hex + "    ")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
