package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/munsell-mcp/internal/imaging"
)

func pickCmd(logLevel *string) *cobra.Command {
	var radius int
	var out outputFlags

	c := &cobra.Command{
		Use:   "pick IMAGE X Y",
		Short: "Describe the color at a pixel of an image",
		Example: `  munsell-mcp pick photo.jpg 120 48
  munsell-mcp pick photo.jpg 120 48 --radius 3 --json`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*logLevel)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("radius") {
				radius = cfg.SampleRadius
			}

			x, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("x %q is not an integer", args[1])
			}
			y, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("y %q is not an integer", args[2])
			}

			img, err := imaging.NewImageCache().Load(args[0])
			if err != nil {
				return err
			}
			pick, err := imaging.PickColor(img, x, y, radius)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), out, pick.Color, pick)
		},
	}

	c.Flags().IntVar(&radius, "radius", 0, "averaging radius in pixels (default MUNSELL_MCP_SAMPLE_RADIUS)")
	out.register(c)
	return c
}
