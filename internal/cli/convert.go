package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/munsell-mcp/internal/munsell"
	"github.com/ironsheep/munsell-mcp/internal/report"
)

// outputFlags are shared by convert and pick.
type outputFlags struct {
	template string
	asJSON   bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.template, "template", "", "pongo2 template for the output (fields: notation, name, hex, rgb.r, value, chroma, ...)")
	cmd.Flags().BoolVar(&o.asJSON, "json", false, "print JSON instead of text")
}

func convertCmd() *cobra.Command {
	var hex string
	var out outputFlags

	c := &cobra.Command{
		Use:   "convert [R G B]",
		Short: "Describe an sRGB color",
		Example: `  munsell-mcp convert 255 128 0
  munsell-mcp convert --hex "#3C5A96"
  munsell-mcp convert 60 90 150 --template "{{ notation }} {{ name }}"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if hex != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(3)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var d munsell.Description
			var err error
			if hex != "" {
				d, err = munsell.ConvertHex(hex)
			} else {
				d, err = convertArgs(args)
			}
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), out, d, d)
		},
	}

	c.Flags().StringVar(&hex, "hex", "", "color as #RRGGBB instead of R G B")
	out.register(c)
	return c
}

// convertArgs parses three decimal channel arguments.
func convertArgs(args []string) (munsell.Description, error) {
	var ch [3]int
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return munsell.Description{}, fmt.Errorf("channel %q is not an integer", a)
		}
		ch[i] = v
	}
	return munsell.ConvertInts(ch[0], ch[1], ch[2])
}

// printResult writes full as JSON with --json, otherwise d through the
// text template.
func printResult(w io.Writer, o outputFlags, d munsell.Description, full interface{}) error {
	if o.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(full)
	}

	r, err := report.New(o.template)
	if err != nil {
		return err
	}
	text, err := r.Render(d)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err = io.WriteString(w, text)
	return err
}
