// Package report renders color descriptions as text with pongo2 templates.
//
// Templates see the JSON form of munsell.Description: notation, name, hex,
// rgb.r, rgb.g, rgb.b, hue, hue_name, value, chroma, neutral, lab.l, lab.a,
// lab.b and hue_angle. Numbers keep their JSON spelling, so {{ value }}
// prints "5.3" rather than a padded float.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/flosch/pongo2"

	"github.com/ironsheep/munsell-mcp/internal/munsell"
)

// DefaultTemplate is used when no template is given.
const DefaultTemplate = `{{ notation }}  {{ name }}
hex     {{ hex }}
rgb     {{ rgb.r }}, {{ rgb.g }}, {{ rgb.b }}
hue     {{ hue }} ({{ hue_name }})
value   {{ value }}
chroma  {{ chroma }}
L*a*b*  {{ lab.l|floatformat:2 }}, {{ lab.a|floatformat:2 }}, {{ lab.b|floatformat:2 }}
`

// Renderer is a compiled description template.
type Renderer struct {
	tpl *pongo2.Template
}

// New compiles src, or DefaultTemplate when src is empty.
func New(src string) (*Renderer, error) {
	if src == "" {
		src = DefaultTemplate
	}
	tpl, err := pongo2.FromString(src)
	if err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

// Render executes the template for d.
func (r *Renderer) Render(d munsell.Description) (string, error) {
	ctxt, err := templateContext(d)
	if err != nil {
		return "", err
	}
	out, err := r.tpl.Execute(ctxt)
	if err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return out, nil
}

// templateContext turns d into a template context through its JSON encoding.
func templateContext(d munsell.Description) (pongo2.Context, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	ctxt := make(map[string]interface{})
	if err := dec.Decode(&ctxt); err != nil {
		return nil, err
	}
	return pongo2.Context(ctxt), nil
}
