package level

import (
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/neonride/internal/pen"
	"chosenoffset.com/neonride/internal/ui/glyph"
)

// Point is a level-space coordinate, written in YAML as [x, y].
type Point struct {
	X, Y float64
}

// UnmarshalYAML accepts a two-element sequence.
func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	var xy []float64
	if err := node.Decode(&xy); err != nil {
		return fmt.Errorf("line %d: point must be [x, y]: %w", node.Line, err)
	}
	if len(xy) != 2 {
		return fmt.Errorf("line %d: point must have 2 coordinates, got %d", node.Line, len(xy))
	}
	p.X, p.Y = xy[0], xy[1]
	return nil
}

// Path is a polyline drawn in one color.
type Path struct {
	// Color is "level", "goal", "lava", "text" or a "#RRGGBB" value.
	Color  string  `yaml:"color"`
	Size   float64 `yaml:"size"`
	Points []Point `yaml:"points"`
}

// Message is pen-drawn text placed in the level.
type Message struct {
	Text  string  `yaml:"text"`
	At    Point   `yaml:"at"`
	Size  float64 `yaml:"size"`
	Color string  `yaml:"color"`
}

// Descriptor is a static level loaded from a file.
type Descriptor struct {
	Name     string    `yaml:"name"`
	Index    int       `yaml:"index"`
	Goal     *Point    `yaml:"goal"`
	Paths    []Path    `yaml:"paths"`
	Messages []Message `yaml:"messages"`
}

// ParseDescriptor decodes and checks a level descriptor.
func ParseDescriptor(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}
	if d.Index < 1 {
		return nil, fmt.Errorf("level %q: index must be at least 1, got %d", d.Name, d.Index)
	}
	for i, path := range d.Paths {
		if len(path.Points) < 2 {
			return nil, fmt.Errorf("level %q: path %d needs at least 2 points", d.Name, i)
		}
		if _, err := resolveColor(path.Color, Palette{}); err != nil {
			return nil, fmt.Errorf("level %q: path %d: %w", d.Name, i, err)
		}
	}
	for i, m := range d.Messages {
		if _, err := resolveColor(m.Color, Palette{}); err != nil {
			return nil, fmt.Errorf("level %q: message %d: %w", d.Name, i, err)
		}
	}
	return &d, nil
}

func resolveColor(name string, pal Palette) (color.RGBA, error) {
	switch name {
	case "", "level":
		return pal.Level, nil
	case "goal":
		return pal.Goal, nil
	case "lava":
		return pal.Lava, nil
	case "text":
		return pal.Text, nil
	default:
		return pen.ParseHex(name)
	}
}

// Draw renders the descriptor.
func (d *Descriptor) Draw(f Frame) {
	p := f.Pen
	for _, path := range d.Paths {
		size := path.Size
		if size <= 0 {
			size = levelPenSize
		}
		clr, _ := resolveColor(path.Color, f.Palette)
		p.SetSize(size)
		p.SetColor(clr)
		p.PenUp()
		for i, pt := range path.Points {
			p.Goto(f.At(pt.X, pt.Y))
			if i == 0 {
				p.PenDown()
			}
		}
		p.PenUp()
	}
	for _, m := range d.Messages {
		size := m.Size
		if size <= 0 {
			size = hintSize
		}
		clr, _ := resolveColor(m.Color, f.Palette)
		glyph.DrawMessage(p, m.Text, f.At(m.At.X, m.At.Y), size, clr)
	}
	p.SetColor(f.Palette.Level)
}
