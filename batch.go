package ink

import "encoding/json"

// DrawCommand is one styled render instruction for the host renderer.
type DrawCommand struct {
	Kind      StrokeKind
	From      Point
	To        Point
	Color     string
	LineWidth float64
}

// commandStyle is the grouping key for batching: commands sharing a
// style can be drawn without renderer state changes in between.
type commandStyle struct {
	kind      StrokeKind
	color     string
	lineWidth float64
}

// BatchCommands groups draw commands by (kind, color, line width) so
// that same-style commands are contiguous, and drops commands shorter
// than minDistance. Within a group the input order is preserved; the
// order of the groups themselves is unspecified, and callers must not
// depend on it.
func BatchCommands(commands []DrawCommand, minDistance float64) []DrawCommand {
	groups := make(map[commandStyle][]DrawCommand)
	var styles []commandStyle
	for _, cmd := range commands {
		if cmd.From.Distance(cmd.To) < minDistance {
			continue
		}
		key := commandStyle{kind: cmd.Kind, color: cmd.Color, lineWidth: cmd.LineWidth}
		if _, ok := groups[key]; !ok {
			styles = append(styles, key)
		}
		groups[key] = append(groups[key], cmd)
	}

	out := make([]DrawCommand, 0, len(commands))
	for _, key := range styles {
		out = append(out, groups[key]...)
	}
	return out
}

// drawCommandJSON is the host wire layout for a draw command.
type drawCommandJSON struct {
	Kind      StrokeKind `json:"type"`
	FromX     float64    `json:"fromX"`
	FromY     float64    `json:"fromY"`
	ToX       float64    `json:"toX"`
	ToY       float64    `json:"toY"`
	Color     string     `json:"color"`
	LineWidth float64    `json:"lineWidth"`
}

// MarshalJSON encodes the command in the host's flat coordinate layout.
func (c DrawCommand) MarshalJSON() ([]byte, error) {
	return json.Marshal(drawCommandJSON{
		Kind:      c.Kind,
		FromX:     c.From.X,
		FromY:     c.From.Y,
		ToX:       c.To.X,
		ToY:       c.To.Y,
		Color:     c.Color,
		LineWidth: c.LineWidth,
	})
}

// UnmarshalJSON decodes the host's flat coordinate layout.
func (c *DrawCommand) UnmarshalJSON(data []byte) error {
	var w drawCommandJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*c = DrawCommand{
		Kind:      w.Kind,
		From:      Pt(w.FromX, w.FromY),
		To:        Pt(w.ToX, w.ToY),
		Color:     w.Color,
		LineWidth: w.LineWidth,
	}
	return nil
}
