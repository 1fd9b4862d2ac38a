package styling

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ChipPalette maps color slots to chip stylings. Slots beyond the
// palette size wrap around, matching the layout engine's cyclic slot
// assignment.
type ChipPalette struct {
	styles []DrawStyling
}

// NewChipPalette builds a palette from hex color strings. Each color
// becomes a chip background; the foreground is picked black or white by
// the background's luminance.
func NewChipPalette(hexColors []string) (*ChipPalette, error) {
	if len(hexColors) == 0 {
		return nil, fmt.Errorf("chip palette needs at least one color")
	}

	palette := ChipPalette{}
	for _, hex := range hexColors {
		bg, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("invalid chip color '%s': %w", hex, err)
		}
		fg := colorful.Color{R: 0, G: 0, B: 0}
		if luminance(bg) < 0.5 {
			fg = colorful.Color{R: 1, G: 1, B: 1}
		}
		palette.styles = append(palette.styles, &FallbackStyling{fg: fg, bg: bg})
	}
	return &palette, nil
}

// Size returns the number of colors in the palette.
func (p *ChipPalette) Size() int {
	return len(p.styles)
}

// ForSlot returns the styling for a color slot.
func (p *ChipPalette) ForSlot(slot int) DrawStyling {
	if slot < 0 {
		slot = 0
	}
	return p.styles[slot%len(p.styles)]
}

func luminance(c colorful.Color) float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}
