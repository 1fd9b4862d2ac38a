package styling

import (
	"fmt"

	"calgrid/internal/config"
)

// Stylesheet represents all styles used by the application for
// rendering.
type Stylesheet struct {
	Normal        DrawStyling
	Today         DrawStyling
	OutsideMonth  DrawStyling
	WeekHighlight DrawStyling
	Header        DrawStyling
	TimelineDay   DrawStyling
	TimelineNight DrawStyling
	TimelineNow   DrawStyling
	Status        DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given
// config stylesheet.
func NewStylesheetFromConfig(cfg config.Stylesheet) (*Stylesheet, error) {
	stylesheet := Stylesheet{}

	for _, entry := range []struct {
		name   string
		config config.Styling
		target *DrawStyling
	}{
		{"normal", cfg.Normal, &stylesheet.Normal},
		{"today", cfg.Today, &stylesheet.Today},
		{"outside-month", cfg.OutsideMonth, &stylesheet.OutsideMonth},
		{"week-highlight", cfg.WeekHighlight, &stylesheet.WeekHighlight},
		{"header", cfg.Header, &stylesheet.Header},
		{"timeline-day", cfg.TimelineDay, &stylesheet.TimelineDay},
		{"timeline-night", cfg.TimelineNight, &stylesheet.TimelineNight},
		{"timeline-now", cfg.TimelineNow, &stylesheet.TimelineNow},
		{"status", cfg.Status, &stylesheet.Status},
	} {
		style, err := styleFromConfig(entry.config)
		if err != nil {
			return nil, fmt.Errorf("style '%s': %w", entry.name, err)
		}
		*entry.target = style
	}

	return &stylesheet, nil
}

func styleFromConfig(cfg config.Styling) (DrawStyling, error) {
	style, err := StyleFromHex(cfg.Fg, cfg.Bg)
	if err != nil {
		return nil, err
	}

	var result DrawStyling = style
	if cfg.Style != nil {
		if cfg.Style.Bold {
			result = result.Bolded()
		}
		if cfg.Style.Italic {
			result = result.Italicized()
		}
		if cfg.Style.Underlined {
			result = result.Underlined()
		}
	}
	return result, nil
}
