package config

// Default returns the default configuration for the given colorscheme.
func Default(theme ColorschemeType) Config {
	result := Config{
		WeekStart:  "sunday",
		HourHeight: 48,
		ChipColors: []string{
			"#4f86f7",
			"#f78154",
			"#5fad56",
			"#b4436c",
			"#f2c14e",
			"#9b5de5",
		},
	}

	switch theme {
	case Light:
		result.Stylesheet = Stylesheet{
			Normal:        Styling{Fg: "#000000", Bg: "#ffffff"},
			Today:         Styling{Fg: "#000000", Bg: "#d0e4fe", Style: &FontStyle{Bold: true}},
			OutsideMonth:  Styling{Fg: "#777777", Bg: "#f2f2f2"},
			WeekHighlight: Styling{Fg: "#000000", Bg: "#e4ecf7"},
			Header:        Styling{Fg: "#000000", Bg: "#f2f2f2", Style: &FontStyle{Bold: true}},
			TimelineDay:   Styling{Fg: "#c0c0c0", Bg: "#ffffff"},
			TimelineNight: Styling{Fg: "#f0f0f0", Bg: "#808080"},
			TimelineNow:   Styling{Fg: "#ffffff", Bg: "#ff0000"},
			Status:        Styling{Fg: "#000000", Bg: "#f0f0f0"},
		}
	default:
		result.Stylesheet = Stylesheet{
			Normal:        Styling{Fg: "#dddddd", Bg: "#222222"},
			Today:         Styling{Fg: "#ffffff", Bg: "#1e3a5f", Style: &FontStyle{Bold: true}},
			OutsideMonth:  Styling{Fg: "#666666", Bg: "#1a1a1a"},
			WeekHighlight: Styling{Fg: "#dddddd", Bg: "#2c3e50"},
			Header:        Styling{Fg: "#dddddd", Bg: "#1a1a1a", Style: &FontStyle{Bold: true}},
			TimelineDay:   Styling{Fg: "#808080", Bg: "#222222"},
			TimelineNight: Styling{Fg: "#666666", Bg: "#111111"},
			TimelineNow:   Styling{Fg: "#ffffff", Bg: "#cc0000"},
			Status:        Styling{Fg: "#dddddd", Bg: "#333333"},
		}
	}

	return result
}
