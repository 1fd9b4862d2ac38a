package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${CALGRID_HOME}/config.yaml'.
type Config struct {
	// WeekStart is the weekday on which displayed weeks begin
	// ("sunday", "monday", ...).
	WeekStart string `yaml:"week-start"`

	// HourHeight is the visual height of one hour on the week view's time
	// axis, in pixel-equivalent units.
	HourHeight float64 `yaml:"hour-height"`

	// ChipColors is the palette event color slots cycle through, as hex
	// color strings.
	ChipColors []string `yaml:"chip-colors"`

	// Latitude and Longitude enable day/night shading of the week view's
	// timeline when both are set.
	Latitude  *float64 `yaml:"latitude"`
	Longitude *float64 `yaml:"longitude"`

	Stylesheet Stylesheet `yaml:"stylesheet"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal        Styling `yaml:"normal"`
	Today         Styling `yaml:"today"`
	OutsideMonth  Styling `yaml:"outside-month"`
	WeekHighlight Styling `yaml:"week-highlight"`
	Header        Styling `yaml:"header"`
	TimelineDay   Styling `yaml:"timeline-day"`
	TimelineNight Styling `yaml:"timeline-night"`
	TimelineNow   Styling `yaml:"timeline-now"`
	Status        Styling `yaml:"status"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify
// font style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// FirstDayOfWeek resolves the configured week start to a weekday.
func (c Config) FirstDayOfWeek() (time.Weekday, error) {
	switch c.WeekStart {
	case "", "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	default:
		return time.Sunday, fmt.Errorf("unknown week start '%s'", c.WeekStart)
	}
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default
// configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	var defaultConfig Config
	switch defaultTheme {
	case Dark:
		defaultConfig = Default(Dark)
	case Light:
		defaultConfig = Default(Light)
	}

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%s)", err)
	}

	return defaultConfig.augmentWith(parsedConfig), nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	if augment.WeekStart != "" {
		result.WeekStart = augment.WeekStart
	}
	if augment.HourHeight > 0 {
		result.HourHeight = augment.HourHeight
	}
	if len(augment.ChipColors) > 0 {
		result.ChipColors = augment.ChipColors
	}
	if augment.Latitude != nil {
		result.Latitude = augment.Latitude
	}
	if augment.Longitude != nil {
		result.Longitude = augment.Longitude
	}

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.Today.overwriteIfDefined(augment.Today)
	result.OutsideMonth.overwriteIfDefined(augment.OutsideMonth)
	result.WeekHighlight.overwriteIfDefined(augment.WeekHighlight)
	result.Header.overwriteIfDefined(augment.Header)
	result.TimelineDay.overwriteIfDefined(augment.TimelineDay)
	result.TimelineNight.overwriteIfDefined(augment.TimelineNight)
	result.TimelineNow.overwriteIfDefined(augment.TimelineNow)
	result.Status.overwriteIfDefined(augment.Status)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		s.Style = augment.Style
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
