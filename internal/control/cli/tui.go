package cli

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"calgrid/internal/config"
	"calgrid/internal/control"
	"calgrid/internal/grid"
	"calgrid/internal/model"
	"calgrid/internal/styling"
	"calgrid/internal/tui"
)

type TuiCommand struct {
	Date          string `short:"d" long:"date" description:"the date to open the calendar on" value-name:"<yyyy-mm-dd>"`
	Month         bool   `short:"m" long:"month" description:"start in month view instead of week view"`
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml)"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
}

// Execute runs the interactive calendar TUI.
// (This gets called by `go-flags` when `tui` is provided on the command line)
func (command *TuiCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// once the TUI owns the terminal, logs can only go to a file
	var logWriter io.Writer = io.Discard
	if command.LogOutputFile != "" {
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			stderrLogger.Fatal().Err(err).Str("file", command.LogOutputFile).Msg("could not open file for logging")
		}
		if command.LogPretty {
			logWriter = zerolog.ConsoleWriter{Out: file}
		} else {
			logWriter = file
		}
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	var theme config.ColorschemeType
	switch command.Theme {
	case "light":
		theme = config.Light
	default:
		theme = config.Dark
	}

	envData := control.NewEnvData()

	configData, err := loadConfig(envData, theme)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't parse config data")
	}

	firstDayOfWeek, err := configData.FirstDayOfWeek()
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("invalid week start in config")
	}

	stylesheet, err := styling.NewStylesheetFromConfig(configData.Stylesheet)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't build stylesheet from config")
	}
	chips, err := styling.NewChipPalette(configData.ChipColors)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't build chip palette from config")
	}

	_, events, err := loadEvents(envData)
	if err != nil {
		stderrLogger.Fatal().Err(err).Str("path", envData.EventsPath()).Msg("can't load events")
	}

	today := model.DateOf(time.Now())
	state := grid.NewViewState(today, firstDayOfWeek)
	if command.Date != "" {
		date, err := model.FromString(command.Date)
		if err != nil {
			stderrLogger.Fatal().Err(err).Msg("could not parse given date")
		}
		if err := state.JumpToDate(date); err != nil {
			stderrLogger.Fatal().Err(err).Msg("could not jump to given date")
		}
	}
	if command.Month {
		if err := state.ToggleMode(); err != nil {
			stderrLogger.Fatal().Err(err).Msg("could not switch to month view")
		}
	}

	axis := grid.NewTimeAxis(configData.HourHeight)
	composer := grid.NewComposer(axis)
	composer.ColorSlots = chips.Size()

	var suntimes func(model.Date) *model.SunTimes
	if configData.Latitude != nil && configData.Longitude != nil {
		lat, lon := *configData.Latitude, *configData.Longitude
		suntimes = func(d model.Date) *model.SunTimes {
			st := d.GetSunTimes(lat, lon)
			return &st
		}
	}

	screen := tui.NewScreenHandler()
	view := tui.NewView(screen, stylesheet, chips, axis, suntimes)

	controller := NewController(screen, view, events, state, composer, tuiLogger)

	// now that the screen is initialized we must not write to stderr
	// anymore, so the file logger (or discard) becomes the global logger
	log.Logger = tuiLogger

	controller.Run()
	return nil
}
