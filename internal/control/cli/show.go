package cli

import (
	"fmt"
	"os"
	"time"

	"calgrid/internal/config"
	"calgrid/internal/control"
	"calgrid/internal/grid"
	"calgrid/internal/model"
)

// ShowCommand contains flags for the `show` command line command, for
// `go-flags` to parse command line args into. It composes the grid once
// and prints it as plain text, e.g. for scripting.
type ShowCommand struct {
	Date  string `short:"d" long:"date" description:"the date whose week (or month) to show" value-name:"<yyyy-mm-dd>"`
	Month bool   `short:"m" long:"month" description:"show the month grid instead of the week"`
}

// Execute executes the show command.
func (command *ShowCommand) Execute(args []string) error {
	envData := control.NewEnvData()

	configData, err := loadConfig(envData, config.Dark)
	if err != nil {
		return fmt.Errorf("can't parse config data: %w", err)
	}
	firstDayOfWeek, err := configData.FirstDayOfWeek()
	if err != nil {
		return fmt.Errorf("invalid week start in config: %w", err)
	}

	_, events, err := loadEvents(envData)
	if err != nil {
		return fmt.Errorf("can't load events: %w", err)
	}

	today := model.DateOf(time.Now())
	state := grid.NewViewState(today, firstDayOfWeek)
	if command.Date != "" {
		date, err := model.FromString(command.Date)
		if err != nil {
			return err
		}
		if err := state.JumpToDate(date); err != nil {
			return err
		}
	}
	if command.Month {
		if err := state.ToggleMode(); err != nil {
			return err
		}
	}

	composer := grid.NewComposer(grid.NewTimeAxis(configData.HourHeight))
	composer.ColorSlots = len(configData.ChipColors)
	desc := composer.Compose(events.Events, state, today)

	fmt.Println(desc.Label)
	for _, cell := range desc.Cells {
		if desc.Mode == grid.ModeMonth && cell.IsOutsideMonth {
			continue
		}
		if len(cell.Chips) == 0 && len(cell.Timed) == 0 {
			continue
		}

		marker := " "
		if cell.IsToday {
			marker = "*"
		}
		fmt.Printf("%s %s (%s)\n", marker, cell.Date.ToString(), cell.Date.ToWeekday().String())

		for _, placed := range cell.Timed {
			fmt.Printf("    %s-%s  %s\n", placed.Event.Start, placed.Event.End, placed.Event.Title)
		}
		for _, chip := range cell.Chips {
			fmt.Println(chipLine(chip))
		}
	}

	for _, skipped := range desc.Skipped {
		fmt.Fprintf(os.Stderr, "skipping malformed event '%s': %s\n", skipped.Event.ID, skipped.Reason)
	}

	return nil
}

// chipLine formats one chip for the plain-text grid. Month-view chips
// carry timed events too; those show their start time, like the month
// grid's rendered chips do.
func chipLine(chip grid.PlacedEvent) string {
	if chip.Event.Start != "" {
		return fmt.Sprintf("    %s        %s", chip.Event.Start, chip.Event.Title)
	}
	return fmt.Sprintf("    all-day      %s", chip.Event.Title)
}
