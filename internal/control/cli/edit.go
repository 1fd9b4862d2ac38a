package cli

import (
	"fmt"

	"calgrid/internal/control"
	"calgrid/internal/model"
)

// EditCommand contains flags for the `edit` command line command, for
// `go-flags` to parse command line args into. All fields but the ID are
// replaced wholesale; omitting the start and end times turns the event
// into an all-day event.
type EditCommand struct {
	ID          string `short:"i" long:"id" description:"the ID of the event to edit" value-name:"<id>" required:"true"`
	Title       string `short:"n" long:"title" description:"the new title" value-name:"<title>" required:"true"`
	Date        string `short:"d" long:"date" description:"the new date" value-name:"<yyyy-mm-dd>" required:"true"`
	Start       string `short:"s" long:"start" description:"the new start time; omit for an all-day event" value-name:"<HH:MM>"`
	End         string `short:"e" long:"end" description:"the new end time; requires a start time" value-name:"<HH:MM>"`
	Description string `long:"description" description:"the new description" value-name:"<text>"`
}

// Execute executes the edit command.
func (command *EditCommand) Execute(args []string) error {
	envData := control.NewEnvData()

	provider, events, err := loadEvents(envData)
	if err != nil {
		return fmt.Errorf("can't load events: %w", err)
	}

	request := model.UpdateRequest{
		ID:          command.ID,
		Title:       command.Title,
		Date:        command.Date,
		Start:       command.Start,
		End:         command.End,
		Description: command.Description,
	}
	event, err := events.Update(request)
	if err != nil {
		return err
	}

	if err := provider.Save(events); err != nil {
		return fmt.Errorf("can't save events: %w", err)
	}

	fmt.Printf("updated event %s (%s)\n", event.ID, event.Title)
	return nil
}
