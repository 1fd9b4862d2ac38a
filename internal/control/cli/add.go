package cli

import (
	"fmt"

	"github.com/google/uuid"

	"calgrid/internal/control"
	"calgrid/internal/model"
)

// AddCommand contains flags for the `add` command line command, for
// `go-flags` to parse command line args into.
type AddCommand struct {
	Title       string `short:"n" long:"title" description:"the title of the added event" value-name:"<title>" required:"true"`
	Date        string `short:"d" long:"date" description:"the date of the event" value-name:"<yyyy-mm-dd>" required:"true"`
	Start       string `short:"s" long:"start" description:"the time at which the event begins; omit for an all-day event" value-name:"<HH:MM>"`
	End         string `short:"e" long:"end" description:"the time at which the event ends; requires a start time" value-name:"<HH:MM>"`
	Description string `long:"description" description:"a free-form description of the event" value-name:"<text>"`
}

// Execute executes the add command.
// (This gets called by `go-flags` when `add` is provided on the command line)
func (command *AddCommand) Execute(args []string) error {
	envData := control.NewEnvData()

	provider, events, err := loadEvents(envData)
	if err != nil {
		return fmt.Errorf("can't load events: %w", err)
	}

	request := model.CreateRequest{
		Title:       command.Title,
		Date:        command.Date,
		Start:       command.Start,
		End:         command.End,
		Description: command.Description,
	}
	event, err := events.Create(request, uuid.NewString())
	if err != nil {
		return err
	}

	if err := provider.Save(events); err != nil {
		return fmt.Errorf("can't save events: %w", err)
	}

	fmt.Printf("added event %s (%s)\n", event.ID, event.Title)
	return nil
}
