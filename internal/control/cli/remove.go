package cli

import (
	"fmt"

	"calgrid/internal/control"
)

// RemoveCommand contains flags for the `remove` command line command,
// for `go-flags` to parse command line args into.
type RemoveCommand struct {
	ID string `short:"i" long:"id" description:"the ID of the event to remove" value-name:"<id>" required:"true"`
}

// Execute executes the remove command.
func (command *RemoveCommand) Execute(args []string) error {
	envData := control.NewEnvData()

	provider, events, err := loadEvents(envData)
	if err != nil {
		return fmt.Errorf("can't load events: %w", err)
	}

	if err := events.Delete(command.ID); err != nil {
		return err
	}

	if err := provider.Save(events); err != nil {
		return fmt.Errorf("can't save events: %w", err)
	}

	fmt.Printf("removed event %s\n", command.ID)
	return nil
}
