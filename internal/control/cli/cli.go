// Package cli provides the command-line interface for calgrid.
package cli

type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	TuiCommand     TuiCommand     `command:"tui" subcommands-optional:"true"`
	AddCommand     AddCommand     `command:"add" subcommands-optional:"true"`
	EditCommand    EditCommand    `command:"edit" subcommands-optional:"true"`
	RemoveCommand  RemoveCommand  `command:"remove" subcommands-optional:"true"`
	ShowCommand    ShowCommand    `command:"show" subcommands-optional:"true"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true"`
}

var Opts CommandLineOpts
