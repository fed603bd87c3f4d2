package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/opendrill/bookdrill/cmd/internal/drill"
	"github.com/opendrill/bookdrill/cmd/internal/example"
	"github.com/opendrill/bookdrill/cmd/internal/library"
	"github.com/opendrill/bookdrill/cmd/internal/lint"
	"github.com/opendrill/bookdrill/cmd/internal/oti"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&drill.Command{}, "")
	subcommands.Register(&lint.Command{}, "")
	subcommands.Register(&example.Command{}, "")
	subcommands.Register(&oti.Command{}, "")
	subcommands.Register(&library.ImportCommand{}, "library")
	subcommands.Register(&library.ListCommand{}, "library")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
