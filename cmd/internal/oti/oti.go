package oti

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/opendrill/bookdrill/oti"
)

type Command struct {
	debug bool
}

func (*Command) Name() string     { return "oti" }
func (*Command) Synopsis() string { return "Launch bookdrill in OTI mode" }
func (*Command) Usage() string {
	return `oti

Launch the trainer in OTI mode, a UCI-like line protocol suitable for
being driven by an external GUI or controller.

`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.BoolVar(&c.debug, "debug", false, "log received commands to stderr")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	level := zerolog.InfoLevel
	if c.debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	engine := oti.NewEngine(os.Stdin, os.Stdout, logger)
	if err := engine.Run(ctx); err != nil {
		log.Println("oti: ", err.Error())
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
