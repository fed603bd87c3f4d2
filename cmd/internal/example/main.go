package example

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/opendrill/bookdrill/book"
)

type Command struct {
	out string
}

func (*Command) Name() string     { return "example" }
func (*Command) Synopsis() string { return "Write the built-in example repertoire to a file" }
func (*Command) Usage() string {
	return `example [-out FILE]

Write the built-in example repertoire as JSON, as a starting point for
authoring your own.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.out, "out", "example_opening.json", "output file")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := os.WriteFile(c.out, []byte(book.ExampleJSON+"\n"), 0644); err != nil {
		log.Println("write: ", err)
		return subcommands.ExitFailure
	}
	log.Printf("wrote %s", c.out)
	return subcommands.ExitSuccess
}
