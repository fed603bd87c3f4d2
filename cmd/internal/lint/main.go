package lint

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/subcommands"

	"github.com/opendrill/bookdrill/book"
)

type Command struct{}

func (*Command) Name() string     { return "lint" }
func (*Command) Synopsis() string { return "Validate repertoire files" }
func (*Command) Usage() string {
	return `lint FILE.json...

Load each repertoire and report structural problems: malformed JSON,
missing or unreachable nodes, empty move lists, bad start values.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(flag.Args()) == 0 {
		log.Println("lint: no files given")
		return subcommands.ExitUsageError
	}
	status := subcommands.ExitSuccess
	for _, path := range flag.Args() {
		b, err := book.LoadFile(path)
		if err != nil {
			fmt.Println(err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("%s: ok start=%s nodes=%d depth=%d\n",
			path, b.Start, b.Len(), b.Depth())
	}
	return status
}
