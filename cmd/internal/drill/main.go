package drill

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/opendrill/bookdrill/book"
	"github.com/opendrill/bookdrill/cli"
	"github.com/opendrill/bookdrill/library"
	"github.com/opendrill/bookdrill/pick"
	"github.com/opendrill/bookdrill/trainer"
)

type Command struct {
	file string
	db   string
	name string
	seed int64

	unicode bool
}

func (*Command) Name() string     { return "drill" }
func (*Command) Synopsis() string { return "Drill an opening repertoire from the command line" }
func (*Command) Usage() string {
	return `drill [-file REPERTOIRE.json | -db CATALOG.db -name NAME]

Drill an opening repertoire interactively. With no repertoire given,
the built-in example is used.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.file, "file", "", "repertoire file to drill")
	flags.StringVar(&c.db, "db", "bookdrill.db", "repertoire catalog")
	flags.StringVar(&c.name, "name", "", "drill a repertoire from the catalog")
	flags.Int64Var(&c.seed, "seed", 0, "seed for the computer's move choice (0 = time-seeded)")

	flags.BoolVar(&c.unicode, "unicode", false, "render the board with utf8 glyphs")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b := c.loadBook()
	seed := c.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session, err := trainer.NewSession(b, b.Start.Flip(), pick.NewWeighted(seed))
	if err != nil {
		log.Fatal("session: ", err)
	}
	st := &cli.CLI{
		Session: session,
		In:      bufio.NewReader(os.Stdin),
		Out:     os.Stdout,
		Glyphs:  glyphs(c.unicode),
	}
	if err := st.Run(ctx); err != nil {
		log.Println("drill: ", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *Command) loadBook() *book.Book {
	switch {
	case c.file != "":
		b, err := book.LoadFile(c.file)
		if err != nil {
			log.Fatal("load: ", err)
		}
		return b
	case c.name != "":
		repo, err := library.Open(c.db)
		if err != nil {
			log.Fatal("open catalog: ", err)
		}
		defer repo.Close()
		b, err := repo.GetBook(c.name)
		if err != nil {
			log.Fatal("load: ", err)
		}
		return b
	default:
		return book.Example()
	}
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}
