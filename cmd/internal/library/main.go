package library

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/opendrill/bookdrill/book"
	"github.com/opendrill/bookdrill/library"
)

type ImportCommand struct {
	db string
}

func (*ImportCommand) Name() string     { return "import" }
func (*ImportCommand) Synopsis() string { return "Import repertoire files into the catalog" }
func (*ImportCommand) Usage() string {
	return `import [-db CATALOG.db] FILE.json...

Validate each repertoire and store it in the catalog under its base
file name.
`
}

func (c *ImportCommand) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.db, "db", "bookdrill.db", "repertoire catalog")
}

func (c *ImportCommand) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(flag.Args()) == 0 {
		log.Error().Msg("import: no files given")
		return subcommands.ExitUsageError
	}
	repo, err := library.Open(c.db)
	if err != nil {
		log.Fatal().Err(err).Msg("open catalog")
	}
	defer repo.Close()

	bodies := make([][]byte, len(flag.Args()))
	grp, _ := errgroup.WithContext(ctx)
	for i, path := range flag.Args() {
		i, path := i, path
		grp.Go(func() error {
			body, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if _, err := book.Load(bytes.NewReader(body)); err != nil {
				return fmt.Errorf("%s: %v", path, err)
			}
			bodies[i] = body
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		log.Error().Err(err).Msg("import")
		return subcommands.ExitFailure
	}

	for i, path := range flag.Args() {
		name := strings.TrimSuffix(filepath.Base(path), ".json")
		if err := repo.Put(name, bodies[i]); err != nil {
			log.Fatal().Err(err).Str("name", name).Msg("store")
		}
		log.Info().Str("name", name).Str("file", path).Msg("imported")
	}
	return subcommands.ExitSuccess
}

type ListCommand struct {
	db string
}

func (*ListCommand) Name() string     { return "books" }
func (*ListCommand) Synopsis() string { return "List the repertoires in the catalog" }
func (*ListCommand) Usage() string {
	return `books [-db CATALOG.db]
`
}

func (c *ListCommand) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.db, "db", "bookdrill.db", "repertoire catalog")
}

func (c *ListCommand) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	repo, err := library.Open(c.db)
	if err != nil {
		log.Fatal().Err(err).Msg("open catalog")
	}
	defer repo.Close()
	entries, err := repo.List()
	if err != nil {
		log.Fatal().Err(err).Msg("list")
	}
	w := tabwriter.NewWriter(os.Stdout, 4, 8, 1, '\t', 0)
	fmt.Fprintln(w, "NAME\tSTART\tNODES\tADDED")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			e.Name, e.Start, e.Nodes, e.Added.Format("2006-01-02 15:04"))
	}
	w.Flush()
	return subcommands.ExitSuccess
}
