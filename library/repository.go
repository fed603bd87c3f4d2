// Package library keeps a local catalog of validated repertoires, so a
// trainee can import opening files once and drill them by name.
package library

import (
	"bytes"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite

	"github.com/opendrill/bookdrill/book"
)

type Repository struct {
	db *sqlx.DB
}

type Entry struct {
	Name  string    `db:"name"`
	Start string    `db:"start"`
	Nodes int       `db:"nodes"`
	Added time.Time `db:"added"`
}

type row struct {
	Entry
	Body []byte `db:"body"`
}

func Open(path string) (*Repository, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createRepertoireTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create repertoire table: %v", err)
	}
	return &Repository{db: db}, nil
}

// Put validates body as a repertoire and stores it under name,
// replacing any previous version. Invalid repertoires never enter the
// catalog.
func (r *Repository) Put(name string, body []byte) error {
	b, err := book.Load(bytes.NewReader(body))
	if err != nil {
		return err
	}
	_, err = r.db.NamedExec(insertStmt, &row{
		Entry: Entry{
			Name:  name,
			Start: b.Start.String(),
			Nodes: b.Len(),
			Added: time.Now(),
		},
		Body: body,
	})
	return err
}

// Get returns the stored repertoire text for name.
func (r *Repository) Get(name string) ([]byte, error) {
	var body []byte
	err := r.db.Get(&body, selectBody, name)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no repertoire %q", name)
	}
	return body, err
}

// GetBook loads the stored repertoire for name.
func (r *Repository) GetBook(name string) (*book.Book, error) {
	body, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return book.Load(bytes.NewReader(body))
}

func (r *Repository) List() ([]Entry, error) {
	var entries []Entry
	err := r.db.Select(&entries, selectEntries)
	return entries, err
}

func (r *Repository) Close() {
	r.db.Close()
}
