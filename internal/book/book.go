// Package book implements the phone book store: an ordered in-memory list
// of contacts loaded once from a JSON data file and written back in full
// after every add, edit or remove.
//
// Positions are 1-based throughout this package. A Book is not safe for
// concurrent use.
package book

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/contacts/internal/storage"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Book errors.
var (
	ErrInvalidIndex = errors.New("invalid index")
	ErrNotFound     = errors.New("record not found")
)

// Entry pairs a record with its 1-based position in the book. Search results
// carry the original position so a selection maps back to the right record.
type Entry struct {
	Position int
	Contact  types.Contact
}

// Outcome describes a completed add or edit. Notices holds a
// *types.ValidationError for every input replaced by a placeholder.
type Outcome struct {
	Position int
	Contact  types.Contact
	Notices  []error
}

// Book owns the contact list and its backing file.
type Book struct {
	file    *storage.File
	records []types.Contact
	loadErr error
	logger  *zap.Logger
	now     func() time.Time
}

// Option configures a Book.
type Option func(*Book)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(b *Book) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithClock replaces time.Now for creation and edit timestamps.
func WithClock(now func() time.Time) Option {
	return func(b *Book) {
		if now != nil {
			b.now = now
		}
	}
}

// Open loads the book stored at path, creating the file with an empty array
// if it does not exist. A file that cannot be read or decoded is not fatal:
// the book starts empty and the failure is available from LoadError. Open
// returns an error only when the missing file cannot be created.
func Open(path string, opts ...Option) (*Book, error) {
	b := &Book{
		file:   storage.NewFile(path),
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}

	created, err := b.file.Ensure()
	if err != nil {
		return nil, fmt.Errorf("open phone book: %w", err)
	}
	if created {
		b.logger.Info("created phone book", zap.String("path", path))
	}

	b.load()
	return b, nil
}

func (b *Book) load() {
	records, err := b.file.Load()
	if err != nil {
		b.loadErr = err
		b.logger.Warn("phone book not loaded, starting empty",
			zap.String("path", b.file.Path()), zap.Error(err))
		return
	}
	b.records = records

	// Files written without record IDs get them once, then keep them.
	assigned := 0
	for _, c := range b.records {
		if c.AssignID() {
			assigned++
		}
	}
	if assigned > 0 {
		b.logger.Info("assigned record IDs", zap.Int("records", assigned))
		if err := b.Save(); err != nil {
			b.logger.Error("saving assigned IDs", zap.Error(err))
		}
	}

	b.logger.Debug("opened phone book",
		zap.String("path", b.file.Path()), zap.Int("records", len(b.records)))
}

// LoadError returns the error that kept the data file from loading, or nil.
func (b *Book) LoadError() error { return b.loadErr }

// Path returns the backing file path.
func (b *Book) Path() string { return b.file.Path() }

// Save writes the full list to the backing file. Mutating operations call it
// themselves; an unchanged list always produces the same file content.
func (b *Book) Save() error {
	if err := b.file.Save(b.records); err != nil {
		b.logger.Error("saving phone book", zap.String("path", b.file.Path()), zap.Error(err))
		return fmt.Errorf("save phone book: %w", err)
	}
	return nil
}

// Count returns the number of records.
func (b *Book) Count() int { return len(b.records) }

// CountMessage reports the record count in words.
func (b *Book) CountMessage() string {
	return fmt.Sprintf("The Phone Book has %d records.", len(b.records))
}

// List returns every record with its position, in insertion order.
func (b *Book) List() []Entry {
	entries := make([]Entry, len(b.records))
	for i, c := range b.records {
		entries[i] = Entry{Position: i + 1, Contact: c}
	}
	return entries
}

// Listing renders List as numbered lines ("1- Ann Smith"). An empty book
// yields the single zero-count line.
func (b *Book) Listing() []string {
	if len(b.records) == 0 {
		return []string{b.CountMessage()}
	}
	lines := make([]string, len(b.records))
	for i, c := range b.records {
		lines[i] = fmt.Sprintf("%d- %s", i+1, c.DisplayName())
	}
	return lines
}

// Get returns the record at position.
func (b *Book) Get(position int) (types.Contact, error) {
	if position < 1 || position > len(b.records) {
		return nil, fmt.Errorf("%w: %d (have %d records)", ErrInvalidIndex, position, len(b.records))
	}
	return b.records[position-1], nil
}

// Find returns the entry for the record with the given ID.
func (b *Book) Find(id string) (Entry, error) {
	for i, c := range b.records {
		if c.ID() == id {
			return Entry{Position: i + 1, Contact: c}, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}
