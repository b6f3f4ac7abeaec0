// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/toeirei/addressbook/internal/book"
	"github.com/toeirei/addressbook/internal/model"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	// SQL drivers selected by store type.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// sqlOpenFunc allows tests to override database opening behavior.
var sqlOpenFunc = sql.Open

// ContactModel is the contacts table row.
type ContactModel struct {
	bun.BaseModel `bun:"table:contacts"`

	Name     string         `bun:"name,pk"`
	Birthday sql.NullString `bun:"birthday"`
}

// PhoneModel is the phones table row.
type PhoneModel struct {
	bun.BaseModel `bun:"table:phones"`

	ContactName string `bun:"contact_name,pk"`
	Number      string `bun:"number,pk"`
}

// SQLStore keeps a book in a relational database.
type SQLStore struct {
	bun    *bun.DB
	dbType string
}

// NewSQLStore opens dsn with the driver for dbType, applies pending
// migrations and returns the store.
func NewSQLStore(dbType, dsn string) (*SQLStore, error) {
	driverName := dbType
	// The pgx stdlib registers driver name "pgx".
	if dbType == "postgres" {
		driverName = "pgx"
	}
	start := time.Now()
	sqlDB, err := sqlOpenFunc(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Each connection to ":memory:" gets its own database.
	if dbType == "sqlite" && dsn == ":memory:" {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}
	dbLogf("db: opened %s driver in %s", driverName, time.Since(start))

	if err := RunMigrations(sqlDB, dbType); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &SQLStore{bun: createBunDB(sqlDB, dbType), dbType: dbType}, nil
}

// createBunDB constructs a *bun.DB for the provided *sql.DB and dbType.
func createBunDB(sqlDB *sql.DB, dbType string) *bun.DB {
	switch dbType {
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New())
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

// Load reads every contact and its phones.
func (s *SQLStore) Load(ctx context.Context) (*book.AddressBook, error) {
	var contacts []ContactModel
	if err := s.bun.NewSelect().Model(&contacts).Order("name ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to load contacts: %w", err)
	}
	var phones []PhoneModel
	if err := s.bun.NewSelect().Model(&phones).Order("contact_name ASC", "number ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to load phones: %w", err)
	}

	byContact := make(map[string][]string, len(contacts))
	for _, p := range phones {
		byContact[p.ContactName] = append(byContact[p.ContactName], p.Number)
	}

	b := book.New()
	for _, c := range contacts {
		rec, err := model.NewRecord(c.Name, c.Birthday.String, byContact[c.Name]...)
		if err != nil {
			return nil, fmt.Errorf("%w: contact %q: %w", book.ErrCorrupt, c.Name, err)
		}
		b.AddRecord(rec)
	}
	dbLogf("db: loaded %d contacts from %s", b.Len(), s.dbType)
	return b, nil
}

// Save replaces all stored contacts with the contents of b in one transaction.
func (s *SQLStore) Save(ctx context.Context, b *book.AddressBook) error {
	var contacts []ContactModel
	var phones []PhoneModel
	for _, r := range b.Records() {
		c := ContactModel{Name: r.Name()}
		if !r.Birthday().IsZero() {
			c.Birthday = sql.NullString{String: r.Birthday().String(), Valid: true}
		}
		contacts = append(contacts, c)
		for _, p := range r.Phones() {
			phones = append(phones, PhoneModel{ContactName: r.Name(), Number: p})
		}
	}

	return s.bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := ExecRaw(ctx, tx, "DELETE FROM phones"); err != nil {
			return fmt.Errorf("failed to clear phones: %w", err)
		}
		if _, err := ExecRaw(ctx, tx, "DELETE FROM contacts"); err != nil {
			return fmt.Errorf("failed to clear contacts: %w", err)
		}
		if len(contacts) > 0 {
			if _, err := tx.NewInsert().Model(&contacts).Exec(ctx); err != nil {
				return fmt.Errorf("failed to insert contacts: %w", MapDBError(err))
			}
		}
		if len(phones) > 0 {
			if _, err := tx.NewInsert().Model(&phones).Exec(ctx); err != nil {
				return fmt.Errorf("failed to insert phones: %w", MapDBError(err))
			}
		}
		dbLogf("db: saved %d contacts to %s", len(contacts), s.dbType)
		return nil
	})
}

// Close closes the underlying database.
func (s *SQLStore) Close() error {
	return s.bun.Close()
}
