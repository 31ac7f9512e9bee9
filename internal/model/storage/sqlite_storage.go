package storage

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	// sqlite driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/rub-converter/internal/logger"
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

//go:generate minimock -i config -o ./mock/config_mock.go -n ConfigMock -p mock

type config interface {
	Driver() string
	Path() string
}

type Column struct {
	Name       string
	Type       string
	PrimaryKey bool
}

type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

type Storage struct {
	db *sql.DB
}

// NewStorage opens the database file, creating it when absent.
func NewStorage(config config) (*Storage, error) {
	db, err := sql.Open(config.Driver(), config.Path())
	if err != nil {
		return nil, errors.Wrap(err, "cannot open database")
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "cannot open database")
	}
	return &Storage{db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

// EnsureSchema creates the shop tables that do not exist yet and commits once.
func (s *Storage) EnsureSchema(ctx context.Context) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "ensureSchema")
	defer span.Finish()
	defer func() {
		if err != nil {
			ext.Error.Set(span, true)
		}
	}()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "ensure schema")
	}
	defer func() {
		txErr := tx.Rollback()
		if txErr != nil && !errors.Is(txErr, sql.ErrTxDone) {
			logger.Error("error when transaction rollback", zap.Error(txErr))
		}
	}()

	for _, t := range shopSchema {
		if _, err = tx.ExecContext(ctx, t.ddl); err != nil {
			return errors.Wrapf(err, "create table %s", t.name)
		}
		logger.Info("table ensured", zap.String("table", t.name))
	}

	return errors.Wrap(tx.Commit(), "ensure schema")
}

// Tables lists user tables sorted by name.
func (s *Storage) Tables(ctx context.Context) ([]string, error) {
	query := sqlite.Select("name").
		From("sqlite_master").
		Where(sq.Eq{"type": "table"}).
		Where("name NOT LIKE ?", "sqlite_%").
		OrderBy("name")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get tables")
	}
	defer closeRows(rows)

	tables := make([]string, 0)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "get tables")
		}
		tables = append(tables, name)
	}
	return tables, errors.Wrap(rows.Err(), "get tables")
}

// Columns lists the declared columns of table in declaration order.
func (s *Storage) Columns(ctx context.Context, table string) ([]Column, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, type, pk FROM pragma_table_info(?) ORDER BY cid", table)
	if err != nil {
		return nil, errors.Wrap(err, "get columns")
	}
	defer closeRows(rows)

	cols := make([]Column, 0)
	for rows.Next() {
		var (
			c  Column
			pk int
		)
		if err = rows.Scan(&c.Name, &c.Type, &pk); err != nil {
			return nil, errors.Wrap(err, "get columns")
		}
		c.PrimaryKey = pk > 0
		cols = append(cols, c)
	}
	return cols, errors.Wrap(rows.Err(), "get columns")
}

func (s *Storage) ForeignKeys(ctx context.Context, table string) ([]ForeignKey, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT "from", "table", "to" FROM pragma_foreign_key_list(?) ORDER BY id, seq`, table)
	if err != nil {
		return nil, errors.Wrap(err, "get foreign keys")
	}
	defer closeRows(rows)

	fks := make([]ForeignKey, 0)
	for rows.Next() {
		var fk ForeignKey
		if err = rows.Scan(&fk.Column, &fk.RefTable, &fk.RefColumn); err != nil {
			return nil, errors.Wrap(err, "get foreign keys")
		}
		fks = append(fks, fk)
	}
	return fks, errors.Wrap(rows.Err(), "get foreign keys")
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		logger.Error("error closing rows", zap.Error(err))
	}
}
