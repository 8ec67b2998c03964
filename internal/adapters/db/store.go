// internal/adapters/db/store.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/ammerola/inventory-catalog/internal/core/domain"
	"github.com/ammerola/inventory-catalog/internal/core/ports"
)

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	sortTermPattern   = regexp.MustCompile(`(?i)^[A-Za-z_][A-Za-z0-9_]*(\s+(ASC|DESC))?$`)
)

// SQLiteStore implements ports.Store over the embedded database.
type SQLiteStore struct {
	db     *Database
	sb     squirrel.StatementBuilderType
	logger *slog.Logger
}

// Statically assert that *SQLiteStore implements the Store interface.
var _ ports.Store = (*SQLiteStore)(nil)

// NewStore wraps an already opened database.
func NewStore(db *Database, logger *slog.Logger) *SQLiteStore {
	return &SQLiteStore{
		db:     db,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		logger: logger.With(slog.String("repository", "inventory")),
	}
}

// Open opens the database file and applies the schema if it is missing.
// Calling it again on the same file keeps existing rows.
func Open(ctx context.Context, config *Config, logger *slog.Logger) (*SQLiteStore, error) {
	database, err := NewDatabase(ctx, config, logger)
	if err != nil {
		return nil, err
	}

	if err := EnsureSchema(ctx, database, logger); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return NewStore(database, logger), nil
}

// Database returns the owned database.
func (s *SQLiteStore) Database() *Database {
	return s.db
}

// Query runs a SELECT and reads every row before returning.
func (s *SQLiteStore) Query(ctx context.Context, table string, projection []string, selection string, args []any, sort string) (*domain.ResultSet, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	if err := checkColumns(projection); err != nil {
		return nil, err
	}
	if err := checkSort(sort); err != nil {
		return nil, err
	}

	columns := projection
	if len(columns) == 0 {
		columns = []string{"*"}
	}

	qb := s.sb.Select(columns...).From(table)
	if selection != "" {
		qb = qb.Where(selection, args...)
	}
	if sort != "" {
		qb = qb.OrderBy(sort)
	}

	query, queryArgs, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	s.logQuery(ctx, query, len(queryArgs))

	rows, err := s.db.db.QueryContext(ctx, query, queryArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	rs, err := materialize(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s rows: %w", table, err)
	}

	s.logger.DebugContext(ctx, "query completed",
		slog.String("table", table),
		slog.Int("rows", rs.Count()))

	return rs, nil
}

// Insert adds one row and returns its id, or -1 on failure.
func (s *SQLiteStore) Insert(ctx context.Context, table string, values map[string]any) (int64, error) {
	if err := checkTable(table); err != nil {
		return -1, err
	}
	if len(values) == 0 {
		return -1, fmt.Errorf("%w: insert into %s without values", domain.ErrStoreFailure, table)
	}

	query, args, err := s.sb.Insert(table).SetMap(values).ToSql()
	if err != nil {
		return -1, fmt.Errorf("failed to build insert: %w", err)
	}
	s.logQuery(ctx, query, len(args))

	res, err := s.db.db.ExecContext(ctx, query, args...)
	if err != nil {
		return -1, fmt.Errorf("%w: failed to insert into %s: %w", domain.ErrStoreFailure, table, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return -1, fmt.Errorf("%w: failed to read inserted id: %w", domain.ErrStoreFailure, err)
	}

	s.logger.DebugContext(ctx, "row inserted",
		slog.String("table", table),
		slog.Int64("id", id))

	return id, nil
}

// Update changes the matching rows and returns how many were affected.
func (s *SQLiteStore) Update(ctx context.Context, table string, values map[string]any, selection string, args []any) (int64, error) {
	if err := checkTable(table); err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, nil
	}

	ub := s.sb.Update(table).SetMap(values)
	if selection != "" {
		ub = ub.Where(selection, args...)
	}

	query, queryArgs, err := ub.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build update: %w", err)
	}
	s.logQuery(ctx, query, len(queryArgs))

	res, err := s.db.db.ExecContext(ctx, query, queryArgs...)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to update %s: %w", domain.ErrStoreFailure, table, err)
	}

	return rowsAffected(res)
}

// Delete removes the matching rows and returns how many were removed.
func (s *SQLiteStore) Delete(ctx context.Context, table string, selection string, args []any) (int64, error) {
	if err := checkTable(table); err != nil {
		return 0, err
	}

	dq := s.sb.Delete(table)
	if selection != "" {
		dq = dq.Where(selection, args...)
	}

	query, queryArgs, err := dq.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete: %w", err)
	}
	s.logQuery(ctx, query, len(queryArgs))

	res, err := s.db.db.ExecContext(ctx, query, queryArgs...)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to delete from %s: %w", domain.ErrStoreFailure, table, err)
	}

	return rowsAffected(res)
}

// Recreate drops and recreates the schema.
func (s *SQLiteStore) Recreate(ctx context.Context) error {
	migrator, err := NewMigrator(s.db, s.logger)
	if err != nil {
		return err
	}
	if err := migrator.Recreate(ctx); err != nil {
		return fmt.Errorf("failed to recreate schema: %w", err)
	}
	s.logger.WarnContext(ctx, "schema recreated")
	return nil
}

// Status describes the schema and contents of the store.
type Status struct {
	SchemaVersion uint
	Dirty         bool
	Products      int64
	Health        map[string]interface{}
}

// Status reports the applied schema version, the number of products and
// the connection health.
func (s *SQLiteStore) Status(ctx context.Context) (*Status, error) {
	migrator, err := NewMigrator(s.db, s.logger)
	if err != nil {
		return nil, err
	}
	version, dirty, err := migrator.Version(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := s.sb.Select("COUNT(*)").From(domain.TableInventory).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build count: %w", err)
	}
	var products int64
	if err := s.db.db.QueryRowContext(ctx, query, args...).Scan(&products); err != nil {
		return nil, fmt.Errorf("%w: failed to count products: %w", domain.ErrStoreFailure, err)
	}

	return &Status{
		SchemaVersion: version,
		Dirty:         dirty,
		Products:      products,
		Health:        s.db.Health(ctx),
	}, nil
}

// Ping verifies the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close closes the owned database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) logQuery(ctx context.Context, query string, argCount int) {
	if !s.db.config.EnableQueryLogging {
		return
	}
	s.logger.DebugContext(ctx, "executing statement",
		slog.String("sql", query),
		slog.Int("args", argCount))
}

func checkTable(table string) error {
	if !identifierPattern.MatchString(table) {
		return fmt.Errorf("%w: invalid table name %q", domain.ErrStoreFailure, table)
	}
	return nil
}

func checkColumns(columns []string) error {
	for _, c := range columns {
		if !identifierPattern.MatchString(c) {
			return fmt.Errorf("%w: invalid column name %q", domain.ErrStoreFailure, c)
		}
	}
	return nil
}

// checkSort accepts a comma separated list of "column [ASC|DESC]" terms.
func checkSort(sort string) error {
	if sort == "" {
		return nil
	}
	for _, term := range strings.Split(sort, ",") {
		if !sortTermPattern.MatchString(strings.TrimSpace(term)) {
			return fmt.Errorf("%w: invalid sort term %q", domain.ErrStoreFailure, term)
		}
	}
	return nil
}

func rowsAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: failed to read affected rows: %w", domain.ErrStoreFailure, err)
	}
	return n, nil
}

// materialize copies every row so the driver cursor can be released.
func materialize(rows *sql.Rows) (*domain.ResultSet, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var data [][]any
	for rows.Next() {
		cells := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, c := range cells {
			if b, ok := c.([]byte); ok {
				cells[i] = string(b)
			}
		}
		data = append(data, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return domain.NewResultSet(columns, data), nil
}
