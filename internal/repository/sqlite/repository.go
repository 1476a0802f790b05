package sqlite

import (
	"context"
	"database/sql"
	"sync"

	"tasklist/internal/errors"
	"tasklist/internal/logging"
	"tasklist/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository is the task store: durable CRUD over the tasks table.
type Repository interface {
	// CreateTask inserts a task and returns its new id. The name is stored
	// as given; callers validate it.
	CreateTask(ctx context.Context, name string) (int64, error)

	// ListTasks returns every task in insertion order.
	ListTasks(ctx context.Context) ([]*Task, error)

	// UpdateTask replaces the name of task id. A missing id is a no-op.
	UpdateTask(ctx context.Context, id int64, name string) error

	// DeleteTask removes task id and reports whether a row was deleted.
	DeleteTask(ctx context.Context, id int64) (bool, error)

	// Reset drops and recreates the schema, losing every task.
	Reset(ctx context.Context) error

	// SchemaVersion returns the applied migration version.
	SchemaVersion(ctx context.Context) (uint, error)

	Close() error
}

// SQLiteRepository implements Repository. Every operation holds mu for its
// whole duration and the pool is limited to one connection, so calls are
// applied one at a time.
type SQLiteRepository struct {
	mu  sync.Mutex
	db  *sql.DB
	log *logging.Logger
}

// New opens (creating if needed) the database at dbPath and brings its schema
// up to date. ":memory:" gives a private in-memory database.
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	// One connection: sqlite serializes writers anyway, and an in-memory
	// database only exists on the connection that created it.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	log := logging.Default().WithComponent("store")
	log.Debugf("opened %s", dbPath)
	return &SQLiteRepository{db: db, log: log}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.Close()
}

// CreateTask creates a new task
func (r *SQLiteRepository) CreateTask(ctx context.Context, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := ExecuteWithLastInsertID(ctx, r.db, "insert task",
		`INSERT INTO tasks (name) VALUES (?)`, name)
	if err != nil {
		return 0, err
	}
	r.log.Debugf("created task %d", id)
	return id, nil
}

// ListTasks retrieves all tasks
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// id order is insertion order: AUTOINCREMENT never hands out a smaller id.
	return QueryMultiple(ctx, r.db, `SELECT id, name FROM tasks ORDER BY id`, ScanTasks, "tasks")
}

// UpdateTask updates an existing task
func (r *SQLiteRepository) UpdateTask(ctx context.Context, id int64, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, err := ExecuteRowsAffected(ctx, r.db, "update task",
		`UPDATE tasks SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return err
	}
	if n == 0 {
		r.log.Debugf("update of task %d matched no rows", id)
	}
	return nil
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, err := ExecuteRowsAffected(ctx, r.db, "delete task",
		`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Reset drops and recreates the schema.
func (r *SQLiteRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := migrations.Reset(r.db); err != nil {
		return errors.NewDatabaseError("reset schema", err)
	}
	r.log.Infof("task store reset")
	return nil
}

// SchemaVersion returns the applied migration version.
func (r *SQLiteRepository) SchemaVersion(ctx context.Context) (uint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, err := migrations.Version(r.db)
	if err != nil {
		return 0, errors.NewDatabaseError("read schema version", err)
	}
	return v, nil
}
