package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/logging"
	"github.com/renato0307/hotline/internal/ports"
)

const (
	maxRetries = 3

	// driverName is go-sqlite3 with the fold_case SQL function registered
	driverName = "sqlite3_hotline"
)

func init() {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("fold_case", domain.FoldCase, true)
		},
	})
}

// SQLiteLedger implements ports.Ledger using GORM
type SQLiteLedger struct {
	db  *gorm.DB
	now func() time.Time
}

// Verify interface compliance at compile time
var _ ports.Ledger = (*SQLiteLedger)(nil)

// NewSQLiteLedger opens (or creates) the ledger database at dbPath
func NewSQLiteLedger(dbPath string) (*SQLiteLedger, error) {
	if strings.HasPrefix(dbPath, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: driverName, DSN: dbPath}), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the server append while CLI commands read
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&LogModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate logs schema: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Ledger opened", "path", dbPath)

	return &SQLiteLedger{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}, nil
}

// NewSQLiteLedgerForPath opens the ledger inside a HOTLINE_HOME directory
func NewSQLiteLedgerForPath(hotlineHome string) (*SQLiteLedger, error) {
	return NewSQLiteLedger(filepath.Join(hotlineHome, "hooks.db"))
}

// Close closes the database connection
func (r *SQLiteLedger) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Insert implements LogWriter.Insert
func (r *SQLiteLedger) Insert(ctx context.Context, input domain.LogInput) (domain.LogEntry, error) {
	model := domainToLogModel(input)
	model.Timestamp = r.now()

	var stored LogModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&model).Error; err != nil {
				return err
			}
			// Re-read so callers broadcast exactly what was committed
			return tx.First(&stored, model.ID).Error
		})
	}, maxRetries)
	if err != nil {
		return domain.LogEntry{}, fmt.Errorf("%w: insert log: %v", domain.ErrStorage, err)
	}

	return logModelToDomain(stored), nil
}

// Get implements LogReader.Get
func (r *SQLiteLedger) Get(ctx context.Context, id int64) (domain.LogEntry, error) {
	var model LogModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).First(&model, id).Error
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LogEntry{}, fmt.Errorf("log %d: %w", id, domain.ErrNotFound)
		}
		return domain.LogEntry{}, fmt.Errorf("%w: get log %d: %v", domain.ErrStorage, id, err)
	}
	return logModelToDomain(model), nil
}

// Query implements LogReader.Query
func (r *SQLiteLedger) Query(ctx context.Context, filter domain.LogFilter) ([]domain.LogEntry, error) {
	filter = filter.Normalized()

	var models []LogModel
	err := withRetry(func() error {
		return applyFilter(r.db.WithContext(ctx).Model(&LogModel{}), filter).
			Order("timestamp DESC").
			Order("id DESC").
			Limit(filter.Limit).
			Offset(filter.Offset).
			Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("%w: query logs: %v", domain.ErrStorage, err)
	}

	return logModelsToDomain(models), nil
}

// Count implements LogReader.Count
func (r *SQLiteLedger) Count(ctx context.Context, filter domain.LogFilter) (int64, error) {
	var total int64
	err := withRetry(func() error {
		return applyFilter(r.db.WithContext(ctx).Model(&LogModel{}), filter).Count(&total).Error
	}, maxRetries)
	if err != nil {
		return 0, fmt.Errorf("%w: count logs: %v", domain.ErrStorage, err)
	}
	return total, nil
}

// ClearAll implements LogClearer.ClearAll
func (r *SQLiteLedger) ClearAll(ctx context.Context) (int64, error) {
	var deleted int64
	err := withRetry(func() error {
		result := r.db.WithContext(ctx).
			Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&LogModel{})
		deleted = result.RowsAffected
		return result.Error
	}, maxRetries)
	if err != nil {
		return 0, fmt.Errorf("%w: clear logs: %v", domain.ErrStorage, err)
	}

	logging.Logger.Info("Ledger cleared", "deleted", deleted)
	return deleted, nil
}

// applyFilter adds the AND-combined filter conditions; empty fields are skipped
func applyFilter(query *gorm.DB, filter domain.LogFilter) *gorm.DB {
	if filter.HookType != "" {
		query = query.Where("hook_type = ?", string(filter.HookType))
	}
	if filter.SessionID != "" {
		query = query.Where("session_id = ?", filter.SessionID)
	}
	if filter.Keyword != "" {
		// SQLite's LOWER folds ASCII only
		pattern := "%" + escapeLike(domain.FoldCase(filter.Keyword)) + "%"
		query = query.Where(
			`(fold_case(COALESCE(message, '')) LIKE ? ESCAPE '\' OR fold_case(COALESCE(tool_name, '')) LIKE ? ESCAPE '\')`,
			pattern, pattern,
		)
	}
	return query
}

// escapeLike makes % and _ match literally
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			logging.Logger.Debug("Ledger busy, retrying", "attempt", i+1)
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, err)
}
