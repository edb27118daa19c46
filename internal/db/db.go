package db

import (
	"fmt"

	"educagenda/internal/agenda"
	"educagenda/internal/auth"
	"educagenda/internal/jobs"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&agenda.Event{},
		&jobs.Job{},
		&auth.User{},
	); err != nil {
		return err
	}

	// Range listing is always (timestamp asc), optionally per owner
	stmts := []string{
		`create index if not exists idx_events_timestamp on events(timestamp);`,
		`create index if not exists idx_events_owner_timestamp on events(owner, timestamp);`,
		`create index if not exists idx_jobs_due on jobs(status, run_at);`,
		`create index if not exists idx_jobs_lock on jobs(status, locked_at);`,
		`create index if not exists idx_jobs_event_pending on jobs(event_id, status);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
