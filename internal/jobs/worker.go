package jobs

import (
	"context"
	"log"
	"math"
	"time"

	"gorm.io/gorm"
)

type Worker struct {
	ID   string
	Repo *Repo
	DB   *gorm.DB
}

// local read model to avoid importing the agenda package from here
type eventRow struct {
	ID          string    `gorm:"column:id"`
	Owner       *uint64   `gorm:"column:owner"`
	Title       string    `gorm:"column:title"`
	Timestamp   time.Time `gorm:"column:timestamp"`
	Location    *string   `gorm:"column:location"`
	LeadMinutes int       `gorm:"column:lead_minutes"`
}

func (eventRow) TableName() string { return "events" }

func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(800 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			job, err := w.Repo.Claim(w.ID)
			if err != nil {
				log.Printf("worker claim error: %v\n", err)
				continue
			}
			if job == nil {
				continue
			}
			w.handle(job)
		}
	}
}

func (w *Worker) handle(job *Job) {
	switch job.Type {
	case TypeReminderDispatch:
		w.handleReminder(job)
	default:
		_ = w.Repo.MarkFailed(job.ID, "unknown job type")
	}
}

func (w *Worker) handleReminder(job *Job) {
	var ev eventRow
	if err := w.DB.
		Where("id = ?", job.EventID).
		First(&ev).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			// event deleted elsewhere, nothing to announce
			_ = w.Repo.MarkDone(job.ID)
			return
		}
		w.retry(job, "db read error")
		return
	}

	// the event itself already passed, skip the alert
	if time.Now().After(ev.Timestamp) {
		_ = w.Repo.MarkDone(job.ID)
		return
	}

	loc := ""
	if ev.Location != nil {
		loc = " @ " + *ev.Location
	}
	log.Printf("[REMINDER] event=%s title=%q at=%s%s\n", ev.ID, ev.Title, ev.Timestamp.Format("2006-01-02 15:04"), loc)
	_ = w.Repo.MarkDone(job.ID)
}

func (w *Worker) retry(job *Job, errMsg string) {
	attempts := job.Attempts + 1
	if attempts >= job.MaxAttempts {
		_ = w.Repo.MarkFailed(job.ID, errMsg)
		return
	}

	sec := math.Min(math.Pow(2, float64(attempts)), 600)
	next := time.Now().Add(time.Duration(sec) * time.Second)

	_ = w.Repo.RetryLater(job.ID, attempts, next, errMsg)
}
