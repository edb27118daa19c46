package agenda

import (
	"context"
	"errors"
	"time"

	"educagenda/internal/jobs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")
var ErrInvalidRange = errors.New("invalid range")

// ChangeNotifier receives a table-level signal after any successful
// mutation. No row diffs: subscribers re-run their last query in full.
type ChangeNotifier interface {
	EventsChanged()
}

type Service struct {
	DB     *gorm.DB
	Loc    *time.Location
	Notify ChangeNotifier
}

func (s *Service) location() *time.Location {
	if s.Loc != nil {
		return s.Loc
	}
	return time.Local
}

func (s *Service) changed() {
	if s.Notify != nil {
		s.Notify.EventsChanged()
	}
}

// ListRange returns events with start <= timestamp <= end ascending by
// timestamp. An owner filter narrows to that user's events; nil keeps the
// listing system-wide.
func (s *Service) ListRange(ctx context.Context, start, end time.Time, owner *uint64) ([]Event, error) {
	if start.After(end) {
		return nil, ErrInvalidRange
	}

	q := s.DB.WithContext(ctx).
		Where("timestamp >= ? AND timestamp <= ?", start, end).
		Order("timestamp asc")
	if owner != nil {
		q = q.Where("owner = ?", *owner)
	}

	var rows []Event
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListDay lists the events of the local calendar day containing t.
func (s *Service) ListDay(ctx context.Context, t time.Time, owner *uint64) ([]Event, error) {
	loc := s.location()
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.Add(24*time.Hour - time.Nanosecond)
	return s.ListRange(ctx, start, end, owner)
}

// ListMonth lists the events of the month containing anchor, in order.
func (s *Service) ListMonth(ctx context.Context, anchor time.Time, owner *uint64) ([]Event, error) {
	loc := s.location()
	anchor = anchor.In(loc)
	start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return s.ListRange(ctx, start, end, owner)
}

func (s *Service) Get(ctx context.Context, id string) (Event, error) {
	var ev Event
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&ev).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Event{}, ErrNotFound
		}
		return Event{}, err
	}
	return ev, nil
}

// Create normalizes the draft, inserts the event and enqueues its reminder
// job in the same transaction.
func (s *Service) Create(ctx context.Context, d Draft) (Event, error) {
	ev, err := d.Normalize(s.location())
	if err != nil {
		return Event{}, err
	}
	ev.ID = uuid.New().String()
	now := time.Now()
	ev.CreatedAt = now
	ev.UpdatedAt = now

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ev).Error; err != nil {
			return err
		}
		return tx.Create(reminderJob(ev)).Error
	})
	if err != nil {
		return Event{}, err
	}

	s.changed()
	return ev, nil
}

// Update replaces the full row keyed by id with the normalized draft and
// reschedules the pending reminder.
func (s *Service) Update(ctx context.Context, id string, d Draft) (Event, error) {
	ev, err := d.Normalize(s.location())
	if err != nil {
		return Event{}, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur Event
		if err := tx.Where("id = ?", id).First(&cur).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		ev.ID = cur.ID
		ev.CreatedAt = cur.CreatedAt
		ev.UpdatedAt = time.Now()
		if err := tx.Save(&ev).Error; err != nil {
			return err
		}

		// avoid double dispatch: drop the old pending reminder first
		if err := dropPendingReminders(tx, id); err != nil {
			return err
		}
		return tx.Create(reminderJob(ev)).Error
	})
	if err != nil {
		return Event{}, err
	}

	s.changed()
	return ev, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&Event{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return dropPendingReminders(tx, id)
	})
	if err != nil {
		return err
	}

	s.changed()
	return nil
}

func reminderJob(ev Event) *jobs.Job {
	return &jobs.Job{
		EventID: ev.ID,
		Type:    jobs.TypeReminderDispatch,
		RunAt:   ev.RemindAt(),
		Status:  jobs.StatusPending,
	}
}

func dropPendingReminders(tx *gorm.DB, eventID string) error {
	return tx.
		Where("event_id = ? AND type = ? AND status = ?", eventID, jobs.TypeReminderDispatch, jobs.StatusPending).
		Delete(&jobs.Job{}).Error
}
