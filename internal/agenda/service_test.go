package agenda

import (
	"context"
	"errors"
	"testing"
	"time"

	"educagenda/internal/jobs"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type countingNotifier struct{ n int }

func (c *countingNotifier) EventsChanged() { c.n++ }

func testService(t *testing.T) (*Service, *countingNotifier) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := gdb.AutoMigrate(&Event{}, &jobs.Job{}); err != nil {
		t.Fatal(err)
	}
	notifier := &countingNotifier{}
	return &Service{DB: gdb, Loc: time.UTC, Notify: notifier}, notifier
}

func draft(title, date, clock string) Draft {
	return Draft{Title: title, Date: date, TimeOfDay: clock, LeadMinutes: "15", Category: "Health"}
}

func TestCreateAndGet(t *testing.T) {
	svc, notifier := testService(t)
	ctx := context.Background()

	ev, err := svc.Create(ctx, Draft{
		Title:       "Consulta",
		Date:        "2024-05-10",
		TimeOfDay:   "14:30",
		Location:    "Clínica X",
		LeadMinutes: "15",
		Category:    "Health",
	})
	if err != nil {
		t.Fatal(err)
	}
	if ev.ID == "" {
		t.Fatal("expected generated id")
	}
	if notifier.n != 1 {
		t.Errorf("notifications = %d, want 1", notifier.n)
	}

	got, err := svc.Get(ctx, ev.ID)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	if !got.Timestamp.Equal(want) {
		t.Errorf("timestamp = %v, want %v", got.Timestamp, want)
	}
	if got.LeadMinutes != 15 || got.Category != CategoryHealth {
		t.Errorf("row = %+v", got)
	}
}

func TestCreateEnqueuesReminder(t *testing.T) {
	svc, _ := testService(t)

	ev, err := svc.Create(context.Background(), draft("Consulta", "2030-05-10", "14:30"))
	if err != nil {
		t.Fatal(err)
	}

	var j jobs.Job
	if err := svc.DB.Where("event_id = ?", ev.ID).First(&j).Error; err != nil {
		t.Fatal(err)
	}
	if j.Type != jobs.TypeReminderDispatch || j.Status != jobs.StatusPending {
		t.Errorf("job = %+v", j)
	}
	wantRun := time.Date(2030, 5, 10, 14, 15, 0, 0, time.UTC)
	if !j.RunAt.Equal(wantRun) {
		t.Errorf("run_at = %v, want %v", j.RunAt, wantRun)
	}
}

func TestCreateRejectsBlankTitleWithoutWriting(t *testing.T) {
	svc, notifier := testService(t)

	_, err := svc.Create(context.Background(), draft("   ", "2024-05-10", "14:30"))
	if !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}

	var n int64
	svc.DB.Model(&Event{}).Count(&n)
	if n != 0 {
		t.Errorf("events written = %d, want 0", n)
	}
	if notifier.n != 0 {
		t.Errorf("notifications = %d, want 0", notifier.n)
	}
}

func TestCreateDefaultsLeadWhenEmpty(t *testing.T) {
	svc, _ := testService(t)

	d := draft("Reunião", "2024-05-10", "09:00")
	d.LeadMinutes = ""
	ev, err := svc.Create(context.Background(), d)
	if err != nil {
		t.Fatal(err)
	}
	if ev.LeadMinutes != DefaultLeadMinutes {
		t.Errorf("lead = %d, want %d", ev.LeadMinutes, DefaultLeadMinutes)
	}
}

func TestListRangeOrderingAndBounds(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	for _, c := range []struct{ date, clock string }{
		{"2024-05-20", "18:00"},
		{"2024-05-10", "14:30"},
		{"2024-05-10", "09:00"},
		{"2024-06-02", "10:00"}, // outside range
	} {
		if _, err := svc.Create(ctx, draft("ev "+c.date+" "+c.clock, c.date, c.clock)); err != nil {
			t.Fatal(err)
		}
	}

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)
	rows, err := svc.ListRange(ctx, start, end, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Timestamp.Before(rows[i-1].Timestamp) {
			t.Errorf("rows out of order: %v after %v", rows[i].Timestamp, rows[i-1].Timestamp)
		}
	}
	for _, ev := range rows {
		if ev.Timestamp.Before(start) || ev.Timestamp.After(end) {
			t.Errorf("row %v outside [%v, %v]", ev.Timestamp, start, end)
		}
	}
}

func TestListRangeRejectsInvertedRange(t *testing.T) {
	svc, _ := testService(t)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	if _, err := svc.ListRange(context.Background(), start, end, nil); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestListRangeOwnerFilter(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	owner := uint64(7)
	d := draft("mine", "2024-05-10", "09:00")
	d.Owner = &owner
	if _, err := svc.Create(ctx, d); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(ctx, draft("unowned", "2024-05-10", "10:00")); err != nil {
		t.Fatal(err)
	}

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	all, err := svc.ListRange(ctx, start, end, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("unfiltered rows = %d, want 2", len(all))
	}

	mine, err := svc.ListRange(ctx, start, end, &owner)
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 1 || mine[0].Title != "mine" {
		t.Errorf("filtered rows = %v", mine)
	}
}

func TestUpdateReplacesRowAndReschedules(t *testing.T) {
	svc, notifier := testService(t)
	ctx := context.Background()

	ev, err := svc.Create(ctx, draft("Consulta", "2030-05-10", "14:30"))
	if err != nil {
		t.Fatal(err)
	}

	upd := draft("Consulta remarcada", "2030-05-12", "10:00")
	upd.LeadMinutes = "30"
	got, err := svc.Update(ctx, ev.ID, upd)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != ev.ID {
		t.Errorf("id changed: %s -> %s", ev.ID, got.ID)
	}
	if got.Title != "Consulta remarcada" || got.LeadMinutes != 30 {
		t.Errorf("row = %+v", got)
	}

	var pending []jobs.Job
	if err := svc.DB.Where("event_id = ? AND status = ?", ev.ID, jobs.StatusPending).Find(&pending).Error; err != nil {
		t.Fatal(err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending jobs = %d, want 1", len(pending))
	}
	wantRun := time.Date(2030, 5, 12, 9, 30, 0, 0, time.UTC)
	if !pending[0].RunAt.Equal(wantRun) {
		t.Errorf("run_at = %v, want %v", pending[0].RunAt, wantRun)
	}

	if notifier.n != 2 {
		t.Errorf("notifications = %d, want 2", notifier.n)
	}
}

func TestUpdateMissingEvent(t *testing.T) {
	svc, _ := testService(t)
	if _, err := svc.Update(context.Background(), "nope", draft("x", "2024-05-10", "09:00")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRemovesRowAndPendingJobs(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	ev, err := svc.Create(ctx, draft("Consulta", "2030-05-10", "14:30"))
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(ctx, ev.ID); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Get(ctx, ev.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	var n int64
	svc.DB.Model(&jobs.Job{}).Where("event_id = ? AND status = ?", ev.ID, jobs.StatusPending).Count(&n)
	if n != 0 {
		t.Errorf("pending jobs after delete = %d, want 0", n)
	}

	if err := svc.Delete(ctx, ev.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
