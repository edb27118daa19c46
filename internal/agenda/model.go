package agenda

import "time"

// Category is the fixed set of event categories.
type Category string

const (
	CategoryPersonal  Category = "Personal"
	CategoryWork      Category = "Work"
	CategoryHealth    Category = "Health"
	CategoryEducation Category = "Education"
	CategoryOther     Category = "Other"
)

// DefaultLeadMinutes is used when the lead-time field is empty or unparseable.
const DefaultLeadMinutes = 10

var categories = map[Category]struct{}{
	CategoryPersonal:  {},
	CategoryWork:      {},
	CategoryHealth:    {},
	CategoryEducation: {},
	CategoryOther:     {},
}

// ValidCategory reports whether c is one of the five fixed labels.
func ValidCategory(c Category) bool {
	_, ok := categories[c]
	return ok
}

// Event is a single agenda entry.
// Owner is nullable: events created before login integration have no owner
// and listings stay system-wide unless a filter is asked for explicitly.
type Event struct {
	ID          string    `gorm:"primaryKey;type:text"`
	Owner       *uint64   `gorm:"index"`
	Title       string    `gorm:"not null"`
	Timestamp   time.Time `gorm:"index;not null"`
	Location    *string   `gorm:"type:text"`
	LeadMinutes int       `gorm:"not null;default:10"`
	Category    Category  `gorm:"type:text;not null;default:'Personal'"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// RemindAt is the moment the lead-time alert for the event is due.
func (e Event) RemindAt() time.Time {
	return e.Timestamp.Add(-time.Duration(e.LeadMinutes) * time.Minute)
}
