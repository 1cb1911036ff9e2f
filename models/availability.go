package models

// TimeBlock is a coarse daily scheduling unit rather than a precise clock time.
type TimeBlock string

const (
	TimeBlockMorning   TimeBlock = "MORNING"
	TimeBlockAfternoon TimeBlock = "AFTERNOON"
	TimeBlockFullDay   TimeBlock = "FULL_DAY"
)

// Valid reports whether b is one of the known time blocks.
func (b TimeBlock) Valid() bool {
	switch b {
	case TimeBlockMorning, TimeBlockAfternoon, TimeBlockFullDay:
		return true
	}
	return false
}

// AvailabilityEntry is the clinic-reported availability for one
// (doctor, date, timeBlock) triple. Invariants: RemainingSlots <= MaxPatients,
// IsAvailable iff RemainingSlots > 0.
type AvailabilityEntry struct {
	TimeBlock      TimeBlock `json:"timeBlock"`
	IsAvailable    bool      `json:"isAvailable"`
	RemainingSlots int       `json:"remainingSlots"`
	MaxPatients    int       `json:"maxPatients"`
}

// Normalize clamps the entry so its invariants hold regardless of what the
// upstream API reported.
func (e AvailabilityEntry) Normalize() AvailabilityEntry {
	if e.MaxPatients < 1 {
		e.MaxPatients = 1
		e.RemainingSlots = 0
	}
	if e.RemainingSlots < 0 {
		e.RemainingSlots = 0
	}
	if e.RemainingSlots > e.MaxPatients {
		e.RemainingSlots = e.MaxPatients
	}
	e.IsAvailable = e.RemainingSlots > 0
	return e
}
