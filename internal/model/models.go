package model

import "time"

// Record is one normalized row of the campaign log: a single mail drop
// (or a no-mail campaign that only gets digital follow-up).
type Record struct {
	Date     time.Time `json:"date"`
	Campaign string    `json:"campaign"`
	Category string    `json:"category"`
	Part     string    `json:"part,omitempty"`
	Count    int       `json:"count"`
	Cost     *float64  `json:"cost,omitempty"` // nil when the export had no usable cost
	Channels []string  `json:"channels,omitempty"`
	Tags     []string  `json:"tags,omitempty"`
	NoMail   bool      `json:"no_mail"`
}

// PlannedRecord is a Record plus its derived follow-up date. Derivation
// produces these instead of mutating the input records.
type PlannedRecord struct {
	Record
	FollowUp time.Time `json:"follow_up"`
}

type TaskType string

const (
	TaskMail      TaskType = "mail"
	TaskText      TaskType = "text"
	TaskVoicemail TaskType = "voicemail"
)

// Task is a scheduled obligation derived from a record. It shares the
// originating record and is never mutated after creation.
type Task struct {
	Date   time.Time      `json:"date"`
	Type   TaskType       `json:"type"`
	Record *PlannedRecord `json:"-"`

	Campaign string `json:"campaign"`
}

// ReminderGroup collects the task types due for one campaign on one date,
// used by the week-of-interest view.
type ReminderGroup struct {
	Date     time.Time  `json:"date"`
	Campaign string     `json:"campaign"`
	Types    []TaskType `json:"types"`
}

// GaugeStatus reports the current month's mail volume against the fixed
// 10,000-piece target.
type GaugeStatus struct {
	Month   string `json:"month"`
	Volume  int    `json:"volume"`
	Target  int    `json:"target"`
	InRange bool   `json:"in_range"` // volume within [9000, 10000]
}

// Snapshot is the full result of one load. A new load replaces the
// previous snapshot wholesale; there is no cross-load identity.
type Snapshot struct {
	Records  []PlannedRecord `json:"records"`
	Tasks    []Task          `json:"tasks"`
	Dropped  int             `json:"dropped_rows"`
	LoadedAt time.Time       `json:"loaded_at"`
}
