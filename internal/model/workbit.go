package model

import "time"

// WorkBit is a timestamped progress note appended to a task. Bits are
// append-only and live and die with their parent task.
type WorkBit struct {
	ID          int64
	TaskID      int64
	At          time.Time
	Description string
}
