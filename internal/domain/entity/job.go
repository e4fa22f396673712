package entity

import "time"

// JobStatus tracks the lifecycle of a reminder job.
// PENDING is the only non-terminal status.
type JobStatus string

const (
	JobPending   JobStatus = "PENDING"
	JobFired     JobStatus = "FIRED"
	JobCancelled JobStatus = "CANCELLED"
)

// JobKey uniquely identifies a reminder job. At most one non-cancelled job
// may exist per key at any time.
type JobKey struct {
	FixtureID int64
	LeadTime  time.Duration
}

// ReminderJob is one scheduled reminder: fire LeadTime before kickoff.
type ReminderJob struct {
	FixtureID int64
	LeadTime  time.Duration
	FireAt    time.Time // kickoff minus lead time
	Status    JobStatus
}

// Key returns the job's identity.
func (j ReminderJob) Key() JobKey {
	return JobKey{FixtureID: j.FixtureID, LeadTime: j.LeadTime}
}
