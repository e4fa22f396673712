package service

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/blaugranahub/matchday-bot/internal/domain/contract"
	"github.com/blaugranahub/matchday-bot/internal/domain/entity"
)

const fetchTimeout = 30 * time.Second

// scheduler owns the live set of pending reminder jobs. One goroutine runs
// mainLoop with a single coordinating timer over the earliest pending fire
// instant and the next daily refresh; one mutex guards the pending set and
// every status transition. Jobs move PENDING→FIRED when dispatched and
// PENDING→CANCELLED when a resync drops them; both states are terminal.
type scheduler struct {
	dm           contract.DataManager
	source       contract.FixtureSource
	dispatcher   *dispatcher
	leadTimes    []time.Duration
	competitions []entity.Competition
	loc          *time.Location
	resyncHour   int

	mu       sync.Mutex
	jobs     map[entity.JobKey]*entity.ReminderJob
	fixtures map[int64]entity.Fixture

	resyncRequested chan struct{}
	stopChan        chan struct{}
	running         bool // guarded by mu
	stopped         bool // guarded by mu; Stop is terminal
	now             func() time.Time
}

func newScheduler(
	dm contract.DataManager,
	source contract.FixtureSource,
	dispatcher *dispatcher,
	leadTimes []time.Duration,
	competitions []entity.Competition,
	loc *time.Location,
	resyncHour int,
) *scheduler {
	return &scheduler{
		dm:              dm,
		source:          source,
		dispatcher:      dispatcher,
		leadTimes:       leadTimes,
		competitions:    competitions,
		loc:             loc,
		resyncHour:      resyncHour,
		jobs:            make(map[entity.JobKey]*entity.ReminderJob),
		fixtures:        make(map[int64]entity.Fixture),
		resyncRequested: make(chan struct{}, 1),
		stopChan:        make(chan struct{}),
		now:             time.Now,
	}
}

// Start launches the scheduling loop. Starting twice is a no-op, and a
// stopped scheduler cannot be restarted.
func (s *scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running || s.stopped {
		return
	}
	s.running = true
	log.Println("Scheduler starting...")
	go s.mainLoop()
}

func (s *scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	s.stopped = true
	log.Println("Scheduler stopping...")
	close(s.stopChan)
}

// RequestResync asks the main loop to refresh outside the daily cycle.
// Non-blocking; a refresh is already queued when the channel is full.
func (s *scheduler) RequestResync() {
	select {
	case s.resyncRequested <- struct{}{}:
	default:
	}
}

func (s *scheduler) mainLoop() {
	s.refresh()
	s.fireDue()

	for {
		wake, isRefresh := s.nextWake(s.now())

		wait := wake.Sub(s.now())
		if wait < 0 {
			wait = 0
		}
		timer := time.NewTimer(wait)

		select {
		case <-timer.C:
			if isRefresh {
				s.refresh()
			}
			s.fireDue()

		case <-s.resyncRequested:
			timer.Stop()
			log.Println("On-demand resync requested...")
			s.refresh()
			s.fireDue()

		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}

// nextWake returns the next instant the loop must act on: the earliest
// pending fire instant or the daily refresh, whichever comes first. The
// second return reports whether that instant is the refresh.
func (s *scheduler) nextWake(now time.Time) (time.Time, bool) {
	refreshAt := s.nextRefresh(now)

	s.mu.Lock()
	var earliest time.Time
	for _, job := range s.jobs {
		if job.Status != entity.JobPending {
			continue
		}
		if earliest.IsZero() || job.FireAt.Before(earliest) {
			earliest = job.FireAt
		}
	}
	s.mu.Unlock()

	if !earliest.IsZero() && earliest.Before(refreshAt) {
		return earliest, false
	}
	return refreshAt, true
}

// nextRefresh returns the next daily refresh instant, at resyncHour in the
// display timezone.
func (s *scheduler) nextRefresh(now time.Time) time.Time {
	local := now.In(s.loc)
	refreshAt := time.Date(local.Year(), local.Month(), local.Day(), s.resyncHour, 0, 0, 0, s.loc)
	if !refreshAt.After(now) {
		refreshAt = refreshAt.AddDate(0, 0, 1)
	}
	return refreshAt
}

// refresh fetches fixtures for every tracked competition and rebuilds the
// reminder plan. Any fetch failure keeps the existing schedule untouched;
// the next cycle retries.
func (s *scheduler) refresh() {
	now := s.now()

	var fixtures []entity.Fixture
	for _, comp := range s.competitions {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		fetched, err := s.source.ListUpcoming(ctx, comp)
		cancel()
		if err != nil {
			log.Printf("Fixture fetch failed for %s, keeping existing schedule: %v", comp, err)
			return
		}
		fixtures = append(fixtures, fetched...)
	}

	plan := PlanReminders(fixtures, s.leadTimes, now)
	s.resync(plan, fixtures)
	log.Printf("Schedule resynced: %d fixtures, %d pending reminders", len(fixtures), len(plan))
}

// resync atomically replaces the pending set with the new plan. Jobs that
// survive with the same key and fire instant keep their original arm; jobs
// missing from the plan (or re-keyed to a new fire instant by a
// postponement) are cancelled before the lock is released, so no dispatch
// can be observed for them afterwards.
func (s *scheduler) resync(plan []entity.ReminderJob, fixtures []entity.Fixture) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[entity.JobKey]*entity.ReminderJob, len(plan))
	for _, planned := range plan {
		key := planned.Key()
		if existing, ok := s.jobs[key]; ok {
			if existing.Status == entity.JobPending && existing.FireAt.Equal(planned.FireAt) {
				next[key] = existing
				continue
			}
			if existing.Status == entity.JobPending {
				// Same key, moved fire instant: the fixture was postponed.
				existing.Status = entity.JobCancelled
			}
		}
		job := planned
		job.Status = entity.JobPending
		next[key] = &job
	}

	for key, job := range s.jobs {
		if _, kept := next[key]; !kept && job.Status == entity.JobPending {
			job.Status = entity.JobCancelled
		}
	}

	s.jobs = next
	s.fixtures = make(map[int64]entity.Fixture, len(fixtures))
	for _, fx := range fixtures {
		s.fixtures[fx.ID] = fx
	}
}

// fireDue claims every pending job whose fire instant has passed and
// dispatches it. Claiming (PENDING→FIRED) happens under the mutex, so a job
// fires at most once even if a resync re-arms an identical fire instant.
// Jobs already overdue at resync or startup fire here immediately: late
// delivery beats missed delivery.
func (s *scheduler) fireDue() {
	now := s.now()

	s.mu.Lock()
	var due []entity.ReminderJob
	fixtures := make(map[int64]entity.Fixture)
	for _, job := range s.jobs {
		if job.Status != entity.JobPending || job.FireAt.After(now) {
			continue
		}
		job.Status = entity.JobFired
		due = append(due, *job)
		if fx, ok := s.fixtures[job.FixtureID]; ok {
			fixtures[job.FixtureID] = fx
		}
	}
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool { return due[i].FireAt.Before(due[j].FireAt) })

	for _, job := range due {
		fx, ok := fixtures[job.FixtureID]
		if !ok {
			log.Printf("No fixture data for job %d/%s, skipping dispatch", job.FixtureID, job.LeadTime)
			continue
		}
		s.dispatcher.Dispatch(job, fx)
	}
}

// UpcomingFixtures returns the fixtures currently known to the engine,
// soonest kickoff first.
func (s *scheduler) UpcomingFixtures() []entity.Fixture {
	s.mu.Lock()
	fixtures := make([]entity.Fixture, 0, len(s.fixtures))
	for _, fx := range s.fixtures {
		fixtures = append(fixtures, fx)
	}
	s.mu.Unlock()

	sort.Slice(fixtures, func(i, j int) bool {
		if !fixtures[i].Kickoff.Equal(fixtures[j].Kickoff) {
			return fixtures[i].Kickoff.Before(fixtures[j].Kickoff)
		}
		return fixtures[i].ID < fixtures[j].ID
	})
	return fixtures
}

// PendingJobs returns a snapshot of the jobs still waiting to fire,
// earliest first.
func (s *scheduler) PendingJobs() []entity.ReminderJob {
	s.mu.Lock()
	jobs := make([]entity.ReminderJob, 0, len(s.jobs))
	for _, job := range s.jobs {
		if job.Status == entity.JobPending {
			jobs = append(jobs, *job)
		}
	}
	s.mu.Unlock()

	sort.Slice(jobs, func(i, j int) bool {
		if !jobs[i].FireAt.Equal(jobs[j].FireAt) {
			return jobs[i].FireAt.Before(jobs[j].FireAt)
		}
		if jobs[i].FixtureID != jobs[j].FixtureID {
			return jobs[i].FixtureID < jobs[j].FixtureID
		}
		return jobs[i].LeadTime < jobs[j].LeadTime
	})
	return jobs
}
