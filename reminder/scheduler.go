package reminder

import (
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/binayakjoshi/furever-sub000/schema"
)

// lookAheadOffsets are the fixed day offsets a reminder is sent at.
var lookAheadOffsets = []int{7, 3, 1, 0}

type ReminderKind string

const (
	ReminderKindWeekBefore      ReminderKind = "week_before"
	ReminderKindThreeDaysBefore ReminderKind = "three_days_before"
	ReminderKindOneDayBefore    ReminderKind = "one_day_before"
	ReminderKindDueToday        ReminderKind = "due_today"
)

func kindForOffset(days int) ReminderKind {
	switch days {
	case 7:
		return ReminderKindWeekBefore
	case 3:
		return ReminderKindThreeDaysBefore
	case 1:
		return ReminderKindOneDayBefore
	default:
		return ReminderKindDueToday
	}
}

type PetStore interface {
	FindPetsByOwner(ownerID primitive.ObjectID) ([]schema.Pet, error)
	FindPetsWithVaccinationsDueBetween(start, end time.Time) ([]schema.PetWithOwner, error)
}

type Mailer interface {
	Send(toEmail, toName, subject, htmlContent string) error
}

// Scheduler scans for vaccinations coming due and emails pet owners. One
// reminder email is dispatched per pet per look-ahead offset; a delivery
// failure for one pet never blocks the remaining pets or offsets.
type Scheduler struct {
	store    PetStore
	mailer   Mailer
	cron     *cron.Cron
	cronSpec string
	now      func() time.Time
}

func NewScheduler(store PetStore, mailer Mailer, cronSpec string) *Scheduler {
	return &Scheduler{
		store:  store,
		mailer: mailer,
		cron: cron.New(cron.WithChain(
			cron.Recover(cron.PrintfLogger(log.StandardLogger())),
			cron.SkipIfStillRunning(cron.PrintfLogger(log.StandardLogger())),
		)),
		cronSpec: cronSpec,
		now:      time.Now,
	}
}

// Start registers the daily job and begins the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cronSpec, s.CheckAndSendReminders); err != nil {
		return err
	}
	s.cron.Start()

	log.WithField("prefix", "reminder").WithField("spec", s.cronSpec).Info("vaccination reminder scheduler started")
	return nil
}

// Stop halts the cron loop; a run already in progress completes.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// CheckAndSendReminders performs one full scan over all look-ahead offsets.
// It is invoked by the cron timer and by the manual trigger endpoint.
func (s *Scheduler) CheckAndSendReminders() {
	runID := uuid.New().String()
	entry := log.WithField("prefix", "reminder").WithField("run_id", runID)

	now := s.now()
	sent := 0

	for _, offset := range lookAheadOffsets {
		start, end := dayBounds(now.AddDate(0, 0, offset))

		pets, err := s.store.FindPetsWithVaccinationsDueBetween(start, end)
		if err != nil {
			entry.WithError(err).WithField("offset", offset).Error("fail to query due vaccinations")
			continue
		}

		kind := kindForOffset(offset)
		for _, pet := range pets {
			due := vaccinationsWithin(pet.Vaccinations, start, end)
			if len(due) == 0 || pet.OwnerInfo.Email == "" {
				continue
			}

			subject, htmlContent := buildReminderEmail(pet, due, kind, now)
			if err := s.mailer.Send(pet.OwnerInfo.Email, pet.OwnerInfo.Name, subject, htmlContent); err != nil {
				entry.WithError(err).WithFields(log.Fields{
					"pet":   pet.ID.Hex(),
					"owner": pet.OwnerInfo.Email,
				}).Error("fail to send vaccination reminder")
				continue
			}
			sent++
		}
	}

	entry.WithField("sent", sent).Info("vaccination reminder run finished")
}

// dayBounds returns the inclusive full-day window of t in its own location.
func dayBounds(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	end := time.Date(year, month, day, 23, 59, 59, int(999*time.Millisecond), t.Location())
	return start, end
}

// vaccinationsWithin filters the pet's vaccination list down to the entries
// due inside [start, end]; other vaccinations are excluded from this
// offset's notification.
func vaccinationsWithin(vaccinations []schema.Vaccination, start, end time.Time) []schema.Vaccination {
	due := make([]schema.Vaccination, 0, len(vaccinations))
	for _, vaccination := range vaccinations {
		if vaccination.NextVaccDate.Before(start) || vaccination.NextVaccDate.After(end) {
			continue
		}
		due = append(due, vaccination)
	}
	return due
}
