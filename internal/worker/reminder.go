package worker

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/renalworks/dialysis-api/internal/email"
	"github.com/renalworks/dialysis-api/internal/repository"
)

var (
	remindersScanned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "script_reminders_scanned_total",
		Help: "The total number of expiring scripts examined",
	})
	remindersSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "script_reminders_sent_total",
		Help: "The total number of reminder emails sent",
	})
	remindersFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "script_reminders_failed_total",
		Help: "The total number of reminder emails that failed to send",
	})
)

// scanHorizonDays bounds the database scan; individual patients narrow it
// with their own script_reminder window.
const scanHorizonDays = 93

// ReminderWorker periodically emails account owners about dialysis scripts
// that fall due inside each patient's reminder window.
type ReminderWorker struct {
	patients repository.PatientRepository
	emails   email.Service
	interval time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

func NewReminderWorker(patients repository.PatientRepository, emails email.Service, interval time.Duration, logger zerolog.Logger) *ReminderWorker {
	return &ReminderWorker{
		patients: patients,
		emails:   emails,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Run blocks until the context is cancelled, scanning once immediately and
// then on every tick.
func (w *ReminderWorker) Run(ctx context.Context) {
	w.runOnce(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("reminder worker stopping")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *ReminderWorker) runOnce(ctx context.Context) {
	reminders, err := w.patients.ListScriptReminders(ctx, scanHorizonDays)
	if err != nil {
		w.logger.Error().Err(err).Msg("failed to scan expiring scripts")
		return
	}

	now := w.now()
	for _, r := range reminders {
		remindersScanned.Inc()

		window := reminderWindow(r.ReminderPeriod)
		if r.ScriptValidityEnd.After(now.Add(window)) {
			continue
		}

		expiry := r.ScriptValidityEnd.Format("2006-01-02")
		if err := w.emails.SendScriptReminder(ctx, r.OwnerEmail, r.FullName, expiry); err != nil {
			remindersFailed.Inc()
			w.logger.Error().
				Err(err).
				Int64("patient_id", r.PatientID).
				Msg("failed to send script reminder")
			continue
		}
		remindersSent.Inc()
		w.logger.Info().
			Int64("patient_id", r.PatientID).
			Str("expiry", expiry).
			Msg("script reminder sent")
	}
}

// reminderWindow parses the stored reminder period, e.g. "1 Month" or
// "2 Weeks". Unrecognized values fall back to one month.
func reminderWindow(period string) time.Duration {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(period)))
	if len(fields) != 2 {
		return 30 * 24 * time.Hour
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil || n <= 0 {
		return 30 * 24 * time.Hour
	}

	unit := strings.TrimSuffix(fields[1], "s")
	switch unit {
	case "day":
		return time.Duration(n) * 24 * time.Hour
	case "week":
		return time.Duration(n) * 7 * 24 * time.Hour
	case "month":
		return time.Duration(n) * 30 * 24 * time.Hour
	default:
		return 30 * 24 * time.Hour
	}
}
