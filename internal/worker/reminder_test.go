package worker

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/renalworks/dialysis-api/internal/model"
)

type stubPatientRepo struct {
	reminders []model.ScriptReminder
}

func (r *stubPatientRepo) Create(_ context.Context, _ int64, _ *model.CreatePatientRequest) (int64, error) {
	return 0, nil
}

func (r *stubPatientRepo) List(_ context.Context, _ int64) ([]model.PatientSummary, error) {
	return nil, nil
}

func (r *stubPatientRepo) Search(_ context.Context, _ int64, _ string) ([]model.PatientSummary, error) {
	return nil, nil
}

func (r *stubPatientRepo) GetDetails(_ context.Context, _, _ int64) (*model.PatientDetails, error) {
	return nil, nil
}

func (r *stubPatientRepo) ListScriptReminders(_ context.Context, _ int) ([]model.ScriptReminder, error) {
	return r.reminders, nil
}

type stubEmailService struct {
	sent []string
}

func (s *stubEmailService) SendScriptReminder(_ context.Context, to, _, _ string) error {
	s.sent = append(s.sent, to)
	return nil
}

func TestReminderWindow(t *testing.T) {
	tests := []struct {
		period string
		want   time.Duration
	}{
		{"1 Month", 30 * 24 * time.Hour},
		{"2 Months", 60 * 24 * time.Hour},
		{"1 Week", 7 * 24 * time.Hour},
		{"2 Weeks", 14 * 24 * time.Hour},
		{"10 Days", 10 * 24 * time.Hour},
		{"", 30 * 24 * time.Hour},
		{"whenever", 30 * 24 * time.Hour},
		{"0 Weeks", 30 * 24 * time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			assert.Equal(t, tt.want, reminderWindow(tt.period))
		})
	}
}

func TestRunOnceSendsOnlyDueReminders(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)
	repo := &stubPatientRepo{reminders: []model.ScriptReminder{
		{
			PatientID:         1,
			FullName:          "Sipho Dlamini",
			OwnerEmail:        "due@clinic.test",
			ScriptValidityEnd: now.AddDate(0, 0, 10),
			ReminderPeriod:    "2 Weeks",
		},
		{
			PatientID:         2,
			FullName:          "Ana Mokoena",
			OwnerEmail:        "notyet@clinic.test",
			ScriptValidityEnd: now.AddDate(0, 0, 60),
			ReminderPeriod:    "1 Month",
		},
	}}
	emails := &stubEmailService{}

	w := NewReminderWorker(repo, emails, time.Hour, zerolog.Nop())
	w.now = func() time.Time { return now }
	w.runOnce(context.Background())

	assert.Equal(t, []string{"due@clinic.test"}, emails.sent)
}
