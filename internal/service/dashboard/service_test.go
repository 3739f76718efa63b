package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renalworks/dialysis-api/internal/model"
)

type stubDashboardRepo struct {
	chronic      int
	acute        int
	lastSince    *string
	calls        int
	scriptExpiry *string
	pathology    *string
	followUp     *string
}

func (r *stubDashboardRepo) SessionCounts(_ context.Context, _, _ int64, since *string) (int, int, error) {
	r.calls++
	r.lastSince = since
	return r.chronic, r.acute, nil
}

func (r *stubDashboardRepo) ScriptExpiry(_ context.Context, _, _ int64) (*string, error) {
	return r.scriptExpiry, nil
}

func (r *stubDashboardRepo) LastPathologyDate(_ context.Context, _, _ int64) (*string, error) {
	return r.pathology, nil
}

func (r *stubDashboardRepo) LatestFollowUpTask(_ context.Context, _, _ int64) (*string, error) {
	return r.followUp, nil
}

type stubReportRepo struct {
	metrics *model.ReportMetrics
}

func (r *stubReportRepo) Create(_ context.Context, _ int64, _ *model.CreateReportRequest) (int64, error) {
	return 0, nil
}

func (r *stubReportRepo) List(_ context.Context, _ int64) ([]model.ReportSummary, error) {
	return nil, nil
}

func (r *stubReportRepo) LatestMetrics(_ context.Context, _, _ int64) (*model.ReportMetrics, error) {
	return r.metrics, nil
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestSummaryTimeFrames(t *testing.T) {
	tests := []struct {
		name       string
		timeFrame  string
		wantFrame  string
		wantWindow bool
	}{
		{"week", "Week", "Week", true},
		{"month", "Month", "Month", true},
		{"quarter", "Quarter", "Quarter", true},
		{"year", "Year", "Year", true},
		{"empty defaults to year", "", "Year", true},
		{"unknown means full history", "Decade", "Decade", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubDashboardRepo{chronic: 3, acute: 1}
			svc := NewService(repo, &stubReportRepo{})

			summary, err := svc.Summary(context.Background(), 1, 10, tt.timeFrame)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFrame, summary.Sessions.TimeFrame)
			assert.Equal(t, 3, summary.Sessions.Chronic)
			assert.Equal(t, 1, summary.Sessions.Acute)
			if tt.wantWindow {
				assert.NotNil(t, repo.lastSince)
			} else {
				assert.Nil(t, repo.lastSince)
			}
		})
	}
}

func TestSummaryReminderFallbacks(t *testing.T) {
	svc := NewService(&stubDashboardRepo{}, &stubReportRepo{})

	summary, err := svc.Summary(context.Background(), 1, 10, "Year")
	require.NoError(t, err)
	assert.Equal(t, "No data", summary.Reminders.ScriptExpiryDate)
	assert.Equal(t, "No data", summary.Reminders.LastPathologyTest)
	assert.Equal(t, "None scheduled", summary.Reminders.NextFollowUpTask)
	assert.Equal(t, "No data", summary.QualityMetrics.KtvTrend)
}

func TestSummaryQualityMetrics(t *testing.T) {
	repo := &stubDashboardRepo{
		scriptExpiry: strPtr("2026-10-01"),
		pathology:    strPtr("2026-08-15"),
		followUp:     strPtr("Book dietician review"),
	}
	reports := &stubReportRepo{metrics: &model.ReportMetrics{
		KtvPerPatient:           f64Ptr(1.4),
		URRTrend:                strPtr("Above target"),
		IntraDialyticWeightGain: f64Ptr(2.5),
	}}
	svc := NewService(repo, reports)

	summary, err := svc.Summary(context.Background(), 1, 10, "Month")
	require.NoError(t, err)
	assert.Equal(t, "1.4", summary.QualityMetrics.KtvTrend)
	assert.Equal(t, "Above target", summary.QualityMetrics.URRPerformance)
	assert.Equal(t, "2.5 kg", summary.QualityMetrics.WeightAnalysis)
	assert.Equal(t, "2026-10-01", summary.Reminders.ScriptExpiryDate)
	assert.Equal(t, "2026-08-15", summary.Reminders.LastPathologyTest)
	assert.Equal(t, "Book dietician review", summary.Reminders.NextFollowUpTask)
}

func TestSummaryCachesPerPatientAndFrame(t *testing.T) {
	repo := &stubDashboardRepo{chronic: 2}
	svc := NewService(repo, &stubReportRepo{})

	_, err := svc.Summary(context.Background(), 1, 10, "Week")
	require.NoError(t, err)
	_, err = svc.Summary(context.Background(), 1, 10, "Week")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)

	_, err = svc.Summary(context.Background(), 1, 10, "Month")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}
