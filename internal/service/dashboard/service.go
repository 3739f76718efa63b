package dashboard

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/renalworks/dialysis-api/internal/model"
	"github.com/renalworks/dialysis-api/internal/repository"
	"github.com/renalworks/dialysis-api/pkg/errors"
)

const (
	cacheTTL     = 60 * time.Second
	cacheCleanup = 5 * time.Minute
	noData       = "No data"
	noFollowUp   = "None scheduled"
	dateLayout   = "2006-01-02"
)

// timeFrameDays maps the recognised time frames to a lookback window.
// Anything else means full history.
var timeFrameDays = map[string]int{
	"Week":    7,
	"Month":   30,
	"Quarter": 90,
	"Year":    365,
}

type Service struct {
	dashboards repository.DashboardRepository
	reports    repository.ReportRepository
	cache      *cache.Cache
}

func NewService(dashboards repository.DashboardRepository, reports repository.ReportRepository) *Service {
	return &Service{
		dashboards: dashboards,
		reports:    reports,
		cache:      cache.New(cacheTTL, cacheCleanup),
	}
}

// Summary builds the per-patient KPI view. Results are cached for a minute
// per patient and time frame since the dashboard polls.
func (s *Service) Summary(ctx context.Context, userID, patientID int64, timeFrame string) (*model.DashboardSummary, error) {
	if timeFrame == "" {
		timeFrame = "Year"
	}

	key := fmt.Sprintf("%d:%d:%s", userID, patientID, timeFrame)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*model.DashboardSummary), nil
	}

	var since *string
	if days, ok := timeFrameDays[timeFrame]; ok {
		cutoff := time.Now().AddDate(0, 0, -days).Format(dateLayout)
		since = &cutoff
	}

	chronic, acute, err := s.dashboards.SessionCounts(ctx, userID, patientID, since)
	if err != nil {
		return nil, errors.FromDB(err)
	}

	scriptExpiry, err := s.dashboards.ScriptExpiry(ctx, userID, patientID)
	if err != nil {
		return nil, errors.FromDB(err)
	}
	lastPathology, err := s.dashboards.LastPathologyDate(ctx, userID, patientID)
	if err != nil {
		return nil, errors.FromDB(err)
	}
	followUp, err := s.dashboards.LatestFollowUpTask(ctx, userID, patientID)
	if err != nil {
		return nil, errors.FromDB(err)
	}

	metrics, err := s.reports.LatestMetrics(ctx, userID, patientID)
	if err != nil {
		return nil, errors.FromDB(err)
	}

	summary := &model.DashboardSummary{
		Sessions: model.SessionCounts{
			TimeFrame: timeFrame,
			Chronic:   chronic,
			Acute:     acute,
		},
		QualityMetrics: qualityMetrics(metrics),
		Reminders: model.ReminderDates{
			ScriptExpiryDate:  orDefault(scriptExpiry, noData),
			LastPathologyTest: orDefault(lastPathology, noData),
			NextFollowUpTask:  orDefault(followUp, noFollowUp),
		},
	}

	s.cache.Set(key, summary, cache.DefaultExpiration)
	return summary, nil
}

func qualityMetrics(m *model.ReportMetrics) model.QualityMetrics {
	qm := model.QualityMetrics{
		KtvTrend:       noData,
		URRPerformance: noData,
		WeightAnalysis: noData,
	}
	if m == nil {
		return qm
	}
	if m.KtvPerPatient != nil {
		qm.KtvTrend = strconv.FormatFloat(*m.KtvPerPatient, 'f', -1, 64)
	}
	if m.URRTrend != nil && *m.URRTrend != "" {
		qm.URRPerformance = *m.URRTrend
	}
	if m.IntraDialyticWeightGain != nil {
		qm.WeightAnalysis = strconv.FormatFloat(*m.IntraDialyticWeightGain, 'f', -1, 64) + " kg"
	}
	return qm
}

func orDefault(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
