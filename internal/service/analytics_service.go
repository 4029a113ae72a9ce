package service

import (
	"context"
	"sync"

	"github.com/carson-networks/decline-insights/internal/aggregate"
	"github.com/carson-networks/decline-insights/internal/catalog"
	"github.com/carson-networks/decline-insights/internal/logging"
	"github.com/carson-networks/decline-insights/internal/model"
	"github.com/carson-networks/decline-insights/internal/storage"
)

// Overview is every dashboard view computed over the full population.
type Overview struct {
	KPIs           aggregate.KPIs                               `json:"kpis"`
	DeclineReasons []aggregate.DeclineReason                    `json:"declineReasons"`
	SoftHard       aggregate.SoftHardSplit                      `json:"softHard"`
	Trend          []aggregate.TrendPoint                       `json:"trend"`
	Methods        []aggregate.MethodBreakdown                  `json:"methods"`
	Countries      []aggregate.CountryBreakdown                 `json:"countries"`
	MethodTrend    []aggregate.SeriesPoint[model.PaymentMethod] `json:"methodTrend"`
	CountryTrend   []aggregate.SeriesPoint[model.Country]       `json:"countryTrend"`
}

// AnalyticsService serves the aggregate views. The population never
// changes, so the overview and alerts are computed once.
type AnalyticsService struct {
	storage *storage.Storage

	overviewOnce sync.Once
	overview     Overview

	alertsOnce sync.Once
	alerts     aggregate.HighValueAlerts
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(store *storage.Storage) *AnalyticsService {
	return &AnalyticsService{storage: store}
}

// Overview returns the dashboard snapshot.
func (s *AnalyticsService) Overview(ctx context.Context) Overview {
	logData := logging.GetLogData(ctx)

	computed := false
	s.overviewOnce.Do(func() {
		computed = true
		if logData != nil {
			defer logData.AddTiming("aggregateMs")()
		}

		txns := s.storage.Transactions()
		s.overview = Overview{
			KPIs:           aggregate.ComputeKPIs(txns),
			DeclineReasons: aggregate.GroupByDeclineCode(txns),
			SoftHard:       aggregate.GroupBySoftHard(txns),
			Trend:          aggregate.GroupByTrend(txns),
			Methods:        aggregate.GroupByPaymentMethod(txns),
			Countries:      aggregate.GroupByCountry(txns),
			MethodTrend:    aggregate.GroupByTrendAndMethod(txns),
			CountryTrend:   aggregate.GroupByTrendAndCountry(txns),
		}
	})

	if logData != nil {
		logData.AddData("cached", !computed)
		logData.AddData("population", s.storage.Len())
	}
	return s.overview
}

// HighValueAlerts returns the declined high-value transactions.
func (s *AnalyticsService) HighValueAlerts(ctx context.Context) aggregate.HighValueAlerts {
	s.alertsOnce.Do(func() {
		s.alerts = aggregate.GroupHighValueAlerts(s.storage.Transactions())
	})

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("alertCount", len(s.alerts.All))
	}
	return s.alerts
}

// DeclineCodes returns the decline code catalog in display order.
func (s *AnalyticsService) DeclineCodes(ctx context.Context) []catalog.DeclineCodeInfo {
	codes := catalog.All()
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("codeCount", len(codes))
	}
	return codes
}
