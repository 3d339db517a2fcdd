package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/wekesa/mizigo/internal/pkg/cache"
	"github.com/wekesa/mizigo/internal/pkg/logger"
	"github.com/wekesa/mizigo/internal/pkg/models"
	"github.com/wekesa/mizigo/services/tracking"
)

// AlertAggregator merges deviation events with externally supplied traffic
// conditions into a ranked alert list and keeps a bounded per-trip history.
type AlertAggregator struct {
	thresholdKm  float64
	historyLimit int
	gw           tracking.TrackingGW
	places       *cache.PlaceCache

	mu      sync.Mutex
	history map[string][]models.TrafficAlert
}

// NewAlertAggregator creates an aggregator. historyLimit caps the per-trip
// alert history; the oldest entries are evicted first.
func NewAlertAggregator(thresholdKm float64, historyLimit int, gw tracking.TrackingGW, places *cache.PlaceCache) *AlertAggregator {
	return &AlertAggregator{
		thresholdKm:  thresholdKm,
		historyLimit: historyLimit,
		gw:           gw,
		places:       places,
		history:      make(map[string][]models.TrafficAlert),
	}
}

// Aggregate merges a synthesized deviation alert (when dev is non-nil and
// flags a deviation) with external alerts, ranked most severe first and most
// recent first within a severity. The merged list is appended to the trip's
// bounded history.
func (a *AlertAggregator) Aggregate(tripID string, dev *models.RouteDeviationEvent, external []models.TrafficAlert) []models.TrafficAlert {
	merged := make([]models.TrafficAlert, 0, len(external)+1)
	merged = append(merged, external...)

	if dev != nil && dev.Deviating {
		merged = append(merged, a.deviationAlert(tripID, dev))
	}

	sort.SliceStable(merged, func(i, j int) bool {
		ri, rj := merged[i].Severity.Rank(), merged[j].Severity.Rank()
		if ri != rj {
			return ri > rj
		}
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	a.record(tripID, merged)
	return merged
}

// deviationAlert synthesizes a traffic alert from a deviation event.
// Severity scales with how far off route the transporter is.
func (a *AlertAggregator) deviationAlert(tripID string, dev *models.RouteDeviationEvent) models.TrafficAlert {
	severity := models.AlertSeverityMedium
	if dev.DistanceFromRoute > 2*a.thresholdKm {
		severity = models.AlertSeverityHigh
	}

	return models.TrafficAlert{
		ID:        uuid.NewString(),
		TripID:    tripID,
		Type:      models.AlertTypeDeviation,
		Severity:  severity,
		Message:   fmt.Sprintf("Transporter is %.1f km off the planned route", dev.DistanceFromRoute),
		CreatedAt: dev.DetectedAt,
	}
}

// record appends alerts to the trip's history, evicting beyond the cap
func (a *AlertAggregator) record(tripID string, alerts []models.TrafficAlert) {
	if len(alerts) == 0 {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	hist := append(alerts, a.history[tripID]...)
	if len(hist) > a.historyLimit {
		hist = hist[:a.historyLimit]
	}
	a.history[tripID] = hist
}

// History returns a copy of the trip's alert history, most recent first
func (a *AlertAggregator) History(tripID string) []models.TrafficAlert {
	a.mu.Lock()
	defer a.mu.Unlock()

	hist := a.history[tripID]
	out := make([]models.TrafficAlert, len(hist))
	copy(out, hist)
	return out
}

// Forget drops the trip's history, called when its session stops
func (a *AlertAggregator) Forget(tripID string) {
	a.mu.Lock()
	delete(a.history, tripID)
	a.mu.Unlock()
}

// RankAlternativeRoutes asks the routing provider for alternatives to the
// current route and annotates each candidate with advantages and
// disadvantages relative to the current route. The provider computes the
// routes; we only rank and describe them.
func (a *AlertAggregator) RankAlternativeRoutes(ctx context.Context, current models.Route, currentKm float64, currentMin int) ([]models.RouteOption, error) {
	options, err := a.gw.GetAlternativeRoutes(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch alternative routes: %w", err)
	}

	for i := range options {
		opt := &options[i]
		if opt.DistanceKm < currentKm {
			opt.Advantages = append(opt.Advantages, fmt.Sprintf("%.1f km shorter", currentKm-opt.DistanceKm))
		} else if opt.DistanceKm > currentKm {
			opt.Disadvantages = append(opt.Disadvantages, fmt.Sprintf("%.1f km longer", opt.DistanceKm-currentKm))
		}
		if opt.DurationMin < currentMin {
			opt.Advantages = append(opt.Advantages, fmt.Sprintf("%d min faster", currentMin-opt.DurationMin))
		} else if opt.DurationMin > currentMin {
			opt.Disadvantages = append(opt.Disadvantages, fmt.Sprintf("%d min slower", opt.DurationMin-currentMin))
		}
		if opt.HasTolls {
			opt.Disadvantages = append(opt.Disadvantages, "includes toll roads")
		} else {
			opt.Advantages = append(opt.Advantages, "toll free")
		}
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].DurationMin < options[j].DurationMin
	})
	return options, nil
}

// PlaceName resolves a human-readable name for a point through the bounded
// place cache, falling back to the reverse-geocoding provider. Failures are
// absorbed: naming is cosmetic.
func (a *AlertAggregator) PlaceName(ctx context.Context, point models.GeoPoint) string {
	if name, ok := a.places.Get(point); ok {
		return name
	}

	name, err := a.gw.ReverseGeocode(ctx, point)
	if err != nil {
		logger.Debug("reverse geocode failed", logger.Err(err))
		return ""
	}

	a.places.Put(point, name)
	return name
}
