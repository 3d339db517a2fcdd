package usecase

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/wekesa/mizigo/internal/pkg/models"
	"github.com/wekesa/mizigo/internal/utils"
)

// ErrNoCandidates is returned when the open load pool is empty. Distinct from
// a valid empty plan, which means candidates existed but none fit.
var ErrNoCandidates = errors.New("no consolidatable loads available")

// Planner builds consolidation plans with a greedy detour-per-earning
// heuristic. Stateless; safe for concurrent use.
type Planner struct {
	avgSpeedKmh float64
	maxDetourKm float64
}

// NewPlanner creates a new consolidation planner
func NewPlanner(avgSpeedKmh, maxDetourKm float64) *Planner {
	return &Planner{
		avgSpeedKmh: avgSpeedKmh,
		maxDetourKm: maxDetourKm,
	}
}

// candidate is a load scored against the base route
type candidate struct {
	load     models.Load
	detourKm float64
	score    float64
}

// Plan computes a consolidation plan for the given route and load pool.
//
// Loads are ranked by detour kilometers per earning (lower is better), then
// admitted greedily while capacity holds. Admitted loads' pickup and dropoff
// stops are spliced into the route by cheapest insertion, pickup always
// preceding its dropoff. No backtracking: a skipped load is never revisited
// even if a later admission would have made it fit.
func (p *Planner) Plan(route models.Route, loads []models.Load, capacity models.Capacity) (*models.ConsolidatedRoutePlan, error) {
	if !route.Valid() {
		return nil, errors.New("route has no endpoints")
	}
	if len(loads) == 0 {
		return nil, ErrNoCandidates
	}

	candidates := p.rank(route, loads)

	seq := newStopSequence(route)
	plan := &models.ConsolidatedRoutePlan{
		ID:              uuid.New().String(),
		TripID:          route.TripID,
		LoadIDs:         make([]string, 0, len(candidates)),
		TotalCapacityKg: capacity.TotalCapacityKg,
		CreatedAt:       time.Now(),
	}

	for _, c := range candidates {
		if plan.UsedCapacityKg+c.load.WeightKg > capacity.TotalCapacityKg {
			continue
		}
		seq.insert(c.load)
		plan.LoadIDs = append(plan.LoadIDs, c.load.ID)
		plan.UsedCapacityKg += c.load.WeightKg
		plan.TotalEarnings += c.load.Price
	}

	plan.Waypoints = seq.waypoints()
	plan.TotalDistanceKm = utils.PolylineLengthKm(seq.points)
	plan.TotalDurationMin = p.EstimateDurationMin(plan.TotalDistanceKm)
	return plan, nil
}

// EstimateDurationMin converts a distance to minutes at the configured
// average speed. Used when the routing provider has no answer.
func (p *Planner) EstimateDurationMin(distanceKm float64) int {
	if p.avgSpeedKmh <= 0 {
		return 0
	}
	return int(math.Round(distanceKm / p.avgSpeedKmh * 60.0))
}

// rank scores each admissible load against the base route and sorts by
// detour per earning. The sort is fully deterministic: ties break on higher
// price, then load ID.
func (p *Planner) rank(route models.Route, loads []models.Load) []candidate {
	candidates := make([]candidate, 0, len(loads))
	for _, load := range loads {
		if !load.Consolidatable || load.WeightKg <= 0 || load.Price <= 0 {
			continue
		}
		if !load.Pickup.Valid() || !load.Dropoff.Valid() {
			continue
		}

		detour := detourKm(route, load)
		if detour > p.maxDetourKm {
			continue
		}
		candidates = append(candidates, candidate{
			load:     load,
			detourKm: detour,
			score:    detour / load.Price,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score < candidates[j].score
		}
		if candidates[i].load.Price != candidates[j].load.Price {
			return candidates[i].load.Price > candidates[j].load.Price
		}
		return candidates[i].load.ID < candidates[j].load.ID
	})
	return candidates
}

// detourKm simulates inserting the load's two stops into the base route and
// returns the added kilometers.
func detourKm(route models.Route, load models.Load) float64 {
	seq := newStopSequence(route)
	before := utils.PolylineLengthKm(seq.points)
	seq.insert(load)
	return utils.PolylineLengthKm(seq.points) - before
}

// stopSequence is a working polyline whose interior grows by cheapest
// insertion. The route's own anchors stay fixed at both ends; only load
// stops carry a waypoint annotation.
type stopSequence struct {
	points []models.GeoPoint
	stops  []*models.Waypoint
}

func newStopSequence(route models.Route) *stopSequence {
	points := make([]models.GeoPoint, len(route.Points))
	copy(points, route.Points)
	return &stopSequence{
		points: points,
		stops:  make([]*models.Waypoint, len(points)),
	}
}

// insert splices the load's pickup and dropoff into the sequence at their
// cheapest positions, the dropoff constrained to come after the pickup.
func (s *stopSequence) insert(load models.Load) {
	pickupAt := s.bestSlot(load.Pickup, 1)
	s.insertAt(pickupAt, load.Pickup, &models.Waypoint{
		LoadID: load.ID,
		Point:  load.Pickup,
		Kind:   models.WaypointPickup,
	})

	dropoffAt := s.bestSlot(load.Dropoff, pickupAt+1)
	s.insertAt(dropoffAt, load.Dropoff, &models.Waypoint{
		LoadID: load.ID,
		Point:  load.Dropoff,
		Kind:   models.WaypointDropoff,
	})
}

// bestSlot returns the insertion index >= minIndex that adds the fewest
// kilometers. Valid indices run up to len(points)-1 so the final anchor
// stays last.
func (s *stopSequence) bestSlot(p models.GeoPoint, minIndex int) int {
	best, bestCost := minIndex, math.MaxFloat64
	for i := minIndex; i < len(s.points); i++ {
		cost := utils.InsertionCostKm(p, s.points[i-1], s.points[i])
		if cost < bestCost {
			best, bestCost = i, cost
		}
	}
	return best
}

func (s *stopSequence) insertAt(index int, p models.GeoPoint, wp *models.Waypoint) {
	s.points = append(s.points, models.GeoPoint{})
	copy(s.points[index+1:], s.points[index:])
	s.points[index] = p

	s.stops = append(s.stops, nil)
	copy(s.stops[index+1:], s.stops[index:])
	s.stops[index] = wp
}

// waypoints returns the load stops in visit order
func (s *stopSequence) waypoints() []models.Waypoint {
	out := make([]models.Waypoint, 0, len(s.stops))
	for _, wp := range s.stops {
		if wp != nil {
			out = append(out, *wp)
		}
	}
	return out
}
