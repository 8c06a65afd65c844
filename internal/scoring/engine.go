// Package scoring computes the 0-10 priority score that ranks complaints for
// municipal response. The score combines community sentiment, department
// urgency, and proximity to critical infrastructure; reference-data lookups
// that fail fall back to documented defaults so scoring never hard-fails.
package scoring

import (
	"context"
	"math"

	"github.com/rs/zerolog"
)

const (
	// DefaultUrgencyIndex applies when the urgency matrix has no entry for
	// the (department, issue type) pair or the lookup fails.
	DefaultUrgencyIndex = 0.5
	// DefaultAreaWeight applies when no critical place is nearby, the
	// complaint has no coordinates, or the lookup fails.
	DefaultAreaWeight = 0.3
	// CriticalPlaceRadiusMeters bounds the critical-place proximity search.
	CriticalPlaceRadiusMeters = 300.0

	communityWeight = 0.6
	urgencyWeight   = 0.2
	areaWeight      = 0.2
	componentScale  = 10.0
)

// UrgencySource is the urgency-matrix lookup. An error (including a
// no-rows miss) means "use the default".
type UrgencySource interface {
	UrgencyFor(ctx context.Context, department, issueType string) (float64, error)
}

// AreaSource finds the highest-weight critical place within radiusM meters
// of a point.
type AreaSource interface {
	HighestWeightCriticalPlaceWithin(ctx context.Context, lat, lng, radiusM float64) (float64, error)
}

type Engine struct {
	Urgency UrgencySource
	Area    AreaSource
	Logger  zerolog.Logger
}

// Input carries everything the score depends on. Two equal Inputs always
// produce the same Result against unchanged reference data.
type Input struct {
	YesVotes   int
	NoVotes    int
	IdkVotes   int
	Department string
	IssueType  string
	Latitude   *float64
	Longitude  *float64
}

// Result is the derived tuple persisted alongside the tallies.
type Result struct {
	CommunityYesRatio      float64
	DepartmentUrgencyIndex float64
	CriticalAreaWeight     float64
	PriorityScore          float64
}

// YesRatio is the community-sentiment component: yes over total votes, or
// the neutral midpoint 0.5 when nobody has voted yet so fresh complaints
// are not penalized.
func YesRatio(yes, no, idk int) float64 {
	total := yes + no + idk
	if total <= 0 {
		return 0.5
	}
	return float64(yes) / float64(total)
}

// Score derives the priority tuple for the given inputs. Reference-data
// failures are swallowed into defaults; this is an availability-over-
// precision policy, not an oversight.
func (e Engine) Score(ctx context.Context, in Input) Result {
	ratio := YesRatio(in.YesVotes, in.NoVotes, in.IdkVotes)

	urgency := DefaultUrgencyIndex
	if u, err := e.Urgency.UrgencyFor(ctx, in.Department, in.IssueType); err == nil {
		urgency = u
	} else {
		e.Logger.Debug().Err(err).
			Str("department", in.Department).
			Str("issue_type", in.IssueType).
			Msg("urgency lookup failed, using default")
	}

	area := e.weightFor(ctx, in.Latitude, in.Longitude)

	score := ratio*componentScale*communityWeight +
		urgency*componentScale*urgencyWeight +
		area*componentScale*areaWeight

	return Result{
		CommunityYesRatio:      ratio,
		DepartmentUrgencyIndex: urgency,
		CriticalAreaWeight:     area,
		PriorityScore:          round2(score),
	}
}

func (e Engine) weightFor(ctx context.Context, lat, lng *float64) float64 {
	if lat == nil || lng == nil {
		return DefaultAreaWeight
	}
	w, err := e.Area.HighestWeightCriticalPlaceWithin(ctx, *lat, *lng, CriticalPlaceRadiusMeters)
	if err != nil {
		e.Logger.Debug().Err(err).Msg("critical place lookup failed, using default")
		return DefaultAreaWeight
	}
	return w
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
