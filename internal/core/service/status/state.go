package status

import "drm-play/internal/core/domain"

// State is the status view of a single asset
type State struct {
	AssetID    domain.AssetID
	Status     domain.AssetStatus
	Summary    *domain.AssetSummary
	Attempts   int
	Generation uint64
}

// Observation is the outcome of one status fetch, tagged with the generation it was issued for
type Observation struct {
	Generation uint64
	Summary    domain.AssetSummary
}

// Initial returns the state of an asset before its first successful fetch
func Initial(assetID domain.AssetID) State {
	return State{AssetID: assetID, Status: domain.AssetStatusUnknown}
}

// Terminal reports whether no further polling is needed
func (s State) Terminal() bool {
	return s.Status.IsReady()
}

// Transition applies obs to s. Observations from another generation are stale
// and leave s untouched; applied reports whether obs was taken.
func Transition(s State, obs Observation) (next State, applied bool) {
	if obs.Generation != s.Generation {
		return s, false
	}

	summary := obs.Summary
	summary.Status = domain.NormalizeStatus(string(summary.Status))

	s.Status = summary.Status
	s.Summary = &summary
	s.Attempts++
	return s, true
}
