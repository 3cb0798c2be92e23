// internal/workflow/lifecycle.go
//
// Package workflow holds the idea lifecycle rules: the linear review
// pipeline, the free-form admin status selector, and the review SLA clock.
// Everything here is pure; the service layer owns persistence and access
// checks around these rules.
package workflow

import "github.com/upstartlab/ideahub/internal/model"

// linearOrder is the review pipeline an idea walks through when an admin
// advances it one step at a time.
var linearOrder = map[model.IdeaStatus]model.IdeaStatus{
	model.StatusSubmitted:    model.StatusInReview,
	model.StatusInReview:     model.StatusInRefinement,
	model.StatusInRefinement: model.StatusImplemented,
	model.StatusImplemented:  model.StatusClosed,
}

// NextStatus returns the status one step further down the linear pipeline.
// It is total: any status outside the pipeline (closed, merged, parked, or
// an unrecognized value) resets to submitted rather than failing.
func NextStatus(current model.IdeaStatus) model.IdeaStatus {
	if next, ok := linearOrder[current]; ok {
		return next
	}
	return model.StatusSubmitted
}

// directStatuses is the set the management screen may assign outright. This
// path deliberately bypasses the linear pipeline; the two mechanisms stay
// separate on purpose (see DESIGN.md).
var directStatuses = map[model.IdeaStatus]bool{
	model.StatusSubmitted:   true,
	model.StatusInReview:    true,
	model.StatusMerged:      true,
	model.StatusParked:      true,
	model.StatusImplemented: true,
}

// CanSetDirect reports whether the free-form selector may assign the status.
func CanSetDirect(target model.IdeaStatus) bool {
	return directStatuses[target]
}

// DirectStatuses returns the selectable statuses for the management screen,
// in pipeline order.
func DirectStatuses() []model.IdeaStatus {
	return []model.IdeaStatus{
		model.StatusSubmitted,
		model.StatusInReview,
		model.StatusMerged,
		model.StatusParked,
		model.StatusImplemented,
	}
}
