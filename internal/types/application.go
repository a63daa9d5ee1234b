package types

import "fmt"

// ApplicationStatus names one of a developer's application lists.
// A job in any list is no longer offered as a card.
type ApplicationStatus string

const (
	ApplicationRejected          ApplicationStatus = "rejected"
	ApplicationApplied           ApplicationStatus = "applied"
	ApplicationUnderProcess      ApplicationStatus = "underProcess"
	ApplicationHired             ApplicationStatus = "hired"
	ApplicationUnderHold         ApplicationStatus = "underHold"
	ApplicationRejectedByCompany ApplicationStatus = "rejectedByCompany"
)

// ApplicationStatuses lists every application list in display order.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationApplied,
	ApplicationUnderProcess,
	ApplicationUnderHold,
	ApplicationHired,
	ApplicationRejected,
	ApplicationRejectedByCompany,
}

// SwipeAction is a developer's decision on a job card.
type SwipeAction string

const (
	SwipeRight SwipeAction = "swipeRight"
	SwipeLeft  SwipeAction = "swipeLeft"
	SwipeHold  SwipeAction = "underHold"
)

// Status returns the application list a swipe moves the job into.
func (a SwipeAction) Status() (ApplicationStatus, error) {
	switch a {
	case SwipeRight:
		return ApplicationApplied, nil
	case SwipeLeft:
		return ApplicationRejected, nil
	case SwipeHold:
		return ApplicationUnderHold, nil
	default:
		return "", &InvalidInputError{Field: "action", Reason: fmt.Sprintf("unknown swipe action %q", string(a))}
	}
}
