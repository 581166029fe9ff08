package meeting

import "time"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every effective status a meeting can display, in the order
// the filter dropdown offers them.
var Statuses = []Status{StatusScheduled, StatusOngoing, StatusCompleted, StatusCancelled}

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// EffectiveStatus reconciles a manually-set terminal state with time-based
// inference. First match wins:
//
//  1. a cancelled stored status always wins, regardless of time;
//  2. start <= now < end is ongoing (the end instant is exclusive);
//  3. now >= end is completed;
//  4. otherwise the meeting is still scheduled.
//
// The same function backs the status badge, the status filter and the status
// sort key, so the three can never drift apart.
func EffectiveStatus(stored Status, start, end, now time.Time) Status {
	if stored == StatusCancelled {
		return StatusCancelled
	}
	if !now.Before(start) && now.Before(end) {
		return StatusOngoing
	}
	if !now.Before(end) {
		return StatusCompleted
	}
	return StatusScheduled
}
