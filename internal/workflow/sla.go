// internal/workflow/sla.go
package workflow

import (
	"fmt"
	"math"
	"time"
)

// reviewWindowDays is how long an idea may sit before review is overdue.
const reviewWindowDays = 3

// ReviewSLA classifies an idea's review urgency from its age. The result is
// a function of the two timestamps alone and must be recomputed on every
// read, never cached.
func ReviewSLA(createdAt, now time.Time) string {
	diffDays := int(math.Ceil(now.Sub(createdAt).Hours() / 24))

	switch {
	case diffDays > reviewWindowDays:
		return "Overdue"
	case diffDays >= 2:
		return "1 day left"
	default:
		return fmt.Sprintf("%d days left", reviewWindowDays-diffDays)
	}
}
