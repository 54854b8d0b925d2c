package runtime

import (
	"time"

	"github.com/aretw0/najia/pkg/domain"
)

// ResolveContext places an instant on the stem-branch calendar. Only the
// day and month pillars take part in scoring; year and hour are reported.
func ResolveContext(t time.Time) domain.TemporalContext {
	return domain.TemporalContext{
		Year:  domain.YearPillar(t),
		Month: domain.MonthPillar(t),
		Day:   domain.DayPillar(t),
		Hour:  domain.HourBranch(t),
	}
}
