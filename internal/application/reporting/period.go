package reporting

import (
	"time"

	"github.com/nyamoya/erp-backend/internal/application/dto"
	"github.com/nyamoya/erp-backend/internal/domain"
)

// allTimeStart is early enough to cover every record the business has.
var allTimeStart = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// ResolvePeriod turns a preset (today/month/all) or a custom range into
// concrete half-open bounds [start, end); every aggregate query filters
// with `>= start AND < end`, so the end instant itself is excluded.
// Custom requires both ends and end after start.
func ResolvePeriod(preset string, start, end *time.Time, now time.Time) (time.Time, time.Time, error) {
	switch preset {
	case dto.PeriodToday, "":
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return dayStart, dayStart.Add(24 * time.Hour), nil
	case dto.PeriodMonth:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return monthStart, monthStart.AddDate(0, 1, 0), nil
	case dto.PeriodAllTime:
		return allTimeStart, now, nil
	case dto.PeriodCustom:
		if start == nil || end == nil || !end.After(*start) {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		return *start, *end, nil
	default:
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
}
