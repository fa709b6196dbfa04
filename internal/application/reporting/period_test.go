package reporting_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyamoya/erp-backend/internal/application/dto"
	"github.com/nyamoya/erp-backend/internal/application/reporting"
	"github.com/nyamoya/erp-backend/internal/domain"
)

var testNow = time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

func TestResolvePeriodToday(t *testing.T) {
	// Bounds are half-open: the end is the next midnight, excluded by the
	// `< end` filter in the aggregate queries.
	start, end, err := reporting.ResolvePeriod(dto.PeriodToday, nil, nil, testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), end)

	// Empty preset defaults to today.
	s2, e2, err := reporting.ResolvePeriod("", nil, nil, testNow)
	require.NoError(t, err)
	assert.Equal(t, start, s2)
	assert.Equal(t, end, e2)
}

func TestResolvePeriodMonth(t *testing.T) {
	start, end, err := reporting.ResolvePeriod(dto.PeriodMonth, nil, nil, testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestResolvePeriodConsecutiveDaysShareBound(t *testing.T) {
	// A record at exactly midnight belongs to the new day only: one day's
	// end equals the next day's start, so half-open ranges tile without
	// gap or overlap.
	_, todayEnd, err := reporting.ResolvePeriod(dto.PeriodToday, nil, nil, testNow)
	require.NoError(t, err)
	nextStart, _, err := reporting.ResolvePeriod(dto.PeriodToday, nil, nil, testNow.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, todayEnd, nextStart)
}

func TestResolvePeriodAllTime(t *testing.T) {
	start, end, err := reporting.ResolvePeriod(dto.PeriodAllTime, nil, nil, testNow)
	require.NoError(t, err)
	assert.True(t, start.Before(time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, testNow, end)
}

func TestResolvePeriodCustom(t *testing.T) {
	s := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	e := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)

	start, end, err := reporting.ResolvePeriod(dto.PeriodCustom, &s, &e, testNow)
	require.NoError(t, err)
	assert.Equal(t, s, start)
	assert.Equal(t, e, end)

	_, _, err = reporting.ResolvePeriod(dto.PeriodCustom, nil, &e, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = reporting.ResolvePeriod(dto.PeriodCustom, &s, nil, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Inverted range.
	_, _, err = reporting.ResolvePeriod(dto.PeriodCustom, &e, &s, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Equal ends make an empty half-open range.
	_, _, err = reporting.ResolvePeriod(dto.PeriodCustom, &s, &s, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolvePeriodUnknownPreset(t *testing.T) {
	_, _, err := reporting.ResolvePeriod("quarter", nil, nil, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
