package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wanderpersona/internal/models/response_models"
)

func responseWith(physical, emotional, intellectual, perceptual float64) response_models.BiorhythmResponse {
	return response_models.BiorhythmResponse{
		Physical:     physical,
		Emotional:    emotional,
		Intellectual: intellectual,
		Perceptual:   perceptual,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBiorhythm_BirthDayIsZero(t *testing.T) {
	svc := NewBiorhythmService()
	birth := date(1990, time.March, 15)

	values := svc.Compute(birth, birth)
	require.InDelta(t, 0, values.Physical, 1e-9)
	require.InDelta(t, 0, values.Emotional, 1e-9)
	require.InDelta(t, 0, values.Intellectual, 1e-9)
	require.InDelta(t, 0, values.Perceptual, 1e-9)
}

func TestBiorhythm_ValuesInRange(t *testing.T) {
	svc := NewBiorhythmService()
	birth := date(1985, time.July, 2)

	for offset := 0; offset < 400; offset++ {
		target := birth.AddDate(0, 0, offset)
		v := svc.Compute(birth, target)
		for _, value := range []float64{v.Physical, v.Emotional, v.Intellectual, v.Perceptual} {
			require.GreaterOrEqual(t, value, -1.0)
			require.LessOrEqual(t, value, 1.0)
		}
	}
}

func TestBiorhythm_Periodicity(t *testing.T) {
	svc := NewBiorhythmService()
	birth := date(1992, time.November, 20)
	target := date(2026, time.August, 31)

	base := svc.Compute(birth, target)
	shifted := svc.Compute(birth, target.AddDate(0, 0, PhysicalPeriod))
	require.InDelta(t, base.Physical, shifted.Physical, 1e-9)

	shifted = svc.Compute(birth, target.AddDate(0, 0, EmotionalPeriod))
	require.InDelta(t, base.Emotional, shifted.Emotional, 1e-9)

	shifted = svc.Compute(birth, target.AddDate(0, 0, IntellectualPeriod))
	require.InDelta(t, base.Intellectual, shifted.Intellectual, 1e-9)

	shifted = svc.Compute(birth, target.AddDate(0, 0, PerceptualPeriod))
	require.InDelta(t, base.Perceptual, shifted.Perceptual, 1e-9)
}

func TestBiorhythm_StableWithinDay(t *testing.T) {
	svc := NewBiorhythmService()
	birth := date(1990, time.March, 15)

	morning := time.Date(2026, time.August, 31, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, time.August, 31, 23, 0, 0, 0, time.UTC)
	require.Equal(t, svc.Compute(birth, morning), svc.Compute(birth, evening))
}

func TestBiorhythm_SeriesWindow(t *testing.T) {
	svc := NewBiorhythmService()
	birth := date(1990, time.March, 15)
	center := date(2026, time.August, 31)

	series := svc.Series(birth, center, 14, 14)
	require.Len(t, series, 29)
	require.Equal(t, "2026-08-17", series[0].Date)
	require.Equal(t, "2026-09-14", series[len(series)-1].Date)

	today := svc.Compute(birth, center)
	require.Equal(t, today.Physical, series[14].Physical)
}

func TestBiorhythm_Percentages(t *testing.T) {
	svc := NewBiorhythmService()

	low, mid, half, high := svc.Percentages(responseWith(-1, 0, 0.5, 1))
	require.Equal(t, -100.0, low)
	require.Equal(t, 0.0, mid)
	require.Equal(t, 50.0, half)
	require.Equal(t, 100.0, high)

	negHalf, _, _, _ := svc.Percentages(responseWith(-0.526, 0, 0, 0))
	require.Equal(t, -53.0, negHalf)
}
