package services

import (
	"math"
	"time"

	"wanderpersona/internal/models/response_models"
	"wanderpersona/pkg/utils"
)

// Cycle lengths in days.
const (
	PhysicalPeriod     = 23
	EmotionalPeriod    = 28
	IntellectualPeriod = 33
	PerceptualPeriod   = 38
)

type BiorhythmServiceInterface interface {
	Compute(birthDate, targetDate time.Time) response_models.BiorhythmResponse
	Series(birthDate, center time.Time, daysBefore, daysAfter int) []response_models.BiorhythmPoint
	Percentages(b response_models.BiorhythmResponse) (physical, emotional, intellectual, perceptual float64)
}

type BiorhythmService struct{}

func NewBiorhythmService() BiorhythmServiceInterface {
	return &BiorhythmService{}
}

// Compute returns the four rhythm values for targetDate, each in [-1, 1].
// Days are counted on calendar boundaries so the value is stable for the
// whole day regardless of the time of the request.
func (s *BiorhythmService) Compute(birthDate, targetDate time.Time) response_models.BiorhythmResponse {
	d := daysBetween(birthDate, targetDate)
	return response_models.BiorhythmResponse{
		Physical:     cycle(d, PhysicalPeriod),
		Emotional:    cycle(d, EmotionalPeriod),
		Intellectual: cycle(d, IntellectualPeriod),
		Perceptual:   cycle(d, PerceptualPeriod),
	}
}

// Series returns one point per day over [center-daysBefore, center+daysAfter].
func (s *BiorhythmService) Series(birthDate, center time.Time, daysBefore, daysAfter int) []response_models.BiorhythmPoint {
	points := make([]response_models.BiorhythmPoint, 0, daysBefore+daysAfter+1)
	for offset := -daysBefore; offset <= daysAfter; offset++ {
		day := center.AddDate(0, 0, offset)
		values := s.Compute(birthDate, day)
		points = append(points, response_models.BiorhythmPoint{
			Date:         utils.DayKST(day),
			Physical:     values.Physical,
			Emotional:    values.Emotional,
			Intellectual: values.Intellectual,
			Perceptual:   values.Perceptual,
		})
	}
	return points
}

// Percentages rescales the raw [-1, 1] values to [-100, 100] for display and
// for the interpretation prompt.
func (s *BiorhythmService) Percentages(b response_models.BiorhythmResponse) (float64, float64, float64, float64) {
	return toPercent(b.Physical), toPercent(b.Emotional), toPercent(b.Intellectual), toPercent(b.Perceptual)
}

func cycle(days int, period float64) float64 {
	return math.Sin(2 * math.Pi * float64(days) / period)
}

func toPercent(v float64) float64 {
	return math.Round(v * 100)
}

func daysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}
