package services

import (
	"math/rand"
	"sync"

	"wanderpersona/internal/models/response_models"
)

const DefaultQuestionsPerCategory = 2

type QuizServiceInterface interface {
	AllQuestions() []response_models.QuizQuestion
	Sample(perCategory int) []response_models.QuizQuestion
}

type QuizService struct {
	// rng is shared across request goroutines; math/rand.Rand is not
	// concurrency-safe, so every use goes through mu.
	mu  sync.Mutex
	rng *rand.Rand
}

func NewQuizService(rng *rand.Rand) QuizServiceInterface {
	return &QuizService{rng: rng}
}

func (s *QuizService) AllQuestions() []response_models.QuizQuestion {
	out := make([]response_models.QuizQuestion, len(allQuizQuestions))
	copy(out, allQuizQuestions)
	return out
}

// Sample draws perCategory questions from each of the five categories, then
// shuffles the combined set and each question's options. Every category is
// always represented and no question appears twice.
func (s *QuizService) Sample(perCategory int) []response_models.QuizQuestion {
	if perCategory <= 0 {
		perCategory = DefaultQuestionsPerCategory
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var selected []response_models.QuizQuestion
	for _, cr := range categoryRanges {
		var pool []response_models.QuizQuestion
		for _, q := range allQuizQuestions {
			if q.ID >= cr.Start && q.ID <= cr.End {
				pool = append(pool, q)
			}
		}
		s.shuffleQuestions(pool)
		n := perCategory
		if n > len(pool) {
			n = len(pool)
		}
		selected = append(selected, pool[:n]...)
	}

	s.shuffleQuestions(selected)

	for i := range selected {
		opts := make([]string, len(selected[i].Options))
		copy(opts, selected[i].Options)
		s.rng.Shuffle(len(opts), func(a, b int) {
			opts[a], opts[b] = opts[b], opts[a]
		})
		selected[i].Options = opts
	}

	return selected
}

// callers must hold mu
func (s *QuizService) shuffleQuestions(qs []response_models.QuizQuestion) {
	s.rng.Shuffle(len(qs), func(a, b int) {
		qs[a], qs[b] = qs[b], qs[a]
	})
}
