package services

import (
	"context"
	"encoding/json"
	"errors"

	"wanderpersona/internal/models/db_models"
	"wanderpersona/internal/models/response_models"
	"wanderpersona/internal/repositories"
	"wanderpersona/pkg/utils"
)

const leaderboardLimit = 15

// leaderboardScanLimit bounds the rows fetched before dedupe and
// self-exclusion shrink the list; duplicated destinations can otherwise
// under-fill the final 15 slots.
const leaderboardScanLimit = 200

// Placeholder identity for likes on destinations with no saved session.
const (
	placeholderEmail     = "anonymous@wanderpersona.com"
	placeholderBirthDate = "1990-01-01"
)

type LeaderboardFilter struct {
	ExcludeSessionID string
	ExcludeEmail     string
	ExcludeBirthDate string
}

type LikeServiceInterface interface {
	Toggle(ctx context.Context, sessionID, identity string) (*response_models.LikeResponse, error)
	ToggleByDestination(ctx context.Context, destination, email, birthDate, identity string) (*response_models.LikeResponse, error)
	Status(ctx context.Context, sessionID, identity string) (*response_models.LikeResponse, error)
	Leaderboard(ctx context.Context, filter LeaderboardFilter) ([]response_models.LeaderboardEntry, error)
}

type LikeService struct {
	sessionRepo repositories.SessionRepository
}

func NewLikeService(sessionRepo repositories.SessionRepository) LikeServiceInterface {
	return &LikeService{sessionRepo: sessionRepo}
}

// Toggle flips the caller's like for today. A second toggle on the same KST
// day undoes the first; the next day counts as a fresh like.
func (l *LikeService) Toggle(ctx context.Context, sessionID, identity string) (*response_models.LikeResponse, error) {
	if identity == "" {
		return nil, utils.ErrInvalidInput
	}

	session, liked, err := l.sessionRepo.ToggleLike(ctx, sessionID, identity, utils.TodayKST())
	if err != nil {
		return nil, err
	}

	return &response_models.LikeResponse{
		SessionID: session.ID.String(),
		Likes:     session.Likes,
		Liked:     liked,
	}, nil
}

// ToggleByDestination resolves the session via destination plus the caller's
// email and birth date, then toggles the like on it. When no session exists
// for the destination yet, a placeholder row is created carrying the first
// like, so likes on shared result links are never lost.
func (l *LikeService) ToggleByDestination(ctx context.Context, destination, email, birthDate, identity string) (*response_models.LikeResponse, error) {
	if destination == "" || identity == "" {
		return nil, utils.ErrInvalidInput
	}

	session, err := l.sessionRepo.FindOwned(ctx, destination, email, birthDate)
	if errors.Is(err, utils.ErrSessionNotFound) {
		session, err = l.sessionRepo.FindOwned(ctx, destination, placeholderEmail, placeholderBirthDate)
	}
	if errors.Is(err, utils.ErrSessionNotFound) {
		return l.createPlaceholder(ctx, destination, identity)
	}
	if err != nil {
		return nil, err
	}

	return l.Toggle(ctx, session.ID.String(), identity)
}

func (l *LikeService) createPlaceholder(ctx context.Context, destination, identity string) (*response_models.LikeResponse, error) {
	placeholder := &db_models.ResultSession{
		Email:                  placeholderEmail,
		BirthDate:              placeholderBirthDate,
		RecommendedDestination: destination,
		Likes:                  1,
		LikedBy:                db_models.LikeMarks{{Identity: identity, Date: utils.TodayKST()}},
	}
	if err := l.sessionRepo.Create(ctx, placeholder); err != nil {
		return nil, err
	}
	return &response_models.LikeResponse{
		SessionID: placeholder.ID.String(),
		Likes:     placeholder.Likes,
		Liked:     true,
	}, nil
}

// Status reports whether the caller has liked the session today, without
// changing anything.
func (l *LikeService) Status(ctx context.Context, sessionID, identity string) (*response_models.LikeResponse, error) {
	session, err := l.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	today := utils.TodayKST()
	liked := false
	for _, m := range session.LikedBy {
		if m.Identity == identity && m.Date == today {
			liked = true
			break
		}
	}

	return &response_models.LikeResponse{
		SessionID: session.ID.String(),
		Likes:     session.Likes,
		Liked:     liked,
	}, nil
}

// Leaderboard returns the most liked sessions, one per destination. The
// caller's own entries are filtered out unless they already sit in the top 3.
func (l *LikeService) Leaderboard(ctx context.Context, filter LeaderboardFilter) ([]response_models.LeaderboardEntry, error) {
	sessions, err := l.sessionRepo.ListByLikes(ctx, leaderboardScanLimit)
	if err != nil {
		return nil, err
	}

	deduped := dedupeByDestination(sessions)

	if filter.ExcludeSessionID != "" {
		filtered := deduped[:0]
		for _, s := range deduped {
			if s.ID.String() != filter.ExcludeSessionID {
				filtered = append(filtered, s)
			}
		}
		deduped = filtered
	}

	if filter.ExcludeEmail != "" && filter.ExcludeBirthDate != "" {
		deduped = excludeOwnerOutsideTop3(deduped, filter.ExcludeEmail, filter.ExcludeBirthDate)
	}

	if len(deduped) > leaderboardLimit {
		deduped = deduped[:leaderboardLimit]
	}

	entries := make([]response_models.LeaderboardEntry, 0, len(deduped))
	for _, s := range deduped {
		entries = append(entries, response_models.LeaderboardEntry{
			SessionID:       s.ID.String(),
			DestinationName: s.RecommendedDestination,
			PersonaTitle:    personaTitleOf(&s),
			ImageURL:        s.ImageURL,
			Likes:           s.Likes,
		})
	}
	return entries, nil
}

// dedupeByDestination keeps the highest-liked session per destination,
// preserving the likes-descending input order. Unnamed destinations are
// dropped.
func dedupeByDestination(sessions []db_models.ResultSession) []db_models.ResultSession {
	seen := make(map[string]bool, len(sessions))
	out := make([]db_models.ResultSession, 0, len(sessions))
	for _, s := range sessions {
		if s.RecommendedDestination == "" || s.RecommendedDestination == "unknown" {
			continue
		}
		if seen[s.RecommendedDestination] {
			continue
		}
		seen[s.RecommendedDestination] = true
		out = append(out, s)
	}
	return out
}

// excludeOwnerOutsideTop3 removes the caller's own sessions unless they rank
// in the current top 3, which stays visible to everyone.
func excludeOwnerOutsideTop3(sessions []db_models.ResultSession, email, birthDate string) []db_models.ResultSession {
	top3 := make(map[string]bool, 3)
	for i, s := range sessions {
		if i >= 3 {
			break
		}
		top3[s.Email+"__"+s.BirthDate] = true
	}

	myKey := email + "__" + birthDate
	out := sessions[:0]
	for _, s := range sessions {
		key := s.Email + "__" + s.BirthDate
		if key == myKey && !top3[key] {
			continue
		}
		out = append(out, s)
	}
	return out
}

func personaTitleOf(session *db_models.ResultSession) string {
	var payload struct {
		PersonaTitle string `json:"personaTitle"`
	}
	if err := json.Unmarshal(session.AIResult, &payload); err != nil {
		return ""
	}
	return payload.PersonaTitle
}
