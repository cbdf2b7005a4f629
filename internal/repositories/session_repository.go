package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "wanderpersona/internal/models/db_models"
	"wanderpersona/pkg/utils"
)

type SessionRepository interface {
	Create(ctx context.Context, session *dbm.ResultSession) error
	GetByID(ctx context.Context, id string) (*dbm.ResultSession, error)
	FindOwned(ctx context.Context, destination, email, birthDate string) (*dbm.ResultSession, error)
	ToggleLike(ctx context.Context, sessionID, identity, day string) (*dbm.ResultSession, bool, error)
	ListByLikes(ctx context.Context, limit int) ([]dbm.ResultSession, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *dbm.ResultSession) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*dbm.ResultSession, error) {
	var session dbm.ResultSession
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrSessionNotFound
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &session, nil
}

// FindOwned locates the caller's own session for a destination, matched by
// the email and birth date they entered. Used to exclude self-votes from the
// leaderboard default view.
func (r *sessionRepository) FindOwned(ctx context.Context, destination, email, birthDate string) (*dbm.ResultSession, error) {
	var session dbm.ResultSession
	err := r.db.WithContext(ctx).
		Where("recommended_destination = ? AND email = ? AND birth_date = ?", destination, email, birthDate).
		Order("created_at DESC").
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrSessionNotFound
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &session, nil
}

// ToggleLike adds or removes the caller's like mark for the given day inside
// one transaction, so concurrent toggles cannot lose updates. Returns the
// updated session and whether the caller now likes it.
func (r *sessionRepository) ToggleLike(ctx context.Context, sessionID, identity, day string) (*dbm.ResultSession, bool, error) {
	var updated dbm.ResultSession
	var liked bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session dbm.ResultSession
		if err := tx.Clauses(lockForUpdate()).Where("id = ?", sessionID).First(&session).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrSessionNotFound
			}
			return utils.ErrDatabaseError
		}

		marks := make(dbm.LikeMarks, 0, len(session.LikedBy))
		found := false
		for _, m := range session.LikedBy {
			if m.Identity == identity && m.Date == day {
				found = true
				continue
			}
			marks = append(marks, m)
		}

		if found {
			session.Likes--
			if session.Likes < 0 {
				session.Likes = 0
			}
			liked = false
		} else {
			marks = append(marks, dbm.LikeMark{Identity: identity, Date: day})
			session.Likes++
			liked = true
		}
		session.LikedBy = marks

		if err := tx.Model(&dbm.ResultSession{}).
			Where("id = ?", sessionID).
			Updates(map[string]interface{}{
				"likes":    session.Likes,
				"liked_by": session.LikedBy,
			}).Error; err != nil {
			return utils.ErrDatabaseError
		}

		updated = session
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &updated, liked, nil
}

func (r *sessionRepository) ListByLikes(ctx context.Context, limit int) ([]dbm.ResultSession, error) {
	var sessions []dbm.ResultSession
	err := r.db.WithContext(ctx).
		Order("likes DESC, created_at DESC").
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return sessions, nil
}
