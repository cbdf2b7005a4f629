package db_models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/lib/pq"
)

// LikeMark records one like on a session. Identity is a user id when the
// caller was signed in, otherwise the caller IP. Date is a KST calendar day
// so the same visitor can like again the next day.
type LikeMark struct {
	Identity string `json:"identity"`
	Date     string `json:"date"`
}

type LikeMarks []LikeMark

func (l LikeMarks) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

func (l *LikeMarks) Scan(value interface{}) error {
	if value == nil {
		*l = LikeMarks{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for LikeMarks")
	}
}

// JSONBlob stores an arbitrary JSON document in a jsonb column.
type JSONBlob json.RawMessage

func (j JSONBlob) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return []byte(j), nil
}

func (j *JSONBlob) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*j = append((*j)[0:0], v...)
		return nil
	case string:
		*j = JSONBlob(v)
		return nil
	default:
		return errors.New("unsupported type for JSONBlob")
	}
}

func (j JSONBlob) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

func (j *JSONBlob) UnmarshalJSON(data []byte) error {
	*j = append((*j)[0:0], data...)
	return nil
}

// ResultSession is one completed quiz run with its generated recommendation.
type ResultSession struct {
	BaseModel
	Email     string `gorm:"index"`
	BirthDate string
	Location  string
	IPAddress string

	QuizAnswers pq.StringArray `gorm:"type:text[]"`

	Physical     float64
	Emotional    float64
	Intellectual float64
	Perceptual   float64

	RecommendedDestination string   `gorm:"index"`
	AIResult               JSONBlob `gorm:"type:jsonb"`
	ImageURL               string

	Likes   int       `gorm:"default:0"`
	LikedBy LikeMarks `gorm:"type:jsonb"`
}
