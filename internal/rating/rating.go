package rating

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("rating not found")
	ErrAlreadyExists    = errors.New("rating already exists")
	ErrUnknownMediaType = errors.New("unknown media type")
)

// MediaType selects the collection a rating lives in.
type MediaType string

const (
	Anime MediaType = "anime"
	Manga MediaType = "manga"
	Book  MediaType = "book"
	Movie MediaType = "movie"
)

var mediaTypes = []MediaType{Anime, Manga, Book, Movie}

func ParseMediaType(s string) (MediaType, error) {
	for _, mt := range mediaTypes {
		if string(mt) == s {
			return mt, nil
		}
	}
	return "", ErrUnknownMediaType
}

// Collection is the document collection name, e.g. "anime_ratings".
func (m MediaType) Collection() string {
	return string(m) + "_ratings"
}

type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusDropped    Status = "dropped"
	StatusOnHold     Status = "on_hold"
)

// Rating is one user's score for one title. There is at most one per
// (uid, media_id) and media type.
type Rating struct {
	ID        string    `json:"id"`
	UID       string    `json:"uid"`
	MediaID   string    `json:"media_id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url,omitempty"`
	Score     int       `json:"score"`
	Status    Status    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Patch lists the fields an update may change. Nil fields are left alone.
type Patch struct {
	Title    *string
	ImageURL *string
	Score    *int
	Status   *Status
	Notes    *string
}

func (p Patch) empty() bool {
	return p.Title == nil && p.ImageURL == nil && p.Score == nil && p.Status == nil && p.Notes == nil
}

func (p Patch) fields() map[string]any {
	set := make(map[string]any, 6)
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.ImageURL != nil {
		set["image_url"] = *p.ImageURL
	}
	if p.Score != nil {
		set["score"] = *p.Score
	}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	if p.Notes != nil {
		set["notes"] = *p.Notes
	}
	return set
}
