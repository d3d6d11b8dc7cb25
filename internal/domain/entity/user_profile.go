package entity

import "slices"

// UserProfile is the engagement view of a user as served by the events/user
// backend: which events they liked and bookmarked, plus the interest
// categories the backend derived from their behavior.
type UserProfile struct {
	UserID            string   `json:"user_id"`
	Likes             []string `json:"likes"`
	Bookmarks         []string `json:"bookmarks"`
	DerivedCategories []string `json:"derived_categories"`
}

// HasLiked reports whether the user has liked the given event.
func (p *UserProfile) HasLiked(eventID string) bool {
	return slices.Contains(p.Likes, eventID)
}

// HasBookmarked reports whether the user has bookmarked the given event.
func (p *UserProfile) HasBookmarked(eventID string) bool {
	return slices.Contains(p.Bookmarks, eventID)
}
