package domain

import "time"

// MaxProjectImages caps the gallery size. Enforced when appending images,
// not at creation time.
const MaxProjectImages = 5

// Project is a client project with an image gallery. Owner is a non-owning
// reference to a user account; only the owner may mutate the project.
type Project struct {
	ID          int64     `json:"id"`
	ProjectID   string    `json:"projectID"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     int64     `json:"-"`
	Owner       *User     `json:"user,omitempty"`
	Images      []string  `json:"images"`
	Note        string    `json:"note,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
