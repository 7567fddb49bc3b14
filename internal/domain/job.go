package domain

import "time"

// Job is one posting on the board. Records are never mutated after the
// catalogue finishes loading.
type Job struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title" validate:"required"`
	Company     string     `json:"company" validate:"required"`
	Location    string     `json:"location" validate:"required"`
	Type        string     `json:"type" validate:"required"`
	Salary      string     `json:"salary"`
	Posted      string     `json:"posted"`
	PostedAt    *time.Time `json:"postedAt,omitempty"`
	Remote      bool       `json:"remote"`
	Skills      []string   `json:"skills"`
	Description string     `json:"description"`
	ApplyLink   string     `json:"applyLink,omitempty" validate:"omitempty,applylink"`

	// DecodeErr is set on a placeholder for a feed element that could not
	// be decoded. Such a record is always rejected with this reason.
	DecodeErr error `json:"-" validate:"-"`
}

// HasApplyLink reports whether activating apply should open a URI.
func (j Job) HasApplyLink() bool { return j.ApplyLink != "" }
