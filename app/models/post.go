package models

import "time"

// Validate checks if the post meets all validation requirements.
func (p *Post) Validate() error {
	return validate.Struct(p)
}

// BeforeCreate sets up any necessary fields before creation. Counters are
// always reset here: they are server-owned and never client-supplied.
func (p *Post) BeforeCreate() {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.View = 0
	p.LikeCount = 0
	p.CommentCount = 0
}
