// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that owns startups and takes part in the forum.
type User struct {
	ID            int64     `json:"id"`        // Sequential identifier assigned by the store.
	Username      string    `json:"username"`  // Unique public handle.
	Email         string    `json:"email"`     // Unique login identifier.
	PasswordHash  string    `json:"-"`         // bcrypt hash; empty for Google-only accounts.
	GoogleSubject string    `json:"-"`         // Google 'sub' claim when linked.
	FullName      string    `json:"fullName"`  // Display name.
	Bio           string    `json:"bio"`       // Free-form profile text.
	Location      string    `json:"location"`  // Where the founder is based.
	Website       string    `json:"website"`   // Personal or company site.
	AvatarURL     string    `json:"avatarUrl"` // Profile picture, usually from Google.
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProfileUpdate holds the user-editable profile fields. Nil fields are left untouched.
type ProfileUpdate struct {
	FullName *string
	Bio      *string
	Location *string
	Website  *string
}

// Apply copies every non-nil field onto u.
func (p ProfileUpdate) Apply(u *User) {
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.Website != nil {
		u.Website = *p.Website
	}
}
