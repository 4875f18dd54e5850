package domain

import (
	"slices"

	"github.com/google/uuid"
)

const canonicalIDLength = 36

type User struct {
	ID       string
	Username string
	Age      float64
	Hobbies  []string
}

// UserInput holds the mutable fields of a user.
type UserInput struct {
	Username string
	Age      float64
	Hobbies  []string
}

func NewUser(input UserInput) *User {
	return &User{
		ID:       uuid.New().String(),
		Username: input.Username,
		Age:      input.Age,
		Hobbies:  cloneHobbies(input.Hobbies),
	}
}

// Apply overwrites every field except ID.
func (u *User) Apply(input UserInput) {
	u.Username = input.Username
	u.Age = input.Age
	u.Hobbies = cloneHobbies(input.Hobbies)
}

func (u User) Clone() User {
	u.Hobbies = cloneHobbies(u.Hobbies)
	return u
}

// IsValidUserID reports whether id is a canonical hyphenated UUID string
// of an RFC 4122 layout (versions 1-8) or the nil UUID.
func IsValidUserID(id string) bool {
	if len(id) != canonicalIDLength {
		return false
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return false
	}
	if parsed == uuid.Nil {
		return true
	}

	return parsed.Variant() == uuid.RFC4122 && parsed.Version() >= 1 && parsed.Version() <= 8
}

func cloneHobbies(hobbies []string) []string {
	if hobbies == nil {
		return []string{}
	}
	return slices.Clone(hobbies)
}
