package model

import "strings"

// CandidateProfile holds the identity details collected before an interview
// starts. All three fields must be non-empty (after trimming) before the
// session may leave the info collection phase. The profile is frozen once
// the interview begins.
type CandidateProfile struct {
	Name  string `json:"name" yaml:"name" validate:"required"`
	Email string `json:"email" yaml:"email" validate:"required"`
	Phone string `json:"phone" yaml:"phone" validate:"required"`
}

// Trimmed returns a copy of the profile with surrounding whitespace removed
// from every field.
func (p CandidateProfile) Trimmed() CandidateProfile {
	return CandidateProfile{
		Name:  strings.TrimSpace(p.Name),
		Email: strings.TrimSpace(p.Email),
		Phone: strings.TrimSpace(p.Phone),
	}
}

// Complete reports whether all required fields are filled in.
func (p CandidateProfile) Complete() bool {
	t := p.Trimmed()
	return t.Name != "" && t.Email != "" && t.Phone != ""
}
