package models

import (
	"time"
)

// SpecialistProfile holds the public-facing fields of a mental-health
// specialist as rendered on cards and profile pages.
type SpecialistProfile struct {
	FullName        string   `bson:"fullName" json:"fullName,omitempty"`
	Title           string   `bson:"title" json:"title,omitempty"` // e.g. "Clinical Psychologist"
	Specializations []string `bson:"specializations" json:"specializations,omitempty"`
	Languages       []string `bson:"languages" json:"languages,omitempty"`
	Bio             string   `bson:"bio" json:"bio,omitempty"`
	Email           string   `bson:"email" json:"email,omitempty"`
	PhoneNumber     string   `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	ProfileImage    string   `bson:"profileImage" json:"profileImage,omitempty"`
	Status          string   `bson:"status" json:"status,omitempty"` // "active" | "paused"
	Rating          float64  `bson:"rating" json:"rating,omitempty"`
	YearsExperience int      `bson:"yearsExperience" json:"yearsExperience,omitempty"`
}

// SessionFee describes the price of a single consultation.
type SessionFee struct {
	Amount   float64 `bson:"amount" json:"amount"`
	Currency string  `bson:"currency" json:"currency"` // e.g. "EUR"
}

// Specialist is the persisted provider record. Availability is kept
// untyped on purpose: profiles written under either schema generation
// (or as a JSON-encoded string, or not at all) must load without error.
// The schedule normalizer is the only reader of this field.
type Specialist struct {
	ID           string            `bson:"id" json:"id,omitempty"`
	Profile      SpecialistProfile `bson:"profile" json:"profile"`
	Modalities   []string          `bson:"modalities" json:"modalities,omitempty"` // "online", "in_person"
	SessionFee   SessionFee        `bson:"sessionFee" json:"sessionFee,omitzero"`
	Availability any               `bson:"availability,omitempty" json:"availability,omitempty"`
	CreatedAt    time.Time         `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt    time.Time         `bson:"updatedAt" json:"updatedAt,omitzero"`
}
