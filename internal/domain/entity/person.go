// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Person represents a natural person known to the site: a visitor, an ally
// applicant, or staff. A person may exist without ever registering a login.
type Person struct {
	ID             uuid.UUID    // Unique identifier for the person.
	GivenNames     string       // First and middle names ("nombres").
	FamilyNames    string       // Surnames ("apellidos").
	DocumentType   string       // National document type (CC, CE, passport...).
	DocumentNumber string       // Document number; meaningful only together with the type.
	Email          string       // Contact email, unique across active persons.
	Phone          string       // Optional contact phone.
	Address        string       // Optional postal address.
	BusinessName   string       // Ally applicants only: the business they represent.
	BusinessType   string       // Ally applicants only: hotel, restaurant, guide...
	BusinessDesc   string       // Ally applicants only: free-form description.
	Status         RecordStatus // Soft-delete flag; inactive persons keep their rows.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
