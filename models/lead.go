package models

import (
	"strings"
	"time"
)

const (
	// DefaultLeadSource is stored for every lead captured through the web form
	DefaultLeadSource = "Web"
	// DefaultLeadStatus is assigned on capture and never transitioned
	DefaultLeadStatus = "New"
)

// Lead represents a prospective customer captured through the landing page
type Lead struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Company   string    `json:"company" db:"company"`
	Phone     string    `json:"phone" db:"phone"`
	Source    string    `json:"source" db:"source"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// LeadForm represents the body of a lead capture submission
type LeadForm struct {
	Email   string `json:"email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
}

// Validate checks the capture form. Only the presence of an email is
// required; every field is otherwise free text of any length.
func (f *LeadForm) Validate() ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(f.Email) == "" {
		errs = append(errs, ValidationError{Field: "email", Message: "Email is required"})
	}

	return errs
}

// ToLead builds an unsaved lead from the form, keeping the submitted values verbatim
func (f *LeadForm) ToLead() *Lead {
	return &Lead{
		Email:   f.Email,
		Company: f.Company,
		Phone:   f.Phone,
	}
}

// Analytics is the payload of the admin dashboard
type Analytics struct {
	TotalLeads  int    `json:"totalLeads"`
	RecentLeads []Lead `json:"recentLeads"`
}
