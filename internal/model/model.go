package model

import (
	"strings"
	"time"
)

type Role string

const (
	RoleStudent      Role = "student"
	RoleOrganization Role = "organization"
	RoleAdmin        Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleOrganization, RoleAdmin:
		return true
	}
	return false
}

type ProjectStatus string

const (
	StatusDraft     ProjectStatus = "draft"
	StatusScheduled ProjectStatus = "scheduled"
	StatusActive    ProjectStatus = "active"
)

// Project is an organization's internship listing as returned by the backend.
// The backend owns the record; the client holds a cached copy that is fully
// replaced on every re-fetch, never patched field by field.
type Project struct {
	ID             int64 `json:"project_id"`
	OrganizationID int64 `json:"organization_id,omitempty"`

	Code     string `json:"project_code"`
	Name     string `json:"project_name"`
	Location string `json:"project_location,omitempty"`

	// InternsRequired stays a string: the backend echoes whatever the form
	// submitted and the client never does arithmetic on it.
	InternsRequired string `json:"interns_required,omitempty"`

	CoordinatorName        string `json:"coordinator_name"`
	CoordinatorEmail       string `json:"coordinator_email,omitempty"`
	AlternateEmail         string `json:"alternate_email,omitempty"`
	CoordinatorPhone       string `json:"coordinator_phone,omitempty"`
	CoordinatorDesignation string `json:"coordinator_designation,omitempty"`

	CGPARequirement string `json:"cgpa_requirement,omitempty"`
	Discipline      string `json:"discipline,omitempty"`
	Skills          string `json:"skills,omitempty"`
	Stipend         string `json:"stipend,omitempty"`
	Guidelines      string `json:"guidelines,omitempty"`

	Status        ProjectStatus `json:"status"`
	ScheduledTime *time.Time    `json:"scheduled_time,omitempty"`

	Applications int `json:"applications,omitempty"`
}

// Drafts returns the subset of projects still sitting in the drafts tab:
// saved drafts plus listings scheduled for a future publish.
func Drafts(projects []Project) []Project {
	var out []Project
	for _, p := range projects {
		if p.Status == StatusDraft || p.Status == StatusScheduled {
			out = append(out, p)
		}
	}
	return out
}

// FilterProjects is a case-insensitive substring match over project code and
// name. An empty query returns the collection unchanged.
func FilterProjects(projects []Project, query string) []Project {
	q := strings.ToLower(query)
	if q == "" {
		return projects
	}
	var out []Project
	for _, p := range projects {
		if strings.Contains(strings.ToLower(p.Code), q) || strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// Stats are the dashboard overview numbers derived from the cached collection.
type Stats struct {
	Total        int
	Active       int
	Drafts       int
	Applications int
}

func ProjectStats(projects []Project) Stats {
	st := Stats{Total: len(projects)}
	for _, p := range projects {
		switch p.Status {
		case StatusActive:
			st.Active++
		case StatusDraft:
			st.Drafts++
		}
		st.Applications += p.Applications
	}
	return st
}

// ProjectForm is the add/edit form state for a listing. Field names follow
// the backend's form keys (camelCase on the way out, snake_case on the way
// back in Project).
type ProjectForm struct {
	ProjectCode            string `json:"projectCode"`
	ProjectName            string `json:"projectName"`
	ProjectLocation        string `json:"projectLocation,omitempty"`
	Interns                string `json:"interns,omitempty"`
	CoordinatorName        string `json:"coordinatorName"`
	CoordinatorEmail       string `json:"coordinatorEmail,omitempty"`
	CoordinatorAltEmail    string `json:"coordinatorAltEmail,omitempty"`
	CoordinatorPhone       string `json:"coordinatorPhone,omitempty"`
	CoordinatorDesignation string `json:"coordinatorDesignation,omitempty"`
	CGPA                   string `json:"cgpaRequirement,omitempty"`
	Discipline             string `json:"discipline,omitempty"`
	Skills                 string `json:"skills,omitempty"`
	Stipend                string `json:"stipend,omitempty"`

	// GuidelinesPath is a local file attached as a multipart part on create.
	// JSON updates never carry it (the original form dropped the file on edit).
	GuidelinesPath string `json:"-"`
}

// FormValues returns the multipart values for a create request. Empty values
// are skipped and the cgpa field travels as "cgpaRequirement", both matching
// the original submission.
func (f ProjectForm) FormValues() map[string]string {
	vals := map[string]string{
		"projectCode":            f.ProjectCode,
		"projectName":            f.ProjectName,
		"projectLocation":        f.ProjectLocation,
		"interns":                f.Interns,
		"coordinatorName":        f.CoordinatorName,
		"coordinatorEmail":       f.CoordinatorEmail,
		"coordinatorAltEmail":    f.CoordinatorAltEmail,
		"coordinatorPhone":       f.CoordinatorPhone,
		"coordinatorDesignation": f.CoordinatorDesignation,
		"cgpaRequirement":        f.CGPA,
		"discipline":             f.Discipline,
		"skills":                 f.Skills,
		"stipend":                f.Stipend,
	}
	for k, v := range vals {
		if v == "" {
			delete(vals, k)
		}
	}
	return vals
}

// FormFromProject prefills the edit form from a fetched record.
func FormFromProject(p Project) ProjectForm {
	return ProjectForm{
		ProjectCode:            p.Code,
		ProjectName:            p.Name,
		ProjectLocation:        p.Location,
		Interns:                p.InternsRequired,
		CoordinatorName:        p.CoordinatorName,
		CoordinatorEmail:       p.CoordinatorEmail,
		CoordinatorAltEmail:    p.AlternateEmail,
		CoordinatorPhone:       p.CoordinatorPhone,
		CoordinatorDesignation: p.CoordinatorDesignation,
		CGPA:                   p.CGPARequirement,
		Discipline:             p.Discipline,
		Skills:                 p.Skills,
		Stipend:                p.Stipend,
	}
}

// Identities returned by the role login endpoints.

type Student struct {
	StudentID int64  `json:"studentId"`
	FullName  string `json:"fullName,omitempty"`
	Email     string `json:"email,omitempty"`
}

type Organization struct {
	OrgID int64  `json:"orgId"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type Admin struct {
	AdminID     string `json:"adminId"`
	FullName    string `json:"fullName,omitempty"`
	Email       string `json:"email,omitempty"`
	Designation string `json:"designation,omitempty"`
}

type ResetStatus string

const (
	ResetPending  ResetStatus = "pending"
	ResetApproved ResetStatus = "approved"
	ResetDenied   ResetStatus = "denied"
)

// Terminal reports whether the reset poll should stop on this status.
func (s ResetStatus) Terminal() bool {
	return s != "" && s != ResetPending
}
