package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hy461283-sudo/intership-allotment/internal/model"
)

// Register submits a role's registration form as multipart/form-data.
// values are the text fields, files maps part name to a local path.
func (c *Client) Register(ctx context.Context, role model.Role, values map[string]string, files map[string]string) error {
	if !role.Valid() {
		return fmt.Errorf("unknown role %q", role)
	}
	return c.doMultipart(ctx, fmt.Sprintf("/api/%s/register", role), values, files, nil)
}

func (c *Client) LoginStudent(ctx context.Context, email, password string) (model.Student, error) {
	var out struct {
		Student model.Student `json:"student"`
	}
	body := map[string]string{"email": email, "password": password}
	err := c.doJSON(ctx, http.MethodPost, "/api/student/login", body, &out)
	return out.Student, err
}

func (c *Client) LoginOrganization(ctx context.Context, email, password string) (model.Organization, error) {
	var out struct {
		Organization model.Organization `json:"organization"`
	}
	body := map[string]string{"email": email, "password": password}
	err := c.doJSON(ctx, http.MethodPost, "/api/organization/login", body, &out)
	return out.Organization, err
}

func (c *Client) LoginAdmin(ctx context.Context, email, password string) (model.Admin, error) {
	var out struct {
		Admin model.Admin `json:"admin"`
	}
	body := map[string]string{"email": email, "password": password}
	err := c.doJSON(ctx, http.MethodPost, "/api/admin/login", body, &out)
	return out.Admin, err
}

// ForgotPassword asks the backend to open a reset request for the account.
// Approval happens out of band; poll ResetStatus to observe it.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.doJSON(ctx, http.MethodPost, "/api/auth/forgot-password", body, nil)
}

// ResetStatus reports where a pending reset request stands. The reset token
// is only present once the request has been approved.
func (c *Client) ResetStatus(ctx context.Context, email string) (model.ResetStatus, string, error) {
	var out struct {
		Status model.ResetStatus `json:"status"`
		Token  string            `json:"token"`
	}
	path := "/api/auth/reset-status/" + url.PathEscape(email)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return "", "", err
	}
	return out.Status, out.Token, nil
}

func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "password": newPassword}
	return c.doJSON(ctx, http.MethodPost, "/api/auth/reset-password", body, nil)
}

// StudentProfile returns the raw profile document. Fields vary by
// registration form version so callers get the loose map.
func (c *Client) StudentProfile(ctx context.Context, studentID int64) (map[string]any, error) {
	var out struct {
		Student map[string]any `json:"student"`
	}
	path := fmt.Sprintf("/api/student/profile/%d", studentID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Student, nil
}

func (c *Client) UpdateStudentProfile(ctx context.Context, studentID int64, fields map[string]string) error {
	path := fmt.Sprintf("/api/student/profile/%d", studentID)
	return c.doJSON(ctx, http.MethodPut, path, fields, nil)
}
