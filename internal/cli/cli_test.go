package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()
	cmd := NewRootCmd()
	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

func writeJSONFile(t *testing.T, dir, name string, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func validStudentInput(t *testing.T, dir string) string {
	photo := filepath.Join(dir, "photo.jpg")
	govProof := filepath.Join(dir, "gov.pdf")
	guardianID := filepath.Join(dir, "guardian.pdf")
	resume := filepath.Join(dir, "resume.pdf")
	for _, p := range []string{photo, govProof, guardianID, resume} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return writeJSONFile(t, dir, "student.json", map[string]string{
		"fullName":         "Priya Sharma",
		"dob":              "2004-03-14",
		"email":            "priya@example.com",
		"altEmail":         "priya.alt@example.com",
		"contact":          "9876543210",
		"gender":           "Female",
		"panNumber":        "ABCDE1234F",
		"currentAddress":   "12 MG Road, Pune",
		"permanentAddress": "12 MG Road, Pune",
		"photo":            photo,
		"govProof":         govProof,
		"fatherName":       "R. Sharma",
		"motherName":       "S. Sharma",
		"guardianName":     "R. Sharma",
		"guardianRelation": "Father",
		"guardianEmail":    "r.sharma@example.com",
		"guardianPhone":    "9876500000",
		"guardianAddress":  "12 MG Road, Pune",
		"guardianIdProof":  guardianID,
		"studentId":        "S-2041",
		"programme":        "B.Tech CSE",
		"semester":         "6",
		"discipline":       "Software Dev",
		"cgpa":             "8.2",
		"skills":           "Go, SQL",
		"resume":           resume,
		"password":         "Str0ng@Pass",
		"confirmPassword":  "Str0ng@Pass",
	})
}

func TestRegisterStudent_SubmitsExactlyOneRequestWithAllFields(t *testing.T) {
	t.Parallel()

	var posts int32
	var gotValues map[string]string
	var fileParts []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/student/register" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		atomic.AddInt32(&posts, 1)
		if err := r.ParseMultipartForm(4 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		gotValues = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			gotValues[k] = v[0]
		}
		for k := range r.MultipartForm.File {
			fileParts = append(fileParts, k)
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "registered"})
	}))
	defer srv.Close()

	dir := t.TempDir()
	input := validStudentInput(t, dir)

	stdout, _, err := runCLI(t, []string{
		"register", "student", "--input", input,
		"--api", srv.URL, "--config-dir", dir,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if got := atomic.LoadInt32(&posts); got != 1 {
		t.Fatalf("posts = %d, want exactly 1", got)
	}
	for _, field := range []string{"fullName", "email", "contact", "cgpa", "password", "confirmPassword", "guardianRelation"} {
		if gotValues[field] == "" {
			t.Errorf("field %s missing from submission (got %v)", field, gotValues)
		}
	}
	if len(fileParts) != 4 {
		t.Errorf("file parts = %v, want photo, govProof, guardianIdProof and resume", fileParts)
	}

	var out map[string]any
	if err := json.Unmarshal(stdout, &out); err != nil {
		t.Fatalf("stdout not JSON: %s", stdout)
	}
	if out["registered"] != true {
		t.Errorf("output = %v", out)
	}
}

func TestRegisterStudent_InvalidFormNeverReachesBackend(t *testing.T) {
	t.Parallel()

	var posts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&posts, 1)
	}))
	defer srv.Close()

	dir := t.TempDir()
	input := writeJSONFile(t, dir, "student.json", map[string]string{
		"fullName": "Priya Sharma",
		"email":    "not-an-email",
	})

	stdout, _, err := runCLI(t, []string{
		"register", "student", "--input", input,
		"--api", srv.URL, "--config-dir", dir,
	})
	if err == nil {
		t.Fatal("want validation failure")
	}
	if got := atomic.LoadInt32(&posts); got != 0 {
		t.Fatalf("posts = %d, invalid form must not be submitted", got)
	}

	var out struct {
		Registered bool              `json:"registered"`
		Step       int               `json:"step"`
		Errors     map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(stdout, &out); err != nil {
		t.Fatalf("stdout not JSON: %s", stdout)
	}
	if out.Registered || out.Step != 1 || len(out.Errors) == 0 {
		t.Errorf("output = %+v", out)
	}
}

func TestLoginThenProjectsList_SharesSession(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/organization/login":
			json.NewEncoder(w).Encode(map[string]any{
				"organization": map[string]any{"orgId": 42, "name": "Acme Labs"},
			})
		case "/api/organization/projects/42":
			json.NewEncoder(w).Encode([]map[string]any{
				{"project_id": 1, "project_code": "SIA-01", "project_name": "Backend Intern", "status": "active"},
				{"project_id": 2, "project_code": "SIA-02", "project_name": "Data Pipeline", "status": "draft"},
			})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	dir := t.TempDir()

	_, _, err := runCLI(t, []string{
		"login", "organization", "--email", "org@x.co", "--password", "Secret1!",
		"--api", srv.URL, "--config-dir", dir,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	stdout, _, err := runCLI(t, []string{
		"projects", "drafts", "--api", srv.URL, "--config-dir", dir,
	})
	if err != nil {
		t.Fatalf("projects drafts: %v", err)
	}
	var out struct {
		Projects []map[string]any `json:"projects"`
	}
	if err := json.Unmarshal(stdout, &out); err != nil {
		t.Fatalf("stdout not JSON: %s", stdout)
	}
	if len(out.Projects) != 1 || out.Projects[0]["project_code"] != "SIA-02" {
		t.Errorf("drafts = %v", out.Projects)
	}
}

func TestProjectsCreate_AtFlagSendsScheduledStatus(t *testing.T) {
	t.Parallel()

	var gotStatus, gotTime string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/organization/login":
			json.NewEncoder(w).Encode(map[string]any{"organization": map[string]any{"orgId": 7}})
		case r.URL.Path == "/api/organization/projects" && r.Method == http.MethodPost:
			if err := r.ParseMultipartForm(4 << 20); err != nil {
				t.Errorf("parse multipart: %v", err)
			}
			gotStatus = r.FormValue("status")
			gotTime = r.FormValue("scheduled_time")
			json.NewEncoder(w).Encode(map[string]string{"message": "created"})
		default:
			json.NewEncoder(w).Encode([]any{})
		}
	}))
	defer srv.Close()

	dir := t.TempDir()
	if _, _, err := runCLI(t, []string{
		"login", "organization", "--email", "o@x.co", "--password", "Secret1!",
		"--api", srv.URL, "--config-dir", dir,
	}); err != nil {
		t.Fatalf("login: %v", err)
	}

	input := writeJSONFile(t, dir, "listing.json", map[string]string{
		"projectCode":     "SIA-01",
		"projectName":     "Backend Intern",
		"coordinatorName": "A. Rao",
	})
	_, _, err := runCLI(t, []string{
		"projects", "create", "--input", input, "--at", "2026-09-04T10:30:00Z",
		"--api", srv.URL, "--config-dir", dir,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if gotStatus != "scheduled" {
		t.Errorf("status = %q, want scheduled alongside a publish time", gotStatus)
	}
	if gotTime != "2026-09-04T10:30:00Z" {
		t.Errorf("scheduled_time = %q", gotTime)
	}
}

func TestProjectsList_RequiresLogin(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, stderr, err := runCLI(t, []string{"projects", "list", "--config-dir", dir})
	if err == nil {
		t.Fatal("want not-logged-in error")
	}
	if !bytes.Contains(stderr, []byte("not logged in")) {
		t.Errorf("stderr = %s", stderr)
	}
}

func TestProjectsDelete_RefusesWithoutYes(t *testing.T) {
	t.Parallel()

	var deletes int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/organization/login":
			json.NewEncoder(w).Encode(map[string]any{"organization": map[string]any{"orgId": 7}})
		case r.Method == http.MethodDelete:
			atomic.AddInt32(&deletes, 1)
		default:
			json.NewEncoder(w).Encode([]any{})
		}
	}))
	defer srv.Close()

	dir := t.TempDir()
	if _, _, err := runCLI(t, []string{
		"login", "organization", "--email", "o@x.co", "--password", "Secret1!",
		"--api", srv.URL, "--config-dir", dir,
	}); err != nil {
		t.Fatalf("login: %v", err)
	}

	_, _, err := runCLI(t, []string{"projects", "delete", "9", "--api", srv.URL, "--config-dir", dir})
	if err == nil {
		t.Fatal("want refusal without --yes")
	}
	if got := atomic.LoadInt32(&deletes); got != 0 {
		t.Fatalf("deletes = %d, want 0", got)
	}
}

func TestPasswordReset_RejectsWeakPasswordLocally(t *testing.T) {
	t.Parallel()

	var posts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&posts, 1)
	}))
	defer srv.Close()

	dir := t.TempDir()
	_, _, err := runCLI(t, []string{
		"password", "reset", "--token", "tok-1", "--password", "weak",
		"--api", srv.URL, "--config-dir", dir,
	})
	if err == nil {
		t.Fatal("want weak-password rejection")
	}
	if got := atomic.LoadInt32(&posts); got != 0 {
		t.Fatalf("posts = %d, weak password must not be sent", got)
	}
}
