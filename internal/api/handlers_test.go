package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"example.com/extracurricular/internal/domain"
	"example.com/extracurricular/internal/events"
	"example.com/extracurricular/internal/roster"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	service := domain.NewService(roster.NewMemoryDirectory(), events.NoopPublisher{})
	mux := http.NewServeMux()
	NewHandler(service).RegisterRoutes(mux)
	return mux
}

type errorBody struct {
	Type   string `json:"type"`
	Detail string `json:"detail"`
}

func listActivities(t *testing.T, mux *http.ServeMux) map[string]ActivityView {
	t.Helper()
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/activities", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("list activities: expected 200 got %d: %s", rr.Code, rr.Body.String())
	}
	var out map[string]ActivityView
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("list activities: decode failed: %v", err)
	}
	return out
}

func signupURL(activity, email string) string {
	return fmt.Sprintf("/activities/%s/signup?email=%s", url.PathEscape(activity), url.QueryEscape(email))
}

func unregisterURL(activity, email string) string {
	return fmt.Sprintf("/activities/%s/unregister?email=%s", url.PathEscape(activity), url.QueryEscape(email))
}

func TestGetActivities(t *testing.T) {
	mux := newTestMux(t)
	activities := listActivities(t, mux)

	if len(activities) != 9 {
		t.Fatalf("expected 9 seeded activities, got %d", len(activities))
	}

	chess, ok := activities["Chess Club"]
	if !ok {
		t.Fatal("Chess Club missing from listing")
	}
	if chess.Description == "" || chess.Schedule == "" {
		t.Fatalf("Chess Club missing fields: %+v", chess)
	}
	if chess.MaxParticipants != 12 {
		t.Fatalf("expected max_participants 12, got %d", chess.MaxParticipants)
	}
	want := []string{"michael@mergington.edu", "daniel@mergington.edu"}
	if !reflect.DeepEqual(chess.Participants, want) {
		t.Fatalf("unexpected Chess Club roster: %v", chess.Participants)
	}
}

func TestSignupSuccess(t *testing.T) {
	mux := newTestMux(t)
	activity := "Chess Club"
	email := "newstudent@mergington.edu"

	before := len(listActivities(t, mux)[activity].Participants)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, signupURL(activity, email), nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp MessageResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !strings.Contains(resp.Message, email) || !strings.Contains(resp.Message, activity) {
		t.Fatalf("message should reference email and activity: %q", resp.Message)
	}

	after := listActivities(t, mux)[activity].Participants
	if len(after) != before+1 {
		t.Fatalf("expected roster to grow by 1 (before=%d after=%d)", before, len(after))
	}
	if after[len(after)-1] != email {
		t.Fatalf("new signup should be last in roster, got %v", after)
	}
}

func TestSignupActivityNotFound(t *testing.T) {
	mux := newTestMux(t)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, signupURL("NonExistentActivity", "student@mergington.edu"), nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}

	var body errorBody
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Detail != "Activity not found" {
		t.Fatalf("unexpected detail %q", body.Detail)
	}
}

func TestSignupAlreadyRegistered(t *testing.T) {
	mux := newTestMux(t)
	activity := "Chess Club"
	email := "michael@mergington.edu" // seeded

	before := len(listActivities(t, mux)[activity].Participants)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, signupURL(activity, email), nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}

	var body errorBody
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !strings.Contains(strings.ToLower(body.Detail), "already signed up") {
		t.Fatalf("detail should mention already signed up: %q", body.Detail)
	}

	after := len(listActivities(t, mux)[activity].Participants)
	if after != before {
		t.Fatalf("roster must not change on conflict (before=%d after=%d)", before, after)
	}
}

func TestSignupMissingEmail(t *testing.T) {
	mux := newTestMux(t)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestUnregisterSuccess(t *testing.T) {
	mux := newTestMux(t)
	activity := "Chess Club"
	email := "michael@mergington.edu" // seeded

	before := len(listActivities(t, mux)[activity].Participants)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, unregisterURL(activity, email), nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp MessageResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !strings.Contains(resp.Message, email) || !strings.Contains(resp.Message, activity) {
		t.Fatalf("message should reference email and activity: %q", resp.Message)
	}

	after := listActivities(t, mux)[activity].Participants
	if len(after) != before-1 {
		t.Fatalf("expected roster to shrink by 1 (before=%d after=%d)", before, len(after))
	}
	for _, p := range after {
		if p == email {
			t.Fatalf("email still present after unregister: %v", after)
		}
	}
}

func TestUnregisterActivityNotFound(t *testing.T) {
	mux := newTestMux(t)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, unregisterURL("NonExistentActivity", "student@mergington.edu"), nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}

	var body errorBody
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Detail != "Activity not found" {
		t.Fatalf("unexpected detail %q", body.Detail)
	}
}

func TestUnregisterNotRegistered(t *testing.T) {
	mux := newTestMux(t)
	activity := "Chess Club"

	before := len(listActivities(t, mux)[activity].Participants)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, unregisterURL(activity, "notregistered@mergington.edu"), nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}

	var body errorBody
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !strings.Contains(strings.ToLower(body.Detail), "not signed up") {
		t.Fatalf("detail should mention not signed up: %q", body.Detail)
	}

	after := len(listActivities(t, mux)[activity].Participants)
	if after != before {
		t.Fatalf("roster must not change on conflict (before=%d after=%d)", before, after)
	}
}

func TestSignupUnregisterRoundTrip(t *testing.T) {
	mux := newTestMux(t)
	activity := "Programming Class"
	email := "flowtest@mergington.edu"

	initial := listActivities(t, mux)[activity].Participants

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, signupURL(activity, email), nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("signup: expected 200 got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, unregisterURL(activity, email), nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("unregister: expected 200 got %d", rr.Code)
	}

	final := listActivities(t, mux)[activity].Participants
	if !reflect.DeepEqual(final, initial) {
		t.Fatalf("round trip must restore the roster exactly: initial=%v final=%v", initial, final)
	}
}

func TestMultipleStudentsSignup(t *testing.T) {
	mux := newTestMux(t)
	activity := "Drama Club"
	emails := []string{
		"student1@mergington.edu",
		"student2@mergington.edu",
		"student3@mergington.edu",
	}

	before := len(listActivities(t, mux)[activity].Participants)

	for _, email := range emails {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, signupURL(activity, email), nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("signup %s: expected 200 got %d", email, rr.Code)
		}
	}

	participants := listActivities(t, mux)[activity].Participants
	if len(participants) != before+len(emails) {
		t.Fatalf("expected %d participants, got %d", before+len(emails), len(participants))
	}
	for _, email := range emails {
		found := false
		for _, p := range participants {
			if p == email {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("%s missing from roster %v", email, participants)
		}
	}
}

func TestRootRedirect(t *testing.T) {
	mux := newTestMux(t)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expected 307 got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/static/index.html" {
		t.Fatalf("unexpected redirect target %q", loc)
	}
}

func TestActivitiesMethodNotAllowed(t *testing.T) {
	mux := newTestMux(t)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/activities", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/activities/Chess%20Club/signup?email=x@mergington.edu", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for GET signup, got %d", rr.Code)
	}
}
