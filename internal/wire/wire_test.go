package wire

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"movie-discovery/internal/data/entity"
	"movie-discovery/internal/data/repository"
	"movie-discovery/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ---------- in-memory repositories ----------

type stubUserRepo struct {
	mu    sync.Mutex
	users []*entity.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return repository.ErrDuplicateUser
		}
	}

	copied := *user
	s.users = append(s.users, &copied)
	return nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

type stubReviewRepo struct {
	mu      sync.Mutex
	reviews []*entity.ReviewWithUser
}

func (s *stubReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reviews = append(s.reviews, &entity.ReviewWithUser{Review: *review, Username: "alice"})
	return nil
}

func (s *stubReviewRepo) FindByMovieID(ctx context.Context, movieID string) ([]*entity.ReviewWithUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*entity.ReviewWithUser
	for _, review := range s.reviews {
		if review.MovieID == movieID {
			copied := *review
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *stubReviewRepo) GetMovieReviewStats(ctx context.Context, movieID string) (float64, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum, count int64
	for _, review := range s.reviews {
		if review.MovieID == movieID {
			sum += int64(review.ReviewNumber)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

func (s *stubReviewRepo) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reviews)
}

type stubSavedRepo struct {
	mu      sync.Mutex
	entries []*entity.SavedMovie
}

func (s *stubSavedRepo) Create(ctx context.Context, saved *entity.SavedMovie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.entries {
		if entry.UserID == saved.UserID && entry.MovieID == saved.MovieID {
			return repository.ErrAlreadySaved
		}
	}
	copied := *saved
	s.entries = append(s.entries, &copied)
	return nil
}

func (s *stubSavedRepo) Delete(ctx context.Context, userID uuid.UUID, movieID string) (*entity.SavedMovie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, entry := range s.entries {
		if entry.UserID == userID && entry.MovieID == movieID {
			removed := *entry
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return &removed, nil
		}
	}
	return nil, repository.ErrNotSaved
}

func (s *stubSavedRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SavedMovie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*entity.SavedMovie
	for _, entry := range s.entries {
		if entry.UserID == userID {
			copied := *entry
			result = append(result, &copied)
		}
	}
	return result, nil
}

// ---------- harness ----------

type testEnv struct {
	server  *httptest.Server
	users   *stubUserRepo
	reviews *stubReviewRepo
	saved   *stubSavedRepo
}

func newTestEnv(t *testing.T, tmdbURL string) *testEnv {
	t.Helper()

	users := &stubUserRepo{}
	reviews := &stubReviewRepo{}
	saved := &stubSavedRepo{}

	repo := &repository.Repository{
		User:       users,
		Session:    repository.NewMemorySessionRepository(),
		Review:     reviews,
		SavedMovie: saved,
	}

	config := &utils.Config{
		App: utils.AppConfig{
			ClientOrigin: "http://localhost:5173",
		},
		Session: utils.SessionConfig{ExpiryHours: 24},
		Cookie:  utils.CookieConfig{Name: "session_token"},
		TMDB: utils.TMDBConfig{
			BaseURL:        tmdbURL,
			APIKey:         "test-key",
			TimeoutSeconds: 2,
		},
	}

	app := Wiring(repo, config, zap.NewNop())
	server := httptest.NewServer(app.Router)
	t.Cleanup(server.Close)

	return &testEnv{server: server, users: users, reviews: reviews, saved: saved}
}

// newClient returns an http client with a cookie jar so the session
// cookie rides along like a browser would send it.
func newClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

func postJSON(t *testing.T, client *http.Client, url, body string) (int, string) {
	t.Helper()

	resp, err := client.Post(url, "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp.StatusCode, strings.TrimSpace(string(payload))
}

func getJSON(t *testing.T, client *http.Client, url string) (int, string) {
	t.Helper()

	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp.StatusCode, strings.TrimSpace(string(payload))
}

func register(t *testing.T, client *http.Client, baseURL, username, email, password string) {
	t.Helper()

	body := fmt.Sprintf(`{"username":%q,"email":%q,"password":%q}`, username, email, password)
	status, payload := postJSON(t, client, baseURL+"/register", body)
	if status != http.StatusOK {
		t.Fatalf("register %s: status %d body %s", email, status, payload)
	}
}

// ---------- scenarios ----------

func TestSessionLifecycle(t *testing.T) {
	env := newTestEnv(t, "http://unused.invalid")
	client := newClient(t)

	// Anonymous /me
	status, body := getJSON(t, client, env.server.URL+"/me")
	if status != http.StatusUnauthorized {
		t.Fatalf("anonymous /me status = %d", status)
	}
	if !strings.Contains(body, `"loggedIn":false`) {
		t.Fatalf("anonymous /me body = %s", body)
	}

	// Register implies login
	register(t, client, env.server.URL, "alice", "alice@example.com", "hunter22")

	status, body = getJSON(t, client, env.server.URL+"/me")
	if status != http.StatusOK || !strings.Contains(body, `"loggedIn":true`) {
		t.Fatalf("/me after register: status %d body %s", status, body)
	}

	// Logout destroys the session server-side
	status, body = postJSON(t, client, env.server.URL+"/logout", "")
	if status != http.StatusOK || !strings.Contains(body, "Logged out") {
		t.Fatalf("logout: status %d body %s", status, body)
	}

	status, body = getJSON(t, client, env.server.URL+"/me")
	if status != http.StatusUnauthorized || !strings.Contains(body, `"loggedIn":false`) {
		t.Fatalf("/me after logout: status %d body %s", status, body)
	}
}

func TestMalformedSessionCookieIsAnonymous(t *testing.T) {
	env := newTestEnv(t, "http://unused.invalid")

	// /me: a tampered cookie is an anonymous caller, never a 500
	req, err := http.NewRequest(http.MethodGet, env.server.URL+"/me", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Cookie", "session_token=not-a-uuid-cookie")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /me: %v", err)
	}
	payload, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("/me with garbage cookie: status %d", resp.StatusCode)
	}
	if !strings.Contains(string(payload), `"loggedIn":false`) {
		t.Fatalf("/me with garbage cookie: body %s", payload)
	}

	// Protected route: same garbage cookie gets the missing-user answer
	req, err = http.NewRequest(http.MethodPost, env.server.URL+"/addreview",
		bytes.NewBufferString(`{"movieID":"603","reviewText":"x","reviewNumber":3}`))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", "session_token=not-a-uuid-cookie")

	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST /addreview: %v", err)
	}
	payload, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("/addreview with garbage cookie: status %d", resp.StatusCode)
	}
	if !strings.Contains(string(payload), "Missing userID (user not logged in)") {
		t.Fatalf("/addreview with garbage cookie: body %s", payload)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t, "http://unused.invalid")

	register(t, newClient(t), env.server.URL, "alice", "alice@example.com", "hunter22")

	status, body := postJSON(t, newClient(t), env.server.URL+"/register",
		`{"username":"alice2","email":"alice@example.com","password":"hunter22"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("duplicate register status = %d", status)
	}
	if !strings.Contains(body, "User already exists") {
		t.Fatalf("duplicate register body = %s", body)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	env := newTestEnv(t, "http://unused.invalid")

	status, body := postJSON(t, newClient(t), env.server.URL+"/register",
		`{"username":"alice"}`)
	if status != http.StatusBadRequest || !strings.Contains(body, "All fields required") {
		t.Fatalf("partial register: status %d body %s", status, body)
	}
}

func TestLoginDoesNotLeakAccountExistence(t *testing.T) {
	env := newTestEnv(t, "http://unused.invalid")

	register(t, newClient(t), env.server.URL, "alice", "alice@example.com", "hunter22")

	wrongPassStatus, wrongPassBody := postJSON(t, newClient(t), env.server.URL+"/login",
		`{"email":"alice@example.com","password":"wrong"}`)
	unknownStatus, unknownBody := postJSON(t, newClient(t), env.server.URL+"/login",
		`{"email":"nobody@example.com","password":"hunter22"}`)

	if wrongPassStatus != http.StatusBadRequest || unknownStatus != http.StatusBadRequest {
		t.Fatalf("statuses = %d, %d", wrongPassStatus, unknownStatus)
	}
	if wrongPassBody != unknownBody {
		t.Fatalf("login failures distinguishable: %s vs %s", wrongPassBody, unknownBody)
	}
	if !strings.Contains(wrongPassBody, "Invalid credentials") {
		t.Fatalf("login failure body = %s", wrongPassBody)
	}
}

func TestLoginSuccessReturnsUserID(t *testing.T) {
	env := newTestEnv(t, "http://unused.invalid")

	register(t, newClient(t), env.server.URL, "alice", "alice@example.com", "hunter22")

	client := newClient(t)
	status, body := postJSON(t, client, env.server.URL+"/login",
		`{"email":"alice@example.com","password":"hunter22"}`)
	if status != http.StatusOK {
		t.Fatalf("login status = %d body %s", status, body)
	}

	var result struct {
		Success bool   `json:"success"`
		UserID  string `json:"userID"`
	}
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if !result.Success {
		t.Fatalf("login success flag missing: %s", body)
	}
	if _, err := uuid.Parse(result.UserID); err != nil {
		t.Fatalf("userID %q not a uuid: %v", result.UserID, err)
	}
}

func TestAddReviewRequiresSession(t *testing.T) {
	env := newTestEnv(t, "http://unused.invalid")

	status, body := postJSON(t, newClient(t), env.server.URL+"/addreview",
		`{"movieID":"603","reviewText":"great","reviewNumber":5}`)
	if status != http.StatusBadRequest {
		t.Fatalf("unauthenticated addreview status = %d", status)
	}
	if body != `{"error":"Missing userID (user not logged in)"}` {
		t.Fatalf("unauthenticated addreview body = %s", body)
	}
	if env.reviews.len() != 0 {
		t.Fatal("review written despite missing session")
	}
}

func TestReviewFlow(t *testing.T) {
	env := newTestEnv(t, "http://unused.invalid")
	client := newClient(t)

	register(t, client, env.server.URL, "alice", "alice@example.com", "hunter22")

	status, body := postJSON(t, client, env.server.URL+"/addreview",
		`{"movieID":"603","reviewText":"Still holds up","reviewNumber":5}`)
	if status != http.StatusOK {
		t.Fatalf("addreview: status %d body %s", status, body)
	}
	if !strings.Contains(body, `"success":true`) || !strings.Contains(body, `"review"`) {
		t.Fatalf("addreview body = %s", body)
	}

	status, body = getJSON(t, client, env.server.URL+"/getreviews/603")
	if status != http.StatusOK {
		t.Fatalf("getreviews: status %d body %s", status, body)
	}

	var listed struct {
		Reviews []struct {
			MovieID      string `json:"movie_id"`
			ReviewText   string `json:"review_text"`
			ReviewNumber int    `json:"review_number"`
			Username     string `json:"username"`
		} `json:"reviews"`
	}
	if err := json.Unmarshal([]byte(body), &listed); err != nil {
		t.Fatalf("decode getreviews: %v", err)
	}
	if len(listed.Reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(listed.Reviews))
	}
	if listed.Reviews[0].ReviewNumber != 5 || listed.Reviews[0].Username != "alice" {
		t.Fatalf("review = %+v", listed.Reviews[0])
	}
}

func TestGetReviewsEmptyMovie(t *testing.T) {
	env := newTestEnv(t, "http://unused.invalid")

	status, body := getJSON(t, newClient(t), env.server.URL+"/getreviews/999999")
	if status != http.StatusOK {
		t.Fatalf("getreviews empty: status %d body %s", status, body)
	}
	if !strings.Contains(body, `"reviews":[]`) {
		t.Fatalf("empty movie should yield an empty array, got %s", body)
	}
}

func TestAddReviewAcceptsEmptyText(t *testing.T) {
	env := newTestEnv(t, "http://unused.invalid")
	client := newClient(t)

	register(t, client, env.server.URL, "alice", "alice@example.com", "hunter22")

	// A bare star rating with no text is a valid review
	status, body := postJSON(t, client, env.server.URL+"/addreview",
		`{"movieID":"603","reviewText":"","reviewNumber":4}`)
	if status != http.StatusOK {
		t.Fatalf("rating-only review: status %d body %s", status, body)
	}
	if env.reviews.len() != 1 {
		t.Fatalf("rating-only review not persisted, %d rows", env.reviews.len())
	}
}

func TestAddReviewRejectsOutOfRangeRating(t *testing.T) {
	env := newTestEnv(t, "http://unused.invalid")
	client := newClient(t)

	register(t, client, env.server.URL, "alice", "alice@example.com", "hunter22")

	status, _ := postJSON(t, client, env.server.URL+"/addreview",
		`{"movieID":"603","reviewText":"off the scale","reviewNumber":9}`)
	if status != http.StatusBadRequest {
		t.Fatalf("out-of-range rating status = %d", status)
	}
	if env.reviews.len() != 0 {
		t.Fatal("out-of-range review persisted")
	}
}

func TestWatchLaterFlow(t *testing.T) {
	env := newTestEnv(t, "http://unused.invalid")
	client := newClient(t)

	register(t, client, env.server.URL, "alice", "alice@example.com", "hunter22")

	// First save succeeds
	status, body := postJSON(t, client, env.server.URL+"/watchlater", `{"movieID":"603"}`)
	if status != http.StatusOK || !strings.Contains(body, `"success":true`) {
		t.Fatalf("watchlater: status %d body %s", status, body)
	}

	// Second save is rejected, not silently accepted
	status, body = postJSON(t, client, env.server.URL+"/watchlater", `{"movieID":"603"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("duplicate watchlater status = %d", status)
	}
	if !strings.Contains(body, "Movie already in watch later!") {
		t.Fatalf("duplicate watchlater body = %s", body)
	}

	// The movie appears exactly once
	status, body = postJSON(t, client, env.server.URL+"/getSavedMovies", "")
	if status != http.StatusOK {
		t.Fatalf("getSavedMovies: status %d body %s", status, body)
	}
	if strings.Count(body, `"movie_id":"603"`) != 1 {
		t.Fatalf("saved list = %s", body)
	}

	// Remove, then removing again reports not saved
	status, body = postJSON(t, client, env.server.URL+"/removewatchlater", `{"movieID":"603"}`)
	if status != http.StatusOK || !strings.Contains(body, `"success":true`) {
		t.Fatalf("removewatchlater: status %d body %s", status, body)
	}

	status, body = postJSON(t, client, env.server.URL+"/removewatchlater", `{"movieID":"603"}`)
	if status != http.StatusBadRequest || !strings.Contains(body, "Movie not in watch later!") {
		t.Fatalf("remove unsaved: status %d body %s", status, body)
	}

	status, body = postJSON(t, client, env.server.URL+"/getSavedMovies", "")
	if status != http.StatusOK || !strings.Contains(body, `"movies":[]`) {
		t.Fatalf("list after remove: status %d body %s", status, body)
	}
}

func TestWatchLaterRequiresSession(t *testing.T) {
	env := newTestEnv(t, "http://unused.invalid")

	for _, route := range []string{"/watchlater", "/removewatchlater", "/getSavedMovies"} {
		status, body := postJSON(t, newClient(t), env.server.URL+route, `{"movieID":"603"}`)
		if status != http.StatusBadRequest {
			t.Fatalf("%s without session: status = %d", route, status)
		}
		if !strings.Contains(body, "Missing userID (user not logged in)") {
			t.Fatalf("%s without session: body = %s", route, body)
		}
	}
}

func TestSearchMoviesFilteredAndSorted(t *testing.T) {
	tmdb := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/3/search/movie" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"page":1,"results":[
			{"id":1,"title":"Minor","popularity":5.0,"release_date":"1999-03-31"},
			{"id":2,"title":"Unreleased","popularity":99.0,"release_date":""},
			{"id":3,"title":"Major","popularity":80.0,"release_date":"2003-05-15"}
		],"total_pages":1,"total_results":3}`)
	}))
	defer tmdb.Close()

	env := newTestEnv(t, tmdb.URL)

	status, body := postJSON(t, newClient(t), env.server.URL+"/getMovies",
		`{"query":"matrix","page":1}`)
	if status != http.StatusOK {
		t.Fatalf("getMovies: status %d body %s", status, body)
	}

	var result struct {
		Movies []struct {
			ID int64 `json:"id"`
		} `json:"movies"`
	}
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("decode getMovies: %v", err)
	}
	if len(result.Movies) != 2 {
		t.Fatalf("expected date-less entry dropped, got %d movies", len(result.Movies))
	}
	if result.Movies[0].ID != 3 || result.Movies[1].ID != 1 {
		t.Fatalf("expected popularity order [3 1], got %+v", result.Movies)
	}
}

func TestSearchMoviesUpstreamFailure(t *testing.T) {
	tmdb := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))
	defer tmdb.Close()

	env := newTestEnv(t, tmdb.URL)

	status, body := postJSON(t, newClient(t), env.server.URL+"/getMovies",
		`{"query":"matrix","page":1}`)
	if status != http.StatusInternalServerError {
		t.Fatalf("getMovies upstream failure status = %d", status)
	}
	if !strings.Contains(body, "TMDB API failed") {
		t.Fatalf("getMovies upstream failure body = %s", body)
	}
}

func TestMovieDetailsPassthrough(t *testing.T) {
	const detail = `{"id":603,"title":"The Matrix","runtime":136}`
	tmdb := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/3/movie/603" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, detail)
	}))
	defer tmdb.Close()

	env := newTestEnv(t, tmdb.URL)

	status, body := postJSON(t, newClient(t), env.server.URL+"/getMovieDetails",
		`{"id":"603"}`)
	if status != http.StatusOK {
		t.Fatalf("getMovieDetails: status %d body %s", status, body)
	}
	if !strings.Contains(body, `"movie":`+detail) {
		t.Fatalf("details not passed through: %s", body)
	}
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t, "http://unused.invalid")

	status, body := getJSON(t, newClient(t), env.server.URL+"/health")
	if status != http.StatusOK || body != "OK" {
		t.Fatalf("health: status %d body %s", status, body)
	}
}
