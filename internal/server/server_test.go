package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ummahconnect/backend/internal/auth"
	"github.com/ummahconnect/backend/internal/config"
	"github.com/ummahconnect/backend/internal/entity"
	"github.com/ummahconnect/backend/internal/store"
)

func newTestServer(t *testing.T) (*gin.Engine, store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		AppEnv:          "test",
		Port:            "0",
		AllowedOrigins:  "http://localhost:3000",
		StoreDriver:     config.DriverFile,
		DataDir:         t.TempDir(),
		JWTSecret:       "test-secret",
		TokenTTL:        time.Hour,
		UpstreamTimeout: 5 * time.Second,
		RateLimitWindow: time.Minute,
		RateLimitMax:    1000,
		UploadFolder:    "test",
	}

	st, err := store.OpenFile(cfg.DataDir)
	require.NoError(t, err)

	srv := New(cfg, st, nil, nil)
	return srv.Engine(), st
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body
}

func registerUser(t *testing.T, engine *gin.Engine, email, password, name string) string {
	t.Helper()
	w := doRequest(t, engine, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":     email,
		"password":  password,
		"full_name": name,
	})
	require.Equal(t, http.StatusOK, w.Code, "register: %s", w.Body.String())
	body := decodeBody(t, w)
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterLoginMe(t *testing.T) {
	engine, _ := newTestServer(t)

	token := registerUser(t, engine, "amina@example.com", "secret123", "Amina Yusuf")

	w := doRequest(t, engine, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decodeBody(t, w)
	assert.Equal(t, "amina@example.com", me["email"])
	assert.Equal(t, "Amina Yusuf", me["full_name"])
	assert.Equal(t, entity.RoleMember, me["role"])

	// The stored hash never appears in a response payload.
	_, leaked := me["password_hash"]
	assert.False(t, leaked, "password_hash must not be serialized")

	w = doRequest(t, engine, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "amina@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	login := decodeBody(t, w)
	assert.Equal(t, "bearer", login["token_type"])
	assert.NotEmpty(t, login["access_token"])

	w = doRequest(t, engine, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "amina@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDuplicateRegistrationRejected(t *testing.T) {
	engine, _ := newTestServer(t)

	first := registerUser(t, engine, "dup@example.com", "secret123", "First")

	w := doRequest(t, engine, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":     "dup@example.com",
		"password":  "other456",
		"full_name": "Second",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The first registration's token stays valid.
	w = doRequest(t, engine, http.MethodGet, "/api/auth/me", first, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSelfUpdateCannotEscalateRole(t *testing.T) {
	engine, _ := newTestServer(t)

	token := registerUser(t, engine, "member@example.com", "secret123", "Plain Member")

	w := doRequest(t, engine, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, entity.RoleMember, decodeBody(t, w)["role"])

	// role rides along in the payload but is not part of the whitelist.
	w = doRequest(t, engine, http.MethodPut, "/api/users/me", token, map[string]any{
		"full_name": "Updated Name",
		"role":      "admin",
	})
	require.Equal(t, http.StatusOK, w.Code, "update: %s", w.Body.String())
	updated := decodeBody(t, w)
	assert.Equal(t, "Updated Name", updated["full_name"])
	assert.Equal(t, entity.RoleMember, updated["role"])

	w = doRequest(t, engine, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decodeBody(t, w)
	assert.Equal(t, "Updated Name", me["full_name"])
	assert.Equal(t, entity.RoleMember, me["role"])
}

func TestSelfUpdateWhitelistedFields(t *testing.T) {
	engine, _ := newTestServer(t)

	token := registerUser(t, engine, "profile@example.com", "secret123", "Profile Owner")

	w := doRequest(t, engine, http.MethodPut, "/api/users/me", token, map[string]any{
		"country":      "Malaysia",
		"bio":          "Software engineer",
		"skills":       []string{"Go", "Teaching"},
		"interests":    []string{"Quran study"},
		"social_links": map[string]string{"github": "https://github.com/profile"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody(t, w)
	assert.Equal(t, "Malaysia", updated["country"])
	assert.Equal(t, "Software engineer", updated["bio"])
	assert.Equal(t, "Profile Owner", updated["full_name"], "absent fields stay untouched")
}

func TestUnauthenticatedAccessRejected(t *testing.T) {
	engine, _ := newTestServer(t)

	endpoints := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/users/some-id"},
		{http.MethodPut, "/api/users/me"},
		{http.MethodPost, "/api/posts"},
		{http.MethodGet, "/api/posts"},
		{http.MethodGet, "/api/announcements"},
		{http.MethodPost, "/api/bot/chat"},
		{http.MethodGet, "/api/dashboard/stats"},
	}

	for _, ep := range endpoints {
		w := doRequest(t, engine, ep.method, ep.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s without token", ep.method, ep.path)

		w = doRequest(t, engine, ep.method, ep.path, "not-a-real-token", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s with garbage token", ep.method, ep.path)
	}
}

func TestPostAndCommentCounters(t *testing.T) {
	engine, _ := newTestServer(t)

	token := registerUser(t, engine, "author@example.com", "secret123", "Prolific Author")

	var postIDs []string
	for i := 0; i < 3; i++ {
		w := doRequest(t, engine, http.MethodPost, "/api/posts", token, map[string]any{
			"content": fmt.Sprintf("post number %d", i),
		})
		require.Equal(t, http.StatusCreated, w.Code, "create post: %s", w.Body.String())
		post := decodeBody(t, w)
		postIDs = append(postIDs, post["id"].(string))
		assert.Equal(t, "Prolific Author", post["author_name"])
		assert.Equal(t, entity.PostTypeGeneral, post["post_type"])
	}

	w := doRequest(t, engine, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, decodeBody(t, w)["posts_count"])

	// Comment on the first post only.
	w = doRequest(t, engine, http.MethodPost, "/api/posts/"+postIDs[0]+"/comments", token, map[string]any{
		"content": "nice post",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, engine, http.MethodGet, "/api/posts/"+postIDs[0], token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decodeBody(t, w)["comments_count"])

	w = doRequest(t, engine, http.MethodGet, "/api/posts/"+postIDs[1], token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decodeBody(t, w)["comments_count"])

	w = doRequest(t, engine, http.MethodGet, "/api/posts/"+postIDs[0]+"/comments", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var comments []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
	require.Len(t, comments, 1)
	assert.Equal(t, "nice post", comments[0]["content"])
}

func TestPostListLimitKeepsNewest(t *testing.T) {
	engine, _ := newTestServer(t)

	token := registerUser(t, engine, "limits@example.com", "secret123", "Limit Tester")

	for i := 0; i < 3; i++ {
		w := doRequest(t, engine, http.MethodPost, "/api/posts", token, map[string]any{
			"content": fmt.Sprintf("post-%d", i),
		})
		require.Equal(t, http.StatusCreated, w.Code)
		time.Sleep(5 * time.Millisecond)
	}

	// A limit below the collection size must cut after the newest-first
	// sort, never before it.
	w := doRequest(t, engine, http.MethodGet, "/api/posts?limit=1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var posts []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "post-2", posts[0]["content"])

	w = doRequest(t, engine, http.MethodGet, "/api/posts?limit=2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 2)
	assert.Equal(t, "post-2", posts[0]["content"])
	assert.Equal(t, "post-1", posts[1]["content"])
}

func TestTopicListLimitKeepsMostActive(t *testing.T) {
	engine, _ := newTestServer(t)

	token := registerUser(t, engine, "topics@example.com", "secret123", "Topic Tester")

	for i := 0; i < 3; i++ {
		w := doRequest(t, engine, http.MethodPost, "/api/forum/topics", token, map[string]any{
			"title":       fmt.Sprintf("topic-%d", i),
			"description": "discussion",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		time.Sleep(5 * time.Millisecond)
	}

	w := doRequest(t, engine, http.MethodGet, "/api/forum/topics?limit=1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var topics []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &topics))
	require.Len(t, topics, 1)
	assert.Equal(t, "topic-2", topics[0]["title"])
}

func TestPostNotFound(t *testing.T) {
	engine, _ := newTestServer(t)

	token := registerUser(t, engine, "reader@example.com", "secret123", "Reader")

	w := doRequest(t, engine, http.MethodGet, "/api/posts/"+uuid.NewString(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, engine, http.MethodPost, "/api/posts/"+uuid.NewString()+"/comments", token, map[string]any{
		"content": "orphan comment",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnnouncementsAdminOnly(t *testing.T) {
	engine, st := newTestServer(t)

	memberToken := registerUser(t, engine, "member2@example.com", "secret123", "Regular Member")

	w := doRequest(t, engine, http.MethodPost, "/api/announcements", memberToken, map[string]any{
		"title":   "Eid prayer",
		"content": "Eid prayer at 8am",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admins are provisioned out of band, never through registration.
	adminToken := seedAdmin(t, engine, st)

	w = doRequest(t, engine, http.MethodPost, "/api/announcements", adminToken, map[string]any{
		"title":             "Eid prayer",
		"content":           "Eid prayer at 8am",
		"announcement_type": "Event",
		"priority":          "High",
	})
	require.Equal(t, http.StatusCreated, w.Code, "admin create: %s", w.Body.String())

	w = doRequest(t, engine, http.MethodGet, "/api/announcements", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var announcements []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &announcements))
	require.Len(t, announcements, 1)
	assert.Equal(t, "Eid prayer", announcements[0]["title"])
	assert.Equal(t, true, announcements[0]["is_active"])
}

func TestBotChatFallbackWithoutAPIKey(t *testing.T) {
	engine, _ := newTestServer(t)

	token := registerUser(t, engine, "curious@example.com", "secret123", "Curious")

	w := doRequest(t, engine, http.MethodPost, "/api/bot/chat", token, map[string]any{
		"message": "What are the pillars of Islam?",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	resp, _ := body["response"].(string)
	assert.NotEmpty(t, resp, "fallback response expected when no API key is set")
}

func TestDashboardStats(t *testing.T) {
	engine, _ := newTestServer(t)

	token := registerUser(t, engine, "stats@example.com", "secret123", "Counter")
	registerUser(t, engine, "other@example.com", "secret123", "Other")

	w := doRequest(t, engine, http.MethodPost, "/api/posts", token, map[string]any{"content": "hello"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, engine, http.MethodGet, "/api/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decodeBody(t, w)
	assert.EqualValues(t, 2, stats["total_members"])
	assert.EqualValues(t, 1, stats["total_posts"])
}

func TestForumAndBusinessFlow(t *testing.T) {
	engine, _ := newTestServer(t)

	token := registerUser(t, engine, "flow@example.com", "secret123", "Flow Tester")

	w := doRequest(t, engine, http.MethodPost, "/api/forum/topics", token, map[string]any{
		"title":       "Fiqh questions",
		"description": "Ask your fiqh questions here",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	topic := decodeBody(t, w)
	assert.Equal(t, "General", topic["category"])
	assert.Equal(t, "Flow Tester", topic["creator_name"])

	w = doRequest(t, engine, http.MethodGet, "/api/forum/topics", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var topics []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &topics))
	require.Len(t, topics, 1)

	w = doRequest(t, engine, http.MethodPost, "/api/businesses", token, map[string]any{
		"name":               "Halal Grill",
		"description":        "Family restaurant",
		"category":           "Food",
		"address":            "12 Main St",
		"is_halal_certified": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, engine, http.MethodGet, "/api/businesses?category=Food", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var businesses []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &businesses))
	require.Len(t, businesses, 1)

	w = doRequest(t, engine, http.MethodGet, "/api/businesses?category=Clothing", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &businesses))
	assert.Empty(t, businesses)
}

func TestUserSearch(t *testing.T) {
	engine, _ := newTestServer(t)

	token := registerUser(t, engine, "searcher@example.com", "secret123", "Searcher")
	other := registerUser(t, engine, "gardener@example.com", "secret123", "Green Thumb")

	w := doRequest(t, engine, http.MethodPut, "/api/users/me", other, map[string]any{
		"skills": []string{"gardening", "landscaping"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, engine, http.MethodGet, "/api/users?search=garden", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var users []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "Green Thumb", users[0]["full_name"])
	_, leaked := users[0]["password_hash"]
	assert.False(t, leaked)
}

// seedAdmin writes an admin user straight into the store, then logs in.
func seedAdmin(t *testing.T, engine *gin.Engine, st store.Store) string {
	t.Helper()

	hash, err := auth.HashPassword("admin-secret")
	require.NoError(t, err)

	now := time.Now().UTC()
	admin := entity.User{
		ID:           uuid.NewString(),
		Email:        "admin@example.com",
		PasswordHash: hash,
		FullName:     "Site Admin",
		Role:         entity.RoleAdmin,
		Skills:       []string{},
		Interests:    []string{},
		SocialLinks:  map[string]string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Insert(context.Background(), "users", admin))

	w := doRequest(t, engine, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "admin@example.com",
		"password": "admin-secret",
	})
	require.Equal(t, http.StatusOK, w.Code, "admin login: %s", w.Body.String())
	token, _ := decodeBody(t, w)["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}
