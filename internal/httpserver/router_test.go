package httpserver_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"travelmate/internal/config"
	"travelmate/internal/httpserver"
	"travelmate/internal/metrics"
	"travelmate/internal/store/sqlite"
)

type testAPI struct {
	t       *testing.T
	handler http.Handler
	db      *sql.DB
	logs    *observer.ObservedLogs
}

func newTestAPI(t *testing.T, mutate ...func(*config.Config)) *testAPI {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(db))
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		AppName:        "TravelMate API",
		CORSOrigins:    []string{"*"},
		RequestTimeout: 5 * time.Second,
		BcryptCost:     4,
	}
	for _, fn := range mutate {
		fn(cfg)
	}

	core, logs := observer.New(zapcore.InfoLevel)
	return &testAPI{
		t:       t,
		handler: httpserver.NewRouter(cfg, db, zap.New(core), metrics.New()),
		db:      db,
		logs:    logs,
	}
}

func (a *testAPI) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(a.t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type personJSON struct {
	ID        string         `json:"id"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	Email     string         `json:"email"`
	Address   map[string]any `json:"address"`
	Interests map[string]any `json:"interests"`
	Chats     []chatRefJSON  `json:"chats"`
}

type chatRefJSON struct {
	ID string `json:"id"`
}

type messageJSON struct {
	ID      string     `json:"id"`
	Content string     `json:"content"`
	ChatID  string     `json:"chatId"`
	Sender  personJSON `json:"sender"`
}

type chatJSON struct {
	ID           string        `json:"id"`
	Participants []personJSON  `json:"participants"`
	Messages     []messageJSON `json:"messages"`
}

type errorJSON struct {
	Error string `json:"error"`
}

func (a *testAPI) createPerson(first string) personJSON {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/person", map[string]any{
		"firstName": first,
		"lastName":  "Traveller",
		"email":     strings.ToLower(first) + "@example.com",
		"password":  "Secret123",
	})
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[personJSON](a.t, rec)
}

func messageContents(msgs []messageJSON) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Content)
	}
	return out
}

func TestChatLifecycle(t *testing.T) {
	api := newTestAPI(t)
	a := api.createPerson("Alice")
	b := api.createPerson("Bob")

	create := map[string]any{
		"participantIds": []string{a.ID, b.ID},
		"message":        "hi",
		"senderId":       a.ID,
	}
	rec := api.do(http.MethodPost, "/chat", create)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	chat := decode[chatJSON](t, rec)
	assert.Len(t, chat.Participants, 2)
	require.Len(t, chat.Messages, 1)
	assert.Equal(t, "hi", chat.Messages[0].Content)
	assert.Equal(t, a.ID, chat.Messages[0].Sender.ID)

	rec = api.do(http.MethodPost, "/chat", create)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "chat already exists", decode[errorJSON](t, rec).Error)

	// Same set in the other order is still the same chat.
	rec = api.do(http.MethodPost, "/chat", map[string]any{
		"participantIds": []string{b.ID, a.ID},
		"message":        "again",
		"senderId":       b.ID,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = api.do(http.MethodPut, "/chat/message", map[string]any{
		"chatId":   chat.ID,
		"senderId": b.ID,
		"content":  "yo",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	chat = decode[chatJSON](t, rec)
	assert.Equal(t, []string{"hi", "yo"}, messageContents(chat.Messages))

	rec = api.do(http.MethodGet, "/messages/"+chat.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	msgs := decode[[]messageJSON](t, rec)
	assert.Equal(t, []string{"hi", "yo"}, messageContents(msgs))
	assert.Equal(t, b.ID, msgs[1].Sender.ID)

	rec = api.do(http.MethodGet, "/chats/"+a.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []chatRefJSON{{ID: chat.ID}}, decode[[]chatRefJSON](t, rec))

	rec = api.do(http.MethodGet, "/chat/"+chat.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[chatJSON](t, rec).Messages, 2)
}

func TestCreateChatFailures(t *testing.T) {
	api := newTestAPI(t)
	a := api.createPerson("Alice")
	b := api.createPerson("Bob")
	c := api.createPerson("Carol")

	tests := []struct {
		name   string
		body   any
		status int
		msg    string
	}{
		{"malformed body", "{", http.StatusBadRequest, "invalid JSON body"},
		{"single participant", map[string]any{"participantIds": []string{a.ID}, "message": "hi", "senderId": a.ID}, http.StatusBadRequest, "at least two participants required"},
		{"missing message", map[string]any{"participantIds": []string{a.ID, b.ID}, "senderId": a.ID}, http.StatusBadRequest, "message and senderId required"},
		{"unknown participant", map[string]any{"participantIds": []string{a.ID, "ghost"}, "message": "hi", "senderId": a.ID}, http.StatusNotFound, "one or more participants not found"},
		{"duplicate ids", map[string]any{"participantIds": []string{a.ID, a.ID}, "message": "hi", "senderId": a.ID}, http.StatusNotFound, "one or more participants not found"},
		{"sender outside set", map[string]any{"participantIds": []string{a.ID, b.ID}, "message": "hi", "senderId": c.ID}, http.StatusBadRequest, "sender must be a participant"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(http.MethodPost, "/chat", tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.msg, decode[errorJSON](t, rec).Error)
		})
	}

	rec := api.do(http.MethodGet, "/chats/"+a.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]chatRefJSON](t, rec))
}

func TestConcurrentCreateForSameSetYieldsOneChat(t *testing.T) {
	api := newTestAPI(t)
	a := api.createPerson("Alice")
	b := api.createPerson("Bob")

	body, err := json.Marshal(map[string]any{
		"participantIds": []string{a.ID, b.ID},
		"message":        "hi",
		"senderId":       a.ID,
	})
	require.NoError(t, err)

	const workers = 20
	statuses := make([]int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			api.handler.ServeHTTP(rec, req)
			statuses[i] = rec.Code
		}(i)
	}
	wg.Wait()

	counts := map[int]int{}
	for _, code := range statuses {
		counts[code]++
	}
	assert.Equal(t, map[int]int{http.StatusCreated: 1, http.StatusConflict: workers - 1}, counts)

	var stored int
	require.NoError(t, api.db.QueryRow(`SELECT COUNT(*) FROM chats`).Scan(&stored))
	assert.Equal(t, 1, stored)
}

func TestDisjointAndOverlappingSetsAreIndependent(t *testing.T) {
	api := newTestAPI(t)
	a := api.createPerson("Alice")
	b := api.createPerson("Bob")
	c := api.createPerson("Carol")

	for _, ids := range [][]string{{a.ID, b.ID}, {b.ID, c.ID}, {a.ID, b.ID, c.ID}} {
		rec := api.do(http.MethodPost, "/chat", map[string]any{
			"participantIds": ids,
			"message":        "hello",
			"senderId":       b.ID,
		})
		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := api.do(http.MethodGet, "/chats/"+b.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]chatRefJSON](t, rec), 3)
}

func TestAddMessageFailures(t *testing.T) {
	api := newTestAPI(t)
	a := api.createPerson("Alice")
	b := api.createPerson("Bob")
	c := api.createPerson("Carol")

	rec := api.do(http.MethodPost, "/chat", map[string]any{
		"participantIds": []string{a.ID, b.ID},
		"message":        "hi",
		"senderId":       a.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	chat := decode[chatJSON](t, rec)

	rec = api.do(http.MethodPut, "/chat/message", map[string]any{"chatId": chat.ID, "senderId": a.ID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "chatId, senderId and content are required", decode[errorJSON](t, rec).Error)

	rec = api.do(http.MethodPut, "/chat/message", map[string]any{"chatId": "nope", "senderId": a.ID, "content": "yo"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "chat not found", decode[errorJSON](t, rec).Error)

	rec = api.do(http.MethodPut, "/chat/message", map[string]any{"chatId": chat.ID, "senderId": "ghost", "content": "yo"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "sender not found", decode[errorJSON](t, rec).Error)

	// Membership is not checked on append unless enabled.
	rec = api.do(http.MethodPut, "/chat/message", map[string]any{"chatId": chat.ID, "senderId": c.ID, "content": "psst"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodGet, "/messages/"+chat.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"hi", "psst"}, messageContents(decode[[]messageJSON](t, rec)))

	rec = api.do(http.MethodGet, "/messages/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddMessageEnforcedMembership(t *testing.T) {
	api := newTestAPI(t, func(c *config.Config) { c.EnforceSenderMembership = true })
	a := api.createPerson("Alice")
	b := api.createPerson("Bob")
	c := api.createPerson("Carol")

	rec := api.do(http.MethodPost, "/chat", map[string]any{
		"participantIds": []string{a.ID, b.ID},
		"message":        "hi",
		"senderId":       a.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	chat := decode[chatJSON](t, rec)

	rec = api.do(http.MethodPut, "/chat/message", map[string]any{"chatId": chat.ID, "senderId": c.ID, "content": "psst"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "sender must be a participant", decode[errorJSON](t, rec).Error)
}

func TestPersonEndpoints(t *testing.T) {
	api := newTestAPI(t)

	t.Run("validation", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/person", map[string]any{
			"firstName": "Ada",
			"lastName":  "Lovelace",
			"password":  "Secret123",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "email is required", decode[errorJSON](t, rec).Error)

		rec = api.do(http.MethodPost, "/person", map[string]any{
			"firstName": "Ada",
			"lastName":  "Lovelace",
			"email":     "not-an-email",
			"password":  "Secret123",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "email must be a valid email", decode[errorJSON](t, rec).Error)
	})

	t.Run("create, update and read details", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/person", map[string]any{
			"firstName": "Ada",
			"lastName":  "Lovelace",
			"email":     "ada@example.com",
			"password":  "Secret123",
			"address":   map[string]any{"street": "Main", "houseNumber": "1", "postalCode": "10115", "city": "Berlin"},
			"interests": map[string]any{"cooking": true},
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "password")
		assert.NotContains(t, rec.Body.String(), "Secret123")
		ada := decode[personJSON](t, rec)

		rec = api.do(http.MethodPut, "/person/"+ada.ID, map[string]any{
			"lastName": "King",
			"address":  map[string]any{"city": "London"},
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		updated := decode[personJSON](t, rec)
		assert.Equal(t, "Ada", updated.FirstName)
		assert.Equal(t, "King", updated.LastName)
		assert.Equal(t, "London", updated.Address["city"])
		assert.Equal(t, ada.Address["id"], updated.Address["id"])

		rec = api.do(http.MethodGet, "/person/"+ada.ID+"/details", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		details := decode[personJSON](t, rec)
		assert.Equal(t, true, details.Interests["cooking"])
		assert.NotNil(t, details.Chats)
		assert.Empty(t, details.Chats)

		rec = api.do(http.MethodGet, "/person", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]personJSON](t, rec), 1)
	})

	t.Run("missing person", func(t *testing.T) {
		for _, tc := range []struct{ method, path string }{
			{http.MethodGet, "/person/ghost"},
			{http.MethodGet, "/person/ghost/details"},
			{http.MethodDelete, "/person/ghost"},
		} {
			rec := api.do(tc.method, tc.path, nil)
			assert.Equal(t, http.StatusNotFound, rec.Code, tc.path)
			assert.Equal(t, "person not found", decode[errorJSON](t, rec).Error)
		}
		rec := api.do(http.MethodPut, "/person/ghost", map[string]any{"lastName": "X"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeletePersonDissolvesTwoPersonChats(t *testing.T) {
	api := newTestAPI(t)
	a := api.createPerson("Alice")
	b := api.createPerson("Bob")
	c := api.createPerson("Carol")

	rec := api.do(http.MethodPost, "/chat", map[string]any{"participantIds": []string{a.ID, b.ID}, "message": "hi", "senderId": a.ID})
	require.Equal(t, http.StatusCreated, rec.Code)
	pair := decode[chatJSON](t, rec)
	rec = api.do(http.MethodPost, "/chat", map[string]any{"participantIds": []string{a.ID, b.ID, c.ID}, "message": "hey", "senderId": b.ID})
	require.Equal(t, http.StatusCreated, rec.Code)
	group := decode[chatJSON](t, rec)

	rec = api.do(http.MethodDelete, "/person/"+a.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/chat/"+pair.ID, nil).Code)

	rec = api.do(http.MethodGet, "/chat/"+group.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	remaining := decode[chatJSON](t, rec)
	assert.Len(t, remaining.Participants, 2)
	assert.Equal(t, []string{"hey"}, messageContents(remaining.Messages))

	// The shrunken group chat now covers exactly the remaining pair.
	rec = api.do(http.MethodPost, "/chat", map[string]any{"participantIds": []string{b.ID, c.ID}, "message": "hi", "senderId": c.ID})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestInternalErrorsAreNotLeaked(t *testing.T) {
	api := newTestAPI(t)
	require.NoError(t, api.db.Close())

	rec := api.do(http.MethodGet, "/person", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decode[errorJSON](t, rec).Error)
	assert.NotContains(t, rec.Body.String(), "closed")

	entries := api.logs.FilterMessage("request failed").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap()["error"], "database is closed")
}

func TestServiceEndpoints(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())

	rec = api.do(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "TravelMate API")

	a := api.createPerson("Alice")
	b := api.createPerson("Bob")
	rec = api.do(http.MethodPost, "/chat", map[string]any{"participantIds": []string{a.ID, b.ID}, "message": "hi", "senderId": a.ID})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = api.do(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "travelmate_chats_created_total 1")
	assert.Contains(t, rec.Body.String(), `travelmate_http_request_duration_seconds_count{method="POST",route="/chat`)

	rec = api.do(http.MethodGet, "/docs/doc.json", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "TravelMate API")

	entries := api.logs.FilterMessage("request").All()
	assert.NotEmpty(t, entries)
}
