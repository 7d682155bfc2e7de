package notes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linchiayu/bible-notes-api/internal/auth"
)

func newTestRouter(repo Repository, adminSecret string) http.Handler {
	h := NewHandler(NewService(repo, adminSecret))

	r := chi.NewRouter()
	r.Get("/api/notes", h.ListNotesHandler)
	r.Post("/api/notes", h.CreateNoteHandler)
	r.Post("/api/notes/{id}/star", h.ToggleStarHandler)
	r.Delete("/api/notes/{id}", h.DeleteNoteHandler)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, target string, body interface{}, header map[string]string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestListNotesHandler_BadParams(t *testing.T) {
	router := newTestRouter(newFakeRepo(), "")

	for _, target := range []string{
		"/api/notes",
		"/api/notes?bookId=1",
		"/api/notes?bookId=abc&chapterNumber=1",
		"/api/notes?bookId=1&chapterNumber=NaN",
	} {
		rec, body := doJSON(t, router, http.MethodGet, target, nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, false, body["ok"], target)
		assert.Equal(t, "bad params", body["error"], target)
	}
}

func TestListNotesHandler_ReturnsEnrichedRows(t *testing.T) {
	repo := newFakeRepo()
	n := repo.addNote(1, 1, 1, "hello", "2025-06-01T10:00:00+00:00")
	repo.star(n.ID, "me")

	router := newTestRouter(repo, "")
	rec, body := doJSON(t, router, http.MethodGet, "/api/notes?bookId=1&chapterNumber=1&userId=me", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, true, body["ok"])
	data := body["data"].([]interface{})
	require.Len(t, data, 1)

	row := data[0].(map[string]interface{})
	assert.Equal(t, "hello", row["content"])
	assert.Equal(t, float64(1), row["stars_count"])
	assert.Equal(t, true, row["starred_by_me"])
	assert.Equal(t, "2025-06-01T10:00:00+00:00", row["created_at"])
}

func TestCreateNoteHandler(t *testing.T) {
	repo := newFakeRepo()
	router := newTestRouter(repo, "")

	rec, body := doJSON(t, router, http.MethodPost, "/api/notes", map[string]interface{}{
		"bookId":        1,
		"chapterNumber": 1,
		"verseNumber":   1,
		"content":       "hello",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, true, body["ok"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "hello", data["content"])
	assert.NotZero(t, data["id"])

	// The fresh note shows up in the list with zero stars for a new viewer.
	rec, body = doJSON(t, router, http.MethodGet, "/api/notes?bookId=1&chapterNumber=1&userId=fresh", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rows := body["data"].([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, float64(0), row["stars_count"])
	assert.Equal(t, false, row["starred_by_me"])
}

func TestCreateNoteHandler_BadBody(t *testing.T) {
	repo := newFakeRepo()
	router := newTestRouter(repo, "")

	cases := []map[string]interface{}{
		{"bookId": "abc", "chapterNumber": 1, "verseNumber": 1, "content": "x"},
		{"chapterNumber": 1, "verseNumber": 1, "content": "x"},
		{"bookId": 1, "chapterNumber": 1, "verseNumber": 1, "content": "   "},
	}
	for i, c := range cases {
		rec, body := doJSON(t, router, http.MethodPost, "/api/notes", c, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "case %d", i)
		assert.Equal(t, "bad body", body["error"], "case %d", i)
	}
	assert.NotContains(t, repo.calls, "Insert")
}

func TestToggleStarHandler(t *testing.T) {
	repo := newFakeRepo()
	n := repo.addNote(1, 1, 1, "hello", "2025-06-01T10:00:00+00:00")
	router := newTestRouter(repo, "")

	rec, body := doJSON(t, router, http.MethodPost, "/api/notes/1/star", map[string]string{"userId": "me"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(n.ID), body["noteId"])
	assert.Equal(t, true, body["starred"])
	assert.Equal(t, float64(1), body["stars_count"])

	rec, body = doJSON(t, router, http.MethodPost, "/api/notes/1/star", map[string]string{"userId": "me"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["starred"])
	assert.Equal(t, float64(0), body["stars_count"])
}

func TestToggleStarHandler_Errors(t *testing.T) {
	repo := newFakeRepo()
	repo.addNote(1, 1, 1, "hello", "2025-06-01T10:00:00+00:00")
	router := newTestRouter(repo, "")

	rec, body := doJSON(t, router, http.MethodPost, "/api/notes/abc/star", map[string]string{"userId": "me"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad id", body["error"])

	rec, body = doJSON(t, router, http.MethodPost, "/api/notes/1/star", map[string]string{}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing userId", body["error"])

	rec, body = doJSON(t, router, http.MethodPost, "/api/notes/99/star", map[string]string{"userId": "me"}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "note not found", body["error"])
}

func TestDeleteNoteHandler(t *testing.T) {
	repo := newFakeRepo()
	n := repo.addNote(1, 1, 1, "hello", "2025-06-01T10:00:00+00:00")
	router := newTestRouter(repo, "s3cret")

	rec, body := doJSON(t, router, http.MethodDelete, "/api/notes/1", nil, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "forbidden", body["error"])

	rec, body = doJSON(t, router, http.MethodDelete, "/api/notes/1", nil, map[string]string{auth.HeaderName: "nope"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	_, ok := repo.notes[n.ID]
	require.True(t, ok, "note must still exist after forbidden deletes")

	rec, body = doJSON(t, router, http.MethodDelete, "/api/notes/abc", nil, map[string]string{auth.HeaderName: "s3cret"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad id", body["error"])

	rec, body = doJSON(t, router, http.MethodDelete, "/api/notes/1", nil, map[string]string{auth.HeaderName: "s3cret"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(1), body["id"])

	_, ok = repo.notes[n.ID]
	assert.False(t, ok)
}
