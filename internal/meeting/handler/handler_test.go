package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bookclub/bookclub-api/internal/httpapi"
	"github.com/bookclub/bookclub-api/internal/meeting"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	g := gin.New()
	RegisterMeetingRoutes(g, meeting.NewService(meeting.NewMemoryStore()))
	return g
}

func doJSON(g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func TestMeetingCRUD(t *testing.T) {
	g := newTestRouter()

	w := doJSON(g, http.MethodPost, "/api/v1/meetings",
		`{"title":"Dune","author":"Frank Herbert","description":"Spice.","pitchedBy":"carol"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var created meeting.Meeting
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Nil(t, created.Date)

	// date and location arrive later via partial update
	w = doJSON(g, http.MethodPatch, "/api/v1/meetings/"+created.ID,
		`{"date":"2026-09-12T19:00:00Z","location":"the library"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated meeting.Meeting
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.NotNil(t, updated.Date)
	require.Equal(t, "the library", *updated.Location)
	require.Equal(t, "Dune", updated.Title)

	w = doJSON(g, http.MethodGet, "/api/v1/meetings", "")
	require.Equal(t, http.StatusOK, w.Code)
	var meetings []meeting.Meeting
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meetings))
	require.Len(t, meetings, 1)

	w = doJSON(g, http.MethodGet, "/api/v1/meetings/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(g, http.MethodDelete, "/api/v1/meetings/"+created.ID, "")
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestMeetingErrors(t *testing.T) {
	g := newTestRouter()

	w := doJSON(g, http.MethodGet, "/api/v1/meetings/nope", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	var body httpapi.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Invalid ID.", body.Message)

	w = doJSON(g, http.MethodPatch, "/api/v1/meetings/68b1c2d3e4f5a6b7c8d9e0f1", `{"title":"x"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Meeting does not exist.", body.Message)
}
