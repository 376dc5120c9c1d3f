package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bookclub/bookclub-api/internal/book"
	"github.com/bookclub/bookclub-api/internal/httpapi"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	g := gin.New()
	RegisterBookRoutes(g, book.NewService(book.NewMemoryStore()))
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

func createBook(t *testing.T, g *gin.Engine) book.Book {
	t.Helper()
	w := doJSON(g, http.MethodPost, "/api/v1/books",
		`{"title":"Dune","author":"Frank Herbert","description":"Spice.","pageCount":412,"pitchBy":"carol"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var b book.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	require.NotEmpty(t, b.ID)
	return b
}

func TestBookCRUD(t *testing.T) {
	g := newTestRouter()
	created := createBook(t, g)

	// get
	w := doJSON(g, http.MethodGet, "/api/v1/books/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got book.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, created.Title, got.Title)

	// list
	w = doJSON(g, http.MethodGet, "/api/v1/books", "")
	require.Equal(t, http.StatusOK, w.Code)
	var books []book.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &books))
	require.Len(t, books, 1)

	// partial update touches only the named field
	w = doJSON(g, http.MethodPatch, "/api/v1/books/"+created.ID, `{"author":"F. Herbert"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated book.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "Dune", updated.Title)
	require.Equal(t, "F. Herbert", updated.Author)

	// delete, then get fails
	w = doJSON(g, http.MethodDelete, "/api/v1/books/"+created.ID, "")
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.Bytes())

	w = doJSON(g, http.MethodGet, "/api/v1/books/"+created.ID, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVoteEndpointDeduplicates(t *testing.T) {
	g := newTestRouter()
	created := createBook(t, g)

	w := doJSON(g, http.MethodPost, "/api/v1/books/"+created.ID+"/supporters", `{"supporter":"alice"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(g, http.MethodPost, "/api/v1/books/"+created.ID+"/supporters", `{"supporter":"alice"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var b book.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	require.Equal(t, []string{"alice"}, b.Supporters)
}

func TestBadIdentifierReturns400(t *testing.T) {
	g := newTestRouter()

	w := doJSON(g, http.MethodGet, "/api/v1/books/not-a-valid-id", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body httpapi.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, http.StatusBadRequest, body.StatusCode)
	require.Equal(t, "Invalid ID.", body.Message)
}

func TestMissingBookReturns400WithMessage(t *testing.T) {
	g := newTestRouter()

	w := doJSON(g, http.MethodPatch, "/api/v1/books/68b1c2d3e4f5a6b7c8d9e0f1", `{"title":"x"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body httpapi.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Book does not exist.", body.Message)
}

func TestCreateRejectsMissingFields(t *testing.T) {
	g := newTestRouter()

	w := doJSON(g, http.MethodPost, "/api/v1/books", `{"title":"Dune"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListSortedQuery(t *testing.T) {
	g := newTestRouter()
	first := createBook(t, g)
	second := createBook(t, g)

	w := doJSON(g, http.MethodPost, "/api/v1/books/"+second.ID+"/supporters", `{"supporter":"alice"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(g, http.MethodGet, "/api/v1/books?sort=supporters", "")
	require.Equal(t, http.StatusOK, w.Code)
	var books []book.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &books))
	require.Len(t, books, 2)
	require.Equal(t, second.ID, books[0].ID)
	require.Equal(t, first.ID, books[1].ID)
}
