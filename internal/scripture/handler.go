package scripture

import (
	"net/http"
	"strconv"

	"github.com/linchiayu/bible-notes-api/pkg/apperr"
	"github.com/linchiayu/bible-notes-api/pkg/response"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) Handler {
	return Handler{repo: repo}
}

func (h *Handler) ListBooksHandler(w http.ResponseWriter, r *http.Request) {
	books, err := h.repo.ListBooks(r.Context())
	if err != nil {
		response.Error(w, apperr.Store(err))
		return
	}

	if books == nil {
		books = []Book{}
	}
	response.OK(w, books)
}

func (h *Handler) ListChaptersHandler(w http.ResponseWriter, r *http.Request) {
	var bookID *int
	if raw := r.URL.Query().Get("bookId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, apperr.InvalidArgument("bad bookId"))
			return
		}
		bookID = &id
	}

	chapters, err := h.repo.ListChapters(r.Context(), bookID)
	if err != nil {
		response.Error(w, apperr.Store(err))
		return
	}

	if chapters == nil {
		chapters = []Chapter{}
	}
	response.OK(w, chapters)
}

func (h *Handler) ListVersesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	bookID, err := strconv.Atoi(q.Get("bookId"))
	if err != nil {
		response.Error(w, apperr.InvalidArgument("Missing or invalid bookId/chapterNumber"))
		return
	}
	chapterNumber, err := strconv.Atoi(q.Get("chapterNumber"))
	if err != nil {
		response.Error(w, apperr.InvalidArgument("Missing or invalid bookId/chapterNumber"))
		return
	}

	verses, err := h.repo.ListVerses(r.Context(), bookID, chapterNumber)
	if err != nil {
		response.Error(w, apperr.Store(err))
		return
	}

	if verses == nil {
		verses = []Verse{}
	}
	response.OK(w, verses)
}
