package notes

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/linchiayu/bible-notes-api/internal/auth"
	"github.com/linchiayu/bible-notes-api/pkg/apperr"
	"github.com/linchiayu/bible-notes-api/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) Handler {
	return Handler{service: service}
}

// toggleStarResponse is flat on purpose: the star route predates the
// data envelope and clients read noteId/starred/stars_count at the top level.
type toggleStarResponse struct {
	OK         bool  `json:"ok"`
	NoteID     int64 `json:"noteId"`
	Starred    bool  `json:"starred"`
	StarsCount int   `json:"stars_count"`
}

type deleteResponse struct {
	OK bool  `json:"ok"`
	ID int64 `json:"id"`
}

func (h *Handler) ListNotesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	bookID, err := strconv.ParseInt(q.Get("bookId"), 10, 64)
	if err != nil {
		response.Error(w, apperr.InvalidArgument("bad params"))
		return
	}
	chapterNumber, err := strconv.ParseInt(q.Get("chapterNumber"), 10, 64)
	if err != nil {
		response.Error(w, apperr.InvalidArgument("bad params"))
		return
	}
	viewerID := q.Get("userId")

	rows, err := h.service.ListForChapter(r.Context(), bookID, chapterNumber, viewerID)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, rows)
}

func (h *Handler) CreateNoteHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apperr.InvalidArgument("bad body"))
		return
	}

	note, err := h.service.Create(r.Context(), req)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, note)
}

func (h *Handler) ToggleStarHandler(w http.ResponseWriter, r *http.Request) {
	noteID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Error(w, apperr.InvalidArgument("bad id"))
		return
	}

	var req ToggleStarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apperr.InvalidArgument("missing userId"))
		return
	}

	res, err := h.service.ToggleStar(r.Context(), noteID, req.UserID)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, toggleStarResponse{
		OK:         true,
		NoteID:     res.NoteID,
		Starred:    res.Starred,
		StarsCount: res.StarsCount,
	})
}

func (h *Handler) DeleteNoteHandler(w http.ResponseWriter, r *http.Request) {
	cred := auth.Credential(r.Header.Get(auth.HeaderName))

	id, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"), cred)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, deleteResponse{OK: true, ID: id})
}
