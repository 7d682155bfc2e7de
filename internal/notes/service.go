package notes

import (
	"context"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/linchiayu/bible-notes-api/internal/auth"
	"github.com/linchiayu/bible-notes-api/pkg/apperr"
)

// Service holds the notes business rules. It keeps no state between calls;
// every derived value is recomputed from the repository.
type Service struct {
	repo        Repository
	validate    *validator.Validate
	adminSecret string
}

func NewService(repo Repository, adminSecret string) *Service {
	return &Service{
		repo:        repo,
		validate:    validator.New(),
		adminSecret: adminSecret,
	}
}

// ListForChapter returns every note in the chapter with stars_count and the
// viewer's starred_by_me flag, ordered by descending star count and then by
// ascending creation-timestamp string.
//
// A chapter with no notes short-circuits: no star queries are issued.
func (s *Service) ListForChapter(ctx context.Context, bookID, chapterNumber int64, viewerID string) ([]NoteWithStars, error) {
	fetched, err := s.repo.ListByChapter(ctx, bookID, chapterNumber)
	if err != nil {
		log.Printf("error listing notes: %v", err)
		return nil, apperr.Store(err)
	}

	if len(fetched) == 0 {
		return []NoteWithStars{}, nil
	}

	ids := make([]int64, len(fetched))
	for i, n := range fetched {
		ids[i] = n.ID
	}

	counts, err := s.repo.CountStars(ctx, ids)
	if err != nil {
		log.Printf("error counting stars: %v", err)
		return nil, apperr.Store(err)
	}

	starred := map[int64]bool{}
	if strings.TrimSpace(viewerID) != "" {
		starred, err = s.repo.StarredBy(ctx, ids, strings.TrimSpace(viewerID))
		if err != nil {
			log.Printf("error fetching viewer stars: %v", err)
			return nil, apperr.Store(err)
		}
	}

	out := make([]NoteWithStars, len(fetched))
	for i, n := range fetched {
		out[i] = NoteWithStars{
			Note:        n,
			StarsCount:  counts[n.ID],
			StarredByMe: starred[n.ID],
		}
	}

	// Most-starred first; ties broken by the raw created_at string. The
	// lexical comparison is deliberate, not a shortcut for parsing.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StarsCount != out[j].StarsCount {
			return out[i].StarsCount > out[j].StarsCount
		}
		return out[i].CreatedAt < out[j].CreatedAt
	})

	return out, nil
}

// Create validates the request and inserts one note. The returned row has no
// stars_count/starred_by_me; a fresh note has zero of both.
func (s *Service) Create(ctx context.Context, req CreateNoteRequest) (*Note, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperr.InvalidArgument("bad body")
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperr.InvalidArgument("bad body")
	}

	note, err := s.repo.Insert(ctx, *req.BookID, *req.ChapterNumber, *req.VerseNumber, content)
	if err != nil {
		log.Printf("error inserting note: %v", err)
		return nil, apperr.Store(err)
	}

	return note, nil
}

// ToggleStar flips the (note, viewer) star relation and reports the new
// state with a freshly recounted total. Calling it twice flips twice.
//
// The flip is an insert-or-delete against the unique (note_id, user_id)
// constraint: the insert either lands or conflicts atomically, so two
// simultaneous toggles from one viewer cannot double-insert.
func (s *Service) ToggleStar(ctx context.Context, noteID int64, viewerID string) (*ToggleStarResult, error) {
	if noteID <= 0 {
		return nil, apperr.InvalidArgument("bad id")
	}

	req := ToggleStarRequest{UserID: strings.TrimSpace(viewerID)}
	if err := s.validate.Struct(req); err != nil {
		return nil, apperr.InvalidArgument("missing userId")
	}

	exists, err := s.repo.Exists(ctx, noteID)
	if err != nil {
		log.Printf("error checking note %d: %v", noteID, err)
		return nil, apperr.Store(err)
	}
	if !exists {
		return nil, apperr.NotFound("note not found")
	}

	inserted, err := s.repo.AddStar(ctx, noteID, req.UserID)
	if err != nil {
		log.Printf("error starring note %d: %v", noteID, err)
		return nil, apperr.Store(err)
	}

	starred := inserted
	if !inserted {
		// Already starred: this toggle removes it.
		if err := s.repo.RemoveStar(ctx, noteID, req.UserID); err != nil {
			log.Printf("error unstarring note %d: %v", noteID, err)
			return nil, apperr.Store(err)
		}
	}

	count, err := s.repo.CountStarsFor(ctx, noteID)
	if err != nil {
		log.Printf("error recounting stars for note %d: %v", noteID, err)
		return nil, apperr.Store(err)
	}

	return &ToggleStarResult{NoteID: noteID, Starred: starred, StarsCount: count}, nil
}

// Delete checks the admin credential and removes the note. The credential
// check comes before id parsing, matching the route's historical behavior.
// Deleting an id that never existed still reports success.
func (s *Service) Delete(ctx context.Context, rawID string, cred auth.Credential) (int64, error) {
	if strings.TrimSpace(rawID) == "" {
		return 0, apperr.InvalidArgument("bad id")
	}

	if !cred.Matches(s.adminSecret) {
		return 0, apperr.Forbidden("forbidden")
	}

	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil {
		return 0, apperr.InvalidArgument("bad id")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Printf("error deleting note %d: %v", id, err)
		return 0, apperr.Store(err)
	}

	return id, nil
}
