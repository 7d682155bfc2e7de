package notes

import (
	"context"
	"database/sql"
	"time"

	"github.com/linchiayu/bible-notes-api/internal/database"
)

// Repository is the store surface for notes and their star relation. All
// derived values (counts, starred sets) are recomputed from rows on demand.
type Repository interface {
	ListByChapter(ctx context.Context, bookID, chapterNumber int64) ([]Note, error)
	Insert(ctx context.Context, bookID, chapterNumber, verseNumber int64, content string) (*Note, error)
	Exists(ctx context.Context, noteID int64) (bool, error)
	Delete(ctx context.Context, noteID int64) error

	// CountStars returns a note id → star count map for the given ids.
	// Ids with no stars are absent from the map.
	CountStars(ctx context.Context, noteIDs []int64) (map[int64]int, error)
	// StarredBy returns the subset of noteIDs the viewer has starred.
	StarredBy(ctx context.Context, noteIDs []int64, viewerID string) (map[int64]bool, error)
	// AddStar inserts the (note, viewer) row and reports whether a row was
	// actually inserted. ON CONFLICT DO NOTHING makes the check-then-act
	// race a non-issue: a concurrent duplicate insert reports false.
	AddStar(ctx context.Context, noteID int64, viewerID string) (bool, error)
	RemoveStar(ctx context.Context, noteID int64, viewerID string) error
	CountStarsFor(ctx context.Context, noteID int64) (int, error)
}

type repository struct {
	db *sql.DB
}

// NewRepository wires the privileged pool: note writes and deletes need the
// service-tier credentials.
func NewRepository(dbService database.Service) Repository {
	return &repository{db: dbService.AdminDB()}
}

func (r *repository) ListByChapter(ctx context.Context, bookID, chapterNumber int64) ([]Note, error) {
	query := `
		SELECT id, book_id, chapter_number, verse_number, content, created_at
		FROM notes
		WHERE book_id = $1 AND chapter_number = $2
	`

	rows, err := r.db.QueryContext(ctx, query, bookID, chapterNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Note
	for rows.Next() {
		var n Note
		var createdAt time.Time
		if err := rows.Scan(&n.ID, &n.BookID, &n.ChapterNumber, &n.VerseNumber, &n.Content, &createdAt); err != nil {
			return nil, err
		}
		n.CreatedAt = formatTimestamp(createdAt)
		out = append(out, n)
	}

	return out, rows.Err()
}

func (r *repository) Insert(ctx context.Context, bookID, chapterNumber, verseNumber int64, content string) (*Note, error) {
	query := `
		INSERT INTO notes (book_id, chapter_number, verse_number, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, book_id, chapter_number, verse_number, content, created_at
	`

	var n Note
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, bookID, chapterNumber, verseNumber, content).Scan(
		&n.ID,
		&n.BookID,
		&n.ChapterNumber,
		&n.VerseNumber,
		&n.Content,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	n.CreatedAt = formatTimestamp(createdAt)
	return &n, nil
}

func (r *repository) Exists(ctx context.Context, noteID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM notes WHERE id = $1
		)
	`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, noteID).Scan(&exists)
	return exists, err
}

// Delete removes the note row. Deleting an id that does not exist is not an
// error: the route reports success either way (idempotent delete).
func (r *repository) Delete(ctx context.Context, noteID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, noteID)
	return err
}

func (r *repository) CountStars(ctx context.Context, noteIDs []int64) (map[int64]int, error) {
	query := `
		SELECT note_id, COUNT(*)
		FROM note_stars
		WHERE note_id = ANY($1)
		GROUP BY note_id
	`

	rows, err := r.db.QueryContext(ctx, query, noteIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var id int64
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, err
		}
		counts[id] = count
	}

	return counts, rows.Err()
}

func (r *repository) StarredBy(ctx context.Context, noteIDs []int64, viewerID string) (map[int64]bool, error) {
	query := `
		SELECT note_id
		FROM note_stars
		WHERE note_id = ANY($1) AND user_id = $2
	`

	rows, err := r.db.QueryContext(ctx, query, noteIDs, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	starred := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		starred[id] = true
	}

	return starred, rows.Err()
}

func (r *repository) AddStar(ctx context.Context, noteID int64, viewerID string) (bool, error) {
	query := `
		INSERT INTO note_stars (note_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (note_id, user_id) DO NOTHING
	`

	res, err := r.db.ExecContext(ctx, query, noteID, viewerID)
	if err != nil {
		return false, err
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return inserted == 1, nil
}

func (r *repository) RemoveStar(ctx context.Context, noteID int64, viewerID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM note_stars WHERE note_id = $1 AND user_id = $2
	`, noteID, viewerID)
	return err
}

func (r *repository) CountStarsFor(ctx context.Context, noteID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM note_stars WHERE note_id = $1
	`, noteID).Scan(&count)
	return count, err
}

// formatTimestamp renders timestamps the way the hosted store did: UTC
// ISO-8601 with trailing-zero-trimmed fractional seconds. List ordering
// relies on these strings comparing lexically.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.999999-07:00")
}
