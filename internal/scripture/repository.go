package scripture

import (
	"context"
	"database/sql"
	"time"

	"github.com/linchiayu/bible-notes-api/internal/database"
)

// Repository reads the immutable reference tables. Nothing in this package
// mutates them; the seeder owns provisioning.
type Repository interface {
	ListBooks(ctx context.Context) ([]Book, error)
	ListChapters(ctx context.Context, bookID *int) ([]Chapter, error)
	ListVerses(ctx context.Context, bookID, chapterNumber int) ([]Verse, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(dbService database.Service) Repository {
	return &repository{db: dbService.DB()}
}

func (r *repository) ListBooks(ctx context.Context) ([]Book, error) {
	query := `
		SELECT id, name_zh, name_en, order_index
		FROM books
		ORDER BY order_index ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.NameZH, &b.NameEN, &b.OrderIndex); err != nil {
			return nil, err
		}
		books = append(books, b)
	}

	return books, rows.Err()
}

func (r *repository) ListChapters(ctx context.Context, bookID *int) ([]Chapter, error) {
	query := `
		SELECT id, book_id, chapter_number
		FROM chapters
		WHERE ($1::int IS NULL OR book_id = $1)
		ORDER BY book_id ASC, chapter_number ASC
	`

	rows, err := r.db.QueryContext(ctx, query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chapters []Chapter
	for rows.Next() {
		var c Chapter
		if err := rows.Scan(&c.ID, &c.BookID, &c.ChapterNumber); err != nil {
			return nil, err
		}
		chapters = append(chapters, c)
	}

	return chapters, rows.Err()
}

func (r *repository) ListVerses(ctx context.Context, bookID, chapterNumber int) ([]Verse, error) {
	query := `
		SELECT id, book_id, chapter_number, verse_number, text_zh, text_en, created_at
		FROM verses
		WHERE book_id = $1 AND chapter_number = $2
		ORDER BY verse_number ASC
	`

	rows, err := r.db.QueryContext(ctx, query, bookID, chapterNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var verses []Verse
	for rows.Next() {
		var v Verse
		var createdAt time.Time
		if err := rows.Scan(&v.ID, &v.BookID, &v.ChapterNumber, &v.VerseNumber, &v.TextZH, &v.TextEN, &createdAt); err != nil {
			return nil, err
		}
		v.CreatedAt = createdAt.UTC().Format("2006-01-02T15:04:05.999999-07:00")
		verses = append(verses, v)
	}

	return verses, rows.Err()
}
