package notes

// Note is one annotation attached to a verse. Notes are created and deleted,
// never updated in place.
//
// CreatedAt stays a raw ISO-8601 string from the store outward: the list
// ordering tie-break is a lexical comparison of this string, not a parsed
// time comparison.
type Note struct {
	ID            int64  `json:"id"`
	BookID        int64  `json:"book_id"`
	ChapterNumber int64  `json:"chapter_number"`
	VerseNumber   int64  `json:"verse_number"`
	Content       string `json:"content"`
	CreatedAt     string `json:"created_at"`
}

// NoteWithStars is the list-notes output row: the note plus values derived
// from the note_stars relation on every request.
type NoteWithStars struct {
	Note
	StarsCount  int  `json:"stars_count"`
	StarredByMe bool `json:"starred_by_me"`
}

// CreateNoteRequest is the POST /notes body. Numeric fields are pointers so
// a missing field is told apart from zero.
type CreateNoteRequest struct {
	BookID        *int64 `json:"bookId" validate:"required"`
	ChapterNumber *int64 `json:"chapterNumber" validate:"required"`
	VerseNumber   *int64 `json:"verseNumber" validate:"required"`
	Content       string `json:"content"`
}

// ToggleStarRequest is the POST /notes/{id}/star body.
type ToggleStarRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// ToggleStarResult reports the state after a toggle. StarsCount is recounted
// from the relation after the mutation, never cached.
type ToggleStarResult struct {
	NoteID     int64 `json:"noteId"`
	Starred    bool  `json:"starred"`
	StarsCount int   `json:"stars_count"`
}
