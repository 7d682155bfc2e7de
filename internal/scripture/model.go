package scripture

type Book struct {
	ID         int    `json:"id"`
	NameZH     string `json:"name_zh"`
	NameEN     string `json:"name_en"`
	OrderIndex int    `json:"order_index"`
}

type Chapter struct {
	ID            int `json:"id"`
	BookID        int `json:"book_id"`
	ChapterNumber int `json:"chapter_number"`
}

type Verse struct {
	ID            int     `json:"id"`
	BookID        int     `json:"book_id"`
	ChapterNumber int     `json:"chapter_number"`
	VerseNumber   int     `json:"verse_number"`
	TextZH        *string `json:"text_zh"`
	TextEN        *string `json:"text_en"`
	CreatedAt     string  `json:"created_at"`
}
