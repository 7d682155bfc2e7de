// Command seed applies schema.sql and loads a small bilingual sample of
// reference data so the API has something to serve locally.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"time"

	"github.com/linchiayu/bible-notes-api/internal/database"
	"github.com/linchiayu/bible-notes-api/pkg/config"
)

type seedVerse struct {
	number int
	zh     string
	en     string
}

var genesis1 = []seedVerse{
	{1, "起初，神創造天地。", "In the beginning God created the heavens and the earth."},
	{2, "地是空虛混沌，淵面黑暗；神的靈運行在水面上。", "Now the earth was formless and empty, darkness was over the surface of the deep, and the Spirit of God was hovering over the waters."},
	{3, "神說：「要有光」，就有了光。", "And God said, \"Let there be light,\" and there was light."},
}

var john1 = []seedVerse{
	{1, "太初有道，道與神同在，道就是神。", "In the beginning was the Word, and the Word was with God, and the Word was God."},
	{2, "這道太初與神同在。", "He was with God in the beginning."},
}

func main() {
	schemaPath := flag.String("schema", "schema.sql", "path to the schema file")
	flag.Parse()

	cfg := config.LoadConfig()
	db := database.New(cfg)
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	schema, err := os.ReadFile(*schemaPath)
	if err != nil {
		log.Fatalf("read schema: %v", err)
	}
	if _, err := db.AdminDB().ExecContext(ctx, string(schema)); err != nil {
		log.Fatalf("apply schema: %v", err)
	}
	log.Println("Schema applied")

	if err := seed(ctx, db.AdminDB()); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Println("Seed data loaded")
}

func seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM books`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		log.Println("Books already present, skipping seed")
		return nil
	}

	books := []struct {
		nameZH, nameEN string
		order          int
		verses         []seedVerse
	}{
		{"創世記", "Genesis", 1, genesis1},
		{"約翰福音", "John", 43, john1},
	}

	for _, b := range books {
		var bookID int64
		err := db.QueryRowContext(ctx, `
			INSERT INTO books (name_zh, name_en, order_index)
			VALUES ($1, $2, $3)
			RETURNING id
		`, b.nameZH, b.nameEN, b.order).Scan(&bookID)
		if err != nil {
			return err
		}

		if _, err := db.ExecContext(ctx, `
			INSERT INTO chapters (book_id, chapter_number) VALUES ($1, 1)
		`, bookID); err != nil {
			return err
		}

		for _, v := range b.verses {
			if _, err := db.ExecContext(ctx, `
				INSERT INTO verses (book_id, chapter_number, verse_number, text_zh, text_en)
				VALUES ($1, 1, $2, $3, $4)
			`, bookID, v.number, v.zh, v.en); err != nil {
				return err
			}
		}

		log.Printf("Seeded %s with %d verses", b.nameEN, len(b.verses))
	}

	return nil
}
