package db

import (
	"database/sql"
	"log"

	"lostfound/models"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

const createTables = `
CREATE TABLE IF NOT EXISTS items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	type TEXT NOT NULL,
	title TEXT NOT NULL,
	location TEXT NOT NULL,
	status TEXT NOT NULL,
	description TEXT,
	image TEXT
);
`

func InitDB(dataSourceName string) {
	var err error
	DB, err = sql.Open("sqlite3", dataSourceName)
	if err != nil {
		log.Fatal(err)
	}

	_, err = DB.Exec(createTables)
	if err != nil {
		log.Fatalf("Error creating tables: %v", err)
	}

	// Seed two example items on first run
	var count int
	err = DB.QueryRow("SELECT COUNT(*) FROM items").Scan(&count)
	if err != nil {
		log.Fatalf("Error checking for seed items: %v", err)
	}

	if count == 0 {
		seed := []models.Item{
			{Type: models.TypeLost, Title: "Student ID Card", Location: "Building A", Status: models.StatusPending, Description: "Blue ID card with photo"},
			{Type: models.TypeFound, Title: "AirPods Case", Location: "Cafeteria", Status: models.StatusPending, Description: "White case with small scratch"},
		}
		for _, item := range seed {
			_, err = DB.Exec("INSERT INTO items (type, title, location, status, description, image) VALUES (?, ?, ?, ?, ?, NULL)",
				item.Type, item.Title, item.Location, item.Status, item.Description)
			if err != nil {
				log.Fatalf("Error seeding items: %v", err)
			}
		}
	}
}

// ListItems returns all items ordered by ascending id. A non-empty term
// filters on title or description as a case-insensitive substring. The term
// is always bound as a parameter, never spliced into the query text.
func ListItems(term string) ([]models.Item, error) {
	var rows *sql.Rows
	var err error

	if term != "" {
		pattern := "%" + term + "%"
		rows, err = DB.Query("SELECT id, type, title, location, status, description, image FROM items WHERE title LIKE ? OR description LIKE ? ORDER BY id",
			pattern, pattern)
	} else {
		rows, err = DB.Query("SELECT id, type, title, location, status, description, image FROM items ORDER BY id")
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		var description, image sql.NullString
		if err := rows.Scan(&item.ID, &item.Type, &item.Title, &item.Location, &item.Status, &description, &image); err != nil {
			return nil, err
		}
		item.Description = description.String
		item.Image = image.String
		items = append(items, item)
	}
	return items, rows.Err()
}

// InsertItem persists a new item and returns it with its assigned id.
func InsertItem(item models.Item) (models.Item, error) {
	var image any
	if item.Image != "" {
		image = item.Image
	}
	result, err := DB.Exec("INSERT INTO items (type, title, location, status, description, image) VALUES (?, ?, ?, ?, ?, ?)",
		item.Type, item.Title, item.Location, item.Status, item.Description, image)
	if err != nil {
		return models.Item{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Item{}, err
	}
	item.ID = int(id)
	return item, nil
}

// CountItems returns the total number of item rows.
func CountItems() (int, error) {
	var count int
	err := DB.QueryRow("SELECT COUNT(*) FROM items").Scan(&count)
	return count, err
}
