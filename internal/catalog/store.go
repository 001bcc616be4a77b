// Package catalog is the sqlite-backed merchant catalog behind the
// dashboard: products, categories, orders, affiliate balances and
// testimonials, exposed as generic rows for the table component.
package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/Maishelbayeh/BringUs-sub000/datatable"
)

type Store struct {
	db   *sql.DB
	path string
}

func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("catalog: empty store path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, path: path}, nil
}

func migrate(db *sql.DB) error {
	statements := []string{
		`PRAGMA journal_mode=WAL;`,
		`CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY,
			name_en TEXT NOT NULL,
			name_ar TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			price REAL NOT NULL DEFAULT 0,
			stock INTEGER NOT NULL DEFAULT 0,
			category TEXT NOT NULL DEFAULT '',
			colors TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'Active',
			updated TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY,
			name_en TEXT NOT NULL,
			name_ar TEXT NOT NULL DEFAULT '',
			slug TEXT NOT NULL DEFAULT '',
			products INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'Active',
			sort_order INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS orders (
			id INTEGER PRIMARY KEY,
			number TEXT NOT NULL,
			customer TEXT NOT NULL DEFAULT '',
			date TEXT NOT NULL DEFAULT '',
			items INTEGER NOT NULL DEFAULT 0,
			total REAL NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'Unpaid',
			notes TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS affiliates (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			balance REAL NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'Unpaid',
			last_payment TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS testimonials (
			id INTEGER PRIMARY KEY,
			author TEXT NOT NULL,
			quote TEXT NOT NULL DEFAULT '',
			rating INTEGER NOT NULL DEFAULT 5,
			status TEXT NOT NULL DEFAULT 'Active',
			date TEXT NOT NULL DEFAULT ''
		);`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("catalog migration failed: %w", err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Products() ([]datatable.Row, error) {
	rows, err := s.db.Query(`SELECT id, name_en, name_ar, image, price, stock, category, colors, status, updated, description
		FROM products ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []datatable.Row
	for rows.Next() {
		var (
			id          int64
			nameEn      string
			nameAr      string
			image       string
			price       float64
			stock       int64
			category    string
			colors      string
			status      string
			updated     string
			description string
		)
		if err := rows.Scan(&id, &nameEn, &nameAr, &image, &price, &stock, &category, &colors, &status, &updated, &description); err != nil {
			return nil, err
		}
		out = append(out, datatable.Row{
			"id":          id,
			"name":        nameEn,
			"nameAr":      nameAr,
			"image":       image,
			"price":       price,
			"stock":       stock,
			"category":    category,
			"colors":      splitColors(colors),
			"status":      status,
			"updated":     updated,
			"description": description,
		})
	}
	return out, rows.Err()
}

// splitColors unpacks the comma-joined hex list stored in the colors
// column into the slice the color cell renderer expects.
func splitColors(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (s *Store) Categories() ([]datatable.Row, error) {
	rows, err := s.db.Query(`SELECT id, name_en, name_ar, slug, products, status, sort_order
		FROM categories ORDER BY sort_order ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []datatable.Row
	for rows.Next() {
		var (
			id        int64
			nameEn    string
			nameAr    string
			slug      string
			products  int64
			status    string
			sortOrder int64
		)
		if err := rows.Scan(&id, &nameEn, &nameAr, &slug, &products, &status, &sortOrder); err != nil {
			return nil, err
		}
		out = append(out, datatable.Row{
			"id":       id,
			"name":     nameEn,
			"nameAr":   nameAr,
			"slug":     slug,
			"products": products,
			"status":   status,
			"order":    sortOrder,
		})
	}
	return out, rows.Err()
}

func (s *Store) Orders() ([]datatable.Row, error) {
	rows, err := s.db.Query(`SELECT id, number, customer, date, items, total, status, notes
		FROM orders ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []datatable.Row
	for rows.Next() {
		var (
			id       int64
			number   string
			customer string
			date     string
			items    int64
			total    float64
			status   string
			notes    string
		)
		if err := rows.Scan(&id, &number, &customer, &date, &items, &total, &status, &notes); err != nil {
			return nil, err
		}
		out = append(out, datatable.Row{
			"id":       id,
			"number":   number,
			"customer": customer,
			"date":     date,
			"items":    items,
			"total":    total,
			"status":   status,
			"notes":    notes,
		})
	}
	return out, rows.Err()
}

func (s *Store) Affiliates() ([]datatable.Row, error) {
	rows, err := s.db.Query(`SELECT id, name, email, balance, status, last_payment
		FROM affiliates ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []datatable.Row
	for rows.Next() {
		var (
			id          int64
			name        string
			email       string
			balance     float64
			status      string
			lastPayment string
		)
		if err := rows.Scan(&id, &name, &email, &balance, &status, &lastPayment); err != nil {
			return nil, err
		}
		out = append(out, datatable.Row{
			"id":          id,
			"name":        name,
			"email":       email,
			"balance":     balance,
			"status":      status,
			"lastPayment": lastPayment,
		})
	}
	return out, rows.Err()
}

func (s *Store) Testimonials() ([]datatable.Row, error) {
	rows, err := s.db.Query(`SELECT id, author, quote, rating, status, date
		FROM testimonials ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []datatable.Row
	for rows.Next() {
		var (
			id     int64
			author string
			quote  string
			rating int64
			status string
			date   string
		)
		if err := rows.Scan(&id, &author, &quote, &rating, &status, &date); err != nil {
			return nil, err
		}
		out = append(out, datatable.Row{
			"id":     id,
			"author": author,
			"quote":  quote,
			"rating": rating,
			"status": status,
			"date":   date,
		})
	}
	return out, rows.Err()
}

// Kinds lists the record kinds a store holds; each maps onto one table
// and one dashboard screen.
var Kinds = []string{"products", "categories", "orders", "affiliates", "testimonials"}

func tableFor(kind string) (string, error) {
	for _, k := range Kinds {
		if k == kind {
			return k, nil
		}
	}
	return "", fmt.Errorf("catalog: unknown kind %q", kind)
}

// SetStatus flips the status field of one record; the dashboard's
// quick-edit action.
func (s *Store) SetStatus(kind string, id int64, status string) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`UPDATE `+table+` SET status = ? WHERE id = ?`, status, id)
	return err
}

func (s *Store) Delete(kind string, id int64) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`DELETE FROM `+table+` WHERE id = ?`, id)
	return err
}

// Counts reports record counts per kind, for the seeding tool's
// summary output.
func (s *Store) Counts() (map[string]int, error) {
	out := make(map[string]int, len(Kinds))
	for _, kind := range Kinds {
		var n int
		if err := s.db.QueryRow(`SELECT COUNT(*) FROM ` + kind).Scan(&n); err != nil {
			return nil, err
		}
		out[kind] = n
	}
	return out, nil
}

// SeedIfEmpty loads the demo merchant catalog on first run so every
// screen has data to browse.
func (s *Store) SeedIfEmpty() error {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return s.Reseed()
}

// Reseed wipes and reloads the demo data inside one transaction.
func (s *Store) Reseed() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for _, kind := range Kinds {
		if _, err := tx.Exec(`DELETE FROM ` + kind); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	for _, stmt := range seedStatements {
		if _, err := tx.Exec(stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("catalog seed failed: %w", err)
		}
	}
	return tx.Commit()
}

var seedStatements = []string{
	`INSERT INTO products (name_en, name_ar, image, price, stock, category, colors, status, updated, description) VALUES
		('Cotton T-Shirt', 'قميص قطني', 'https://cdn.bringus.shop/p/tshirt.png', 59.0, 8, 'Clothing', '#1e90ff,#ffffff', 'Active', '2025-05-02', 'Soft **cotton** tee available in two colorways.'),
		('Ceramic Mug', 'كوب سيراميك', 'https://cdn.bringus.shop/p/mug.png', 35.0, 42, 'Kitchen', '#d2691e', 'Active', '2025-05-15', 'Hand-glazed mug, *dishwasher safe*.'),
		('Leather Wallet', 'محفظة جلدية', 'https://cdn.bringus.shop/p/wallet.png', 120.0, 3, 'Accessories', '#8b4513,#000000,#c0c0c0', 'Inactive', '2025-04-28', 'Full-grain leather, six card slots.'),
		('Desk Lamp', 'مصباح مكتب', 'https://cdn.bringus.shop/p/lamp.png', 89.5, 66, 'Home', '#ffd700', 'Active', '2025-06-01', 'Adjustable arm with a warm LED.'),
		('Canvas Tote', 'حقيبة قماشية', 'https://cdn.bringus.shop/p/tote.png', 25.0, 150, 'Accessories', '#f5f5dc,#228b22', 'Active', '2025-05-20', 'Carries up to 12kg of groceries.');`,
	`INSERT INTO categories (name_en, name_ar, slug, products, status, sort_order) VALUES
		('Clothing', 'ملابس', 'clothing', 14, 'Active', 1),
		('Kitchen', 'مطبخ', 'kitchen', 9, 'Active', 2),
		('Accessories', 'إكسسوارات', 'accessories', 22, 'Active', 3),
		('Home', 'منزل', 'home', 11, 'Inactive', 4);`,
	`INSERT INTO orders (number, customer, date, items, total, status, notes) VALUES
		('ORD-1041', 'Ahmed Ali', '2025-05-15', 3, 214.0, 'Paid', 'Gift wrap requested.'),
		('ORD-1042', 'Sara Haddad', '2025-05-18', 1, 59.0, 'Unpaid', ''),
		('ORD-1043', 'Omar Khalil', '2025-05-21', 5, 402.5, 'Paid', 'Deliver after 5pm.'),
		('ORD-1044', 'Lina Nasser', '2025-06-01', 2, 145.0, 'Unpaid', 'Second reminder sent.'),
		('ORD-1045', 'Yousef Salem', '2025-06-03', 1, 35.0, 'Paid', '');`,
	`INSERT INTO affiliates (name, email, balance, status, last_payment) VALUES
		('Rania K.', 'rania@example.com', 320.0, 'Unpaid', '2025-04-30'),
		('Majed T.', 'majed@example.com', 75.5, 'Paid', '2025-05-31'),
		('Dana S.', 'dana@example.com', 0.0, 'Paid', '2025-05-31');`,
	`INSERT INTO testimonials (author, quote, rating, status, date) VALUES
		('Huda', 'Fast delivery and lovely packaging.', 5, 'Active', '2025-05-10'),
		('Karim', 'The mug survived my office. Twice.', 4, 'Active', '2025-05-22'),
		('Noor', 'Sizing runs a little small.', 3, 'Inactive', '2025-05-25');`,
}
