package repository

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/aaravsharma17/cloudbin/internal/pkg/config"
)

var db *sql.DB

// InitDB opens the database, creates the schema and runs first-run
// bootstrap (voucher seed, admin account)
func InitDB(dbPath string) error {
	// Ensure data directory exists
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	// Enable foreign key constraints and give concurrent writers a
	// chance to queue instead of failing immediately
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := createTables(); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if err := seedVouchers(); err != nil {
		return fmt.Errorf("failed to seed vouchers: %w", err)
	}

	if err := initializeAdminAccount(); err != nil {
		return fmt.Errorf("failed to initialize admin account: %w", err)
	}

	zap.L().Info("Database initialized successfully",
		zap.String("path", dbPath))

	return nil
}

// GetDB returns the database instance
func GetDB() *sql.DB {
	return db
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}

// createTables creates all tables if they don't exist
func createTables() error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user' CHECK (role IN ('user', 'admin')),
			coins INTEGER NOT NULL DEFAULT 0 CHECK (coins >= 0),
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_accounts_username ON accounts(username)`,

		`CREATE TABLE IF NOT EXISTS waste_requests (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			account_id INTEGER NOT NULL,
			waste_type TEXT NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			location TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected')),
			coins_awarded INTEGER NOT NULL,
			submitted_at TEXT NOT NULL,
			FOREIGN KEY (account_id) REFERENCES accounts(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_waste_requests_account_id ON waste_requests(account_id)`,
		`CREATE INDEX IF NOT EXISTS idx_waste_requests_status ON waste_requests(status)`,

		`CREATE TABLE IF NOT EXISTS vouchers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT,
			coins_required INTEGER NOT NULL CHECK (coins_required > 0),
			code TEXT NOT NULL,
			stock INTEGER NOT NULL DEFAULT 10 CHECK (stock >= 0)
		)`,
	}

	for _, table := range tables {
		if _, err := db.Exec(table); err != nil {
			return fmt.Errorf("failed to execute SQL: %s, error: %w", table, err)
		}
	}

	return nil
}

// seedVouchers inserts the starter catalog when the table is empty
func seedVouchers() error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM vouchers`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []struct {
		name, description, code string
		coins                   int
	}{
		{"Amazon ₹100", "₹100 Amazon Gift Card", "AMAZON100", 100},
		{"Amazon ₹250", "₹250 Amazon Gift Card", "AMAZON250", 250},
		{"Amazon ₹500", "₹500 Amazon Gift Card", "AMAZON500", 500},
	}

	for _, v := range seed {
		_, err := db.Exec(
			`INSERT INTO vouchers (name, description, coins_required, code) VALUES (?, ?, ?, ?)`,
			v.name, v.description, v.coins, v.code,
		)
		if err != nil {
			return err
		}
	}

	zap.L().Info("Seeded voucher catalog", zap.Int("vouchers", len(seed)))
	return nil
}

// initializeAdminAccount creates the admin account on first run. The
// credentials come from configuration; with no admin configured and no
// admin row present the application refuses to start.
func initializeAdminAccount() error {
	var exists int
	err := db.QueryRow(`SELECT 1 FROM accounts WHERE role = 'admin' LIMIT 1`).Scan(&exists)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check for admin account: %w", err)
	}

	cfg := config.Get()
	if cfg == nil || cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		return fmt.Errorf("no admin account exists and admin.username/admin.password are not configured")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	email := cfg.Admin.Email
	if email == "" {
		email = cfg.Admin.Username + "@cloudbin.local"
	}

	now := time.Now().Format(time.RFC3339)
	_, err = db.Exec(
		`INSERT INTO accounts (username, email, password_hash, role, coins, created_at) VALUES (?, ?, ?, 'admin', 0, ?)`,
		cfg.Admin.Username, email, string(hash), now,
	)
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	zap.L().Info("Admin account created", zap.String("username", cfg.Admin.Username))
	return nil
}

// WithTx executes a function within a transaction
func WithTx(fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	err = fn(tx)
	return err
}
