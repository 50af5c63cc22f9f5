// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/dividircl/backend/internal/models"
	"github.com/dividircl/backend/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateReceipt persists a new receipt to the database.
func (s *SQLiteStore) CreateReceipt(ctx context.Context, receipt *models.Receipt) error {
	if receipt.ID == "" {
		receipt.ID = uuid.New().String()
	}
	if receipt.CreatedAt == 0 {
		receipt.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO receipts (id, user_email, place_name, tip_percent, created_at) VALUES (?, ?, ?, ?, ?)",
		receipt.ID, receipt.UserEmail, receipt.PlaceName, receipt.TipPercent, receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert receipt: %w", err)
	}

	if err := insertReceiptRows(ctx, tx, receipt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// insertReceiptRows writes the receipt's people, items and owner lists.
// Positions record insertion order so display order and duplicate owners
// survive round-trips.
func insertReceiptRows(ctx context.Context, tx *sql.Tx, receipt *models.Receipt) error {
	for pos, name := range receipt.People {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO receipt_people (receipt_id, position, name) VALUES (?, ?, ?)",
			receipt.ID, pos, name,
		)
		if err != nil {
			return fmt.Errorf("failed to insert person: %w", err)
		}
	}

	for pos := range receipt.Items {
		item := &receipt.Items[pos]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}

		_, err := tx.ExecContext(ctx,
			"INSERT INTO items (id, receipt_id, position, name, quantity, unit_price) VALUES (?, ?, ?, ?, ?, ?)",
			item.ID, receipt.ID, pos, item.Name, item.Quantity, item.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("failed to insert item: %w", err)
		}

		for ownerPos, owner := range item.Owners {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO item_owners (item_id, position, name) VALUES (?, ?, ?)",
				item.ID, ownerPos, owner,
			)
			if err != nil {
				return fmt.Errorf("failed to insert item owner: %w", err)
			}
		}
	}
	return nil
}

// GetReceipt retrieves a receipt by ID, including all items and people.
func (s *SQLiteStore) GetReceipt(ctx context.Context, receiptID string) (*models.Receipt, error) {
	receipt := &models.Receipt{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, user_email, place_name, tip_percent, created_at FROM receipts WHERE id = ?",
		receiptID,
	).Scan(&receipt.ID, &receipt.UserEmail, &receipt.PlaceName, &receipt.TipPercent, &receipt.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("receipt %s: %w", receiptID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	if err := s.loadReceiptRows(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// loadReceiptRows fills the receipt's people and items, preserving stored
// order.
func (s *SQLiteStore) loadReceiptRows(ctx context.Context, receipt *models.Receipt) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM receipt_people WHERE receipt_id = ? ORDER BY position",
		receipt.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get people: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("failed to scan person: %w", err)
		}
		receipt.People = append(receipt.People, name)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate people: %w", err)
	}

	itemRows, err := s.db.QueryContext(ctx,
		"SELECT id, name, quantity, unit_price FROM items WHERE receipt_id = ? ORDER BY position",
		receipt.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item models.Item
		if err := itemRows.Scan(&item.ID, &item.Name, &item.Quantity, &item.UnitPrice); err != nil {
			return fmt.Errorf("failed to scan item: %w", err)
		}

		ownerRows, err := s.db.QueryContext(ctx,
			"SELECT name FROM item_owners WHERE item_id = ? ORDER BY position",
			item.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to get item owners: %w", err)
		}

		for ownerRows.Next() {
			var owner string
			if err := ownerRows.Scan(&owner); err != nil {
				ownerRows.Close()
				return fmt.Errorf("failed to scan owner: %w", err)
			}
			item.Owners = append(item.Owners, owner)
		}
		ownerRows.Close()
		if err := ownerRows.Err(); err != nil {
			return fmt.Errorf("failed to iterate owners: %w", err)
		}

		receipt.Items = append(receipt.Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate items: %w", err)
	}

	return nil
}

// ListReceiptsByUser retrieves all receipts owned by the email, newest first.
func (s *SQLiteStore) ListReceiptsByUser(ctx context.Context, userEmail string) ([]*models.Receipt, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_email, place_name, tip_percent, created_at FROM receipts WHERE user_email = ? ORDER BY created_at DESC, id",
		userEmail,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer rows.Close()

	var receipts []*models.Receipt
	for rows.Next() {
		receipt := &models.Receipt{}
		if err := rows.Scan(&receipt.ID, &receipt.UserEmail, &receipt.PlaceName, &receipt.TipPercent, &receipt.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		receipts = append(receipts, receipt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipts: %w", err)
	}

	for _, receipt := range receipts {
		if err := s.loadReceiptRows(ctx, receipt); err != nil {
			return nil, err
		}
	}
	return receipts, nil
}

// UpdateReceipt replaces a receipt's contents. Items and people are
// rewritten wholesale: edits arrive as full documents, not deltas.
func (s *SQLiteStore) UpdateReceipt(ctx context.Context, receipt *models.Receipt) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"UPDATE receipts SET place_name = ?, tip_percent = ? WHERE id = ?",
		receipt.PlaceName, receipt.TipPercent, receipt.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update receipt: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("receipt %s: %w", receipt.ID, storage.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM receipt_people WHERE receipt_id = ?", receipt.ID); err != nil {
		return fmt.Errorf("failed to clear people: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM items WHERE receipt_id = ?", receipt.ID); err != nil {
		return fmt.Errorf("failed to clear items: %w", err)
	}

	if err := insertReceiptRows(ctx, tx, receipt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteReceipt removes a receipt; items, owners and people cascade.
func (s *SQLiteStore) DeleteReceipt(ctx context.Context, receiptID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM receipts WHERE id = ?", receiptID)
	if err != nil {
		return fmt.Errorf("failed to delete receipt: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("receipt %s: %w", receiptID, storage.ErrNotFound)
	}
	return nil
}
