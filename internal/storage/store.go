// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/dividircl/backend/internal/models"
)

// ErrNotFound is wrapped by store implementations when the requested receipt
// or user does not exist, so callers can map it to a not-found response.
var ErrNotFound = errors.New("not found")

// Store defines the interface for receipt and user storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
type Store interface {
	// CreateReceipt persists a new receipt. The receipt's ID and CreatedAt
	// fields are populated by the store when empty.
	CreateReceipt(ctx context.Context, receipt *models.Receipt) error

	// GetReceipt retrieves a receipt by ID, with people in display order,
	// items in receipt order and owner sets exactly as stored (duplicates
	// included).
	GetReceipt(ctx context.Context, receiptID string) (*models.Receipt, error)

	// ListReceiptsByUser retrieves all receipts owned by the given email,
	// newest first.
	ListReceiptsByUser(ctx context.Context, userEmail string) ([]*models.Receipt, error)

	// UpdateReceipt replaces an existing receipt's contents.
	// Returns an error if the receipt is not found.
	UpdateReceipt(ctx context.Context, receipt *models.Receipt) error

	// DeleteReceipt removes a receipt and its items.
	DeleteReceipt(ctx context.Context, receiptID string) error

	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Close releases any resources held by the store.
	Close() error
}
