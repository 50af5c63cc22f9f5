package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dividircl/backend/internal/models"
	"github.com/dividircl/backend/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "dividir-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_Receipts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateReceipt generates IDs and timestamp", func(t *testing.T) {
		receipt := &models.Receipt{
			UserEmail:  "ana@example.com",
			PlaceName:  "Café Test",
			TipPercent: 0.10,
			People:     []string{"Ana", "Beto"},
			Items: []models.Item{
				{Name: "Pizza", Quantity: 2, UnitPrice: 1000, Owners: []string{"Ana", "Beto"}},
				{Name: "Jugo", Quantity: 1, UnitPrice: 500},
			},
		}

		if err := store.CreateReceipt(ctx, receipt); err != nil {
			t.Fatalf("CreateReceipt failed: %v", err)
		}

		if receipt.ID == "" {
			t.Error("Expected receipt ID to be generated")
		}
		if receipt.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
		for i, item := range receipt.Items {
			if item.ID == "" {
				t.Errorf("Expected item %d ID to be generated", i)
			}
		}
	})

	t.Run("GetReceipt preserves order and duplicate owners", func(t *testing.T) {
		original := &models.Receipt{
			UserEmail:  "ana@example.com",
			PlaceName:  "La Fuente",
			TipPercent: 0.10,
			// Deliberately not alphabetical: display order must survive.
			People: []string{"Zoe", "Ana", "Beto"},
			Items: []models.Item{
				{Name: "Lomito", Quantity: 1, UnitPrice: 8500, Owners: []string{"Zoe"}},
				// Duplicate owner is valid stored state.
				{Name: "Papas", Quantity: 1, UnitPrice: 4000, Owners: []string{"Ana", "Ana"}},
				{Name: "Bebida", Quantity: 3, UnitPrice: 1500},
			},
		}

		if err := store.CreateReceipt(ctx, original); err != nil {
			t.Fatalf("CreateReceipt failed: %v", err)
		}

		retrieved, err := store.GetReceipt(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetReceipt failed: %v", err)
		}

		if retrieved.PlaceName != original.PlaceName {
			t.Errorf("PlaceName = %q, want %q", retrieved.PlaceName, original.PlaceName)
		}
		if retrieved.TipPercent != original.TipPercent {
			t.Errorf("TipPercent = %v, want %v", retrieved.TipPercent, original.TipPercent)
		}
		if retrieved.UserEmail != original.UserEmail {
			t.Errorf("UserEmail = %q, want %q", retrieved.UserEmail, original.UserEmail)
		}

		if len(retrieved.People) != 3 {
			t.Fatalf("People = %v, want 3 entries", retrieved.People)
		}
		for i, want := range []string{"Zoe", "Ana", "Beto"} {
			if retrieved.People[i] != want {
				t.Errorf("People[%d] = %q, want %q", i, retrieved.People[i], want)
			}
		}

		if len(retrieved.Items) != 3 {
			t.Fatalf("Items = %d, want 3", len(retrieved.Items))
		}
		for i, want := range []string{"Lomito", "Papas", "Bebida"} {
			if retrieved.Items[i].Name != want {
				t.Errorf("Items[%d].Name = %q, want %q", i, retrieved.Items[i].Name, want)
			}
		}

		papas := retrieved.Items[1]
		if len(papas.Owners) != 2 || papas.Owners[0] != "Ana" || papas.Owners[1] != "Ana" {
			t.Errorf("duplicate owners lost in round-trip: %v", papas.Owners)
		}
		if len(retrieved.Items[2].Owners) != 0 {
			t.Errorf("unowned item came back with owners: %v", retrieved.Items[2].Owners)
		}
	})

	t.Run("GetReceipt returns error for nonexistent receipt", func(t *testing.T) {
		if _, err := store.GetReceipt(ctx, "nonexistent-id"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound for nonexistent receipt, got %v", err)
		}
	})

	t.Run("UpdateReceipt replaces contents", func(t *testing.T) {
		receipt := &models.Receipt{
			UserEmail:  "beto@example.com",
			PlaceName:  "Antes",
			TipPercent: 0.10,
			People:     []string{"Beto"},
			Items: []models.Item{
				{Name: "Café", Quantity: 1, UnitPrice: 2500, Owners: []string{"Beto"}},
			},
		}
		if err := store.CreateReceipt(ctx, receipt); err != nil {
			t.Fatalf("CreateReceipt failed: %v", err)
		}

		receipt.PlaceName = "Después"
		receipt.TipPercent = 0.15
		receipt.People = []string{"Beto", "Carla"}
		receipt.Items = []models.Item{
			{ID: receipt.Items[0].ID, Name: "Café doble", Quantity: 2, UnitPrice: 2500, Owners: []string{"Carla"}},
			{Name: "Torta", Quantity: 1, UnitPrice: 3800},
		}

		if err := store.UpdateReceipt(ctx, receipt); err != nil {
			t.Fatalf("UpdateReceipt failed: %v", err)
		}

		retrieved, err := store.GetReceipt(ctx, receipt.ID)
		if err != nil {
			t.Fatalf("GetReceipt failed: %v", err)
		}
		if retrieved.PlaceName != "Después" || retrieved.TipPercent != 0.15 {
			t.Errorf("receipt row not updated: %q %v", retrieved.PlaceName, retrieved.TipPercent)
		}
		if len(retrieved.People) != 2 || len(retrieved.Items) != 2 {
			t.Fatalf("contents not replaced: people=%v items=%d", retrieved.People, len(retrieved.Items))
		}
		if retrieved.Items[0].Name != "Café doble" || retrieved.Items[0].Owners[0] != "Carla" {
			t.Errorf("item update lost: %+v", retrieved.Items[0])
		}
	})

	t.Run("UpdateReceipt returns error for nonexistent receipt", func(t *testing.T) {
		receipt := &models.Receipt{ID: "nonexistent-id", PlaceName: "Nada"}
		if err := store.UpdateReceipt(ctx, receipt); err == nil {
			t.Error("Expected error for nonexistent receipt, got nil")
		}
	})

	t.Run("DeleteReceipt removes the receipt", func(t *testing.T) {
		receipt := &models.Receipt{
			UserEmail: "ana@example.com",
			PlaceName: "Efímero",
			People:    []string{"Ana"},
		}
		if err := store.CreateReceipt(ctx, receipt); err != nil {
			t.Fatalf("CreateReceipt failed: %v", err)
		}

		if err := store.DeleteReceipt(ctx, receipt.ID); err != nil {
			t.Fatalf("DeleteReceipt failed: %v", err)
		}
		if _, err := store.GetReceipt(ctx, receipt.ID); err == nil {
			t.Error("Expected deleted receipt to be gone")
		}
		if err := store.DeleteReceipt(ctx, receipt.ID); err == nil {
			t.Error("Expected error deleting twice")
		}
	})

	t.Run("ListReceiptsByUser scopes and orders", func(t *testing.T) {
		store := newTestStore(t)

		for i, place := range []string{"Uno", "Dos", "Tres"} {
			receipt := &models.Receipt{
				UserEmail: "carla@example.com",
				PlaceName: place,
				CreatedAt: int64(1700000000 + i),
				People:    []string{"Carla"},
			}
			if err := store.CreateReceipt(ctx, receipt); err != nil {
				t.Fatalf("CreateReceipt failed: %v", err)
			}
		}
		other := &models.Receipt{UserEmail: "otro@example.com", PlaceName: "Ajeno"}
		if err := store.CreateReceipt(ctx, other); err != nil {
			t.Fatalf("CreateReceipt failed: %v", err)
		}

		receipts, err := store.ListReceiptsByUser(ctx, "carla@example.com")
		if err != nil {
			t.Fatalf("ListReceiptsByUser failed: %v", err)
		}
		if len(receipts) != 3 {
			t.Fatalf("got %d receipts, want 3", len(receipts))
		}
		for i, want := range []string{"Tres", "Dos", "Uno"} {
			if receipts[i].PlaceName != want {
				t.Errorf("receipts[%d] = %q, want %q (newest first)", i, receipts[i].PlaceName, want)
			}
		}
		if len(receipts[0].People) != 1 {
			t.Error("listed receipts should include nested rows")
		}
	})
}

func TestSQLiteStore_Users(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := &models.User{
		Email:        "ana@example.com",
		DisplayName:  "Ana",
		PasswordHash: "bcrypt-hash",
	}
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.ID == "" || user.CreatedAt == 0 {
		t.Error("Expected ID and CreatedAt to be generated")
	}

	byEmail, err := store.GetUserByEmail(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if byEmail.ID != user.ID || byEmail.DisplayName != "Ana" {
		t.Errorf("GetUserByEmail = %+v, want created user", byEmail)
	}

	byID, err := store.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if byID.Email != user.Email {
		t.Errorf("GetUserByID = %+v, want created user", byID)
	}

	if _, err := store.GetUserByEmail(ctx, "nadie@example.com"); err == nil {
		t.Error("Expected error for unknown email")
	}

	// Email is unique.
	dup := &models.User{Email: "ana@example.com", DisplayName: "Otra", PasswordHash: "x"}
	if err := store.CreateUser(ctx, dup); err == nil {
		t.Error("Expected unique-email violation")
	}
}
