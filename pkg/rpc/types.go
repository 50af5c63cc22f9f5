package rpc

import "github.com/dividircl/backend/internal/numeric"

// ReceiptItem is the wire form of a line item. Quantity and UnitPrice are
// numeric.Value so clients may send either plain JSON numbers or the tagged
// extended-JSON form produced by the OCR pipeline.
type ReceiptItem struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Quantity  numeric.Value `json:"quantity"`
	UnitPrice numeric.Value `json:"unitPrice"`
	Owners    []string      `json:"owners"`
}

// Receipt is the wire form of a stored receipt.
type Receipt struct {
	ReceiptID  string         `json:"receiptId"`
	UserEmail  string         `json:"userEmail"`
	PlaceName  string         `json:"placeName"`
	TipPercent numeric.Value  `json:"tipPercent"`
	Items      []*ReceiptItem `json:"items"`
	People     []string       `json:"people"`
	CreatedAt  int64          `json:"createdAt"`
}

type CreateReceiptRequest struct {
	PlaceName  string         `json:"placeName"`
	TipPercent numeric.Value  `json:"tipPercent"`
	Items      []*ReceiptItem `json:"items"`
	People     []string       `json:"people"`
}

type CreateReceiptResponse struct {
	Receipt *Receipt `json:"receipt"`
}

type GetReceiptRequest struct {
	ReceiptID string `json:"receiptId"`
}

type GetReceiptResponse struct {
	Receipt *Receipt `json:"receipt"`
}

type ListReceiptsRequest struct{}

type ListReceiptsResponse struct {
	Receipts []*Receipt `json:"receipts"`
}

type UpdateReceiptRequest struct {
	ReceiptID  string         `json:"receiptId"`
	PlaceName  string         `json:"placeName"`
	TipPercent numeric.Value  `json:"tipPercent"`
	Items      []*ReceiptItem `json:"items"`
	People     []string       `json:"people"`
}

type UpdateReceiptResponse struct {
	Receipt *Receipt `json:"receipt"`
}

type DeleteReceiptRequest struct {
	ReceiptID string `json:"receiptId"`
}

type DeleteReceiptResponse struct{}

type SplitItemRequest struct {
	ReceiptID string `json:"receiptId"`
	ItemID    string `json:"itemId"`
}

type SplitItemResponse struct {
	Receipt *Receipt `json:"receipt"`
}

type GetDistributionRequest struct {
	ReceiptID string `json:"receiptId"`
}

// PersonTotal is one person's slice of the bill, tip included.
type PersonTotal struct {
	Individual map[string]float64 `json:"individual"`
	Shared     float64            `json:"shared"`
	Total      float64            `json:"total"`
}

// Summary holds the receipt-level figures.
type Summary struct {
	Subtotal  float64 `json:"subtotal"`
	TipAmount float64 `json:"tipAmount"`
	Total     float64 `json:"total"`
}

// ValidationResult reports whether per-person totals reconcile with the
// receipt total. The figure fields are present only when a discrepancy was
// found, matching the two shapes the frontend switches on.
type ValidationResult struct {
	HasDiscrepancy  bool     `json:"hasDiscrepancy"`
	ReceiptTotal    *float64 `json:"receiptTotal,omitempty"`
	PersonTotalsSum *float64 `json:"personTotalsSum,omitempty"`
	Difference      *float64 `json:"difference,omitempty"`
}

type GetDistributionResponse struct {
	Summary    *Summary                `json:"summary"`
	People     []string                `json:"people"`
	Totals     map[string]*PersonTotal `json:"totals"`
	Validation *ValidationResult       `json:"validation"`
	ShareText  string                  `json:"shareText"`
	ShareURL   string                  `json:"shareUrl"`
}

// User is the wire form of an account, without credential material.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is shared by Register and Login.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
