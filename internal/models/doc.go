// Package models defines the core domain models for the dividir backend.
//
// # Models
//
//   - Receipt: one processed restaurant bill with items, participants, tip rate
//   - Item: a single receipt line with an owner set
//   - User: a registered account; receipts are scoped to the owning user
//
// Participants on a receipt are plain name strings, not user accounts: the
// people splitting a bill are usually not registered, only the uploader is.
//
// # Design Principles
//
//  1. **Engine purity**: models carry data only; all derived values
//     (per-person totals, validation, share text) live in the distribution
//     package and are recomputed in full on every change.
//  2. **Fractional tip**: Receipt.TipPercent is always a fraction in [0, 1]
//     (0.10 for 10%). Whole-percent form exists only at edit boundaries.
//  3. **Order matters**: Receipt.People is display order and the order the
//     distribution iterates in; Items keep their receipt order. Both survive
//     storage round-trips.
//  4. **Avoid circular references**: relationships use ID strings, never
//     pointers.
package models
