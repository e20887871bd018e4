// Package models defines the core domain models for RoomEase.
//
// # Models
//
//   - Roommate: someone sharing the household with the primary user, carrying
//     a balance and a settlement Status
//   - Expense: an immutable record of money spent, split evenly when a
//     roommate paid it
//   - Utility: a recurring household bill and the primary user's share of it
//   - State: the three ordered collections as one snapshot
//
// # Primary user
//
// The primary user operates the application and is not a Roommate. An
// Expense paid by the primary user has an empty PayerID; a non-empty PayerID
// always names a Roommate.
//
// # Design Principles
//
//  1. Models carry structure and validation only; balance and settlement
//     rules live in package household
//  2. Money is shopspring/decimal, never float64
//  3. Relationships are ID strings, not pointers
package models
