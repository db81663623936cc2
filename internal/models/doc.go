// Package models defines the persisted domain models of the Splitz ledger.
//
// # Models
//
//   - Group / GroupMember: who shares expenses. Membership, not role, is what
//     balance computation reads; roles gate who may edit expenses.
//   - Expense / ExpenseSplit: a payment by one member and how it is divided.
//     Splits are computed together with the expense and replaced wholesale
//     when the amount or strategy changes.
//   - Settlement: a payment between two members that clears debt. It moves
//     through PENDING -> MARKED_PAID -> COMPLETED and only COMPLETED
//     settlements count toward balances.
//
// # Conventions
//
//  1. Money is decimal.Decimal held at two fractional digits, never float64.
//  2. Relationships are referenced by id (int64), not by pointer.
//  3. Timestamps are Unix seconds; zero means "not set".
package models
