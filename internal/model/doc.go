// Package model defines the domain types persisted by the shop data store:
// catalog items, bills, daily accounts, settings, and the ephemeral flash-sale
// record.
//
// All money fields use shopspring/decimal to avoid binary-float rounding in
// totals. Types here carry no behavior beyond derived-field computation and
// default-filling; persistence and invariants live in internal/store.
package model
