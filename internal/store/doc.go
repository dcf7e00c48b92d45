// Package store is the shop's local data store: catalog items, bills, daily
// accounts, settings, and the flash-sale record, persisted as independent
// JSON documents through a kv.Store backend.
//
// The store owns every cross-record invariant:
//
//   - bill numbers are per-day sequential (YYYYMMDD-NNN) from a durable
//     counter, so deleting a bill never frees its number
//   - bills older than seven days are purged lazily on list
//   - daily accounts are upserted by calendar date, at most one per date,
//     with derived totals recomputed on every save
//   - at most one flash sale is active, and ending or expiring it restores
//     every snapshotted item price exactly
//
// Reads degrade: a missing or undecodable document yields the empty default,
// never an error. Write failures propagate, except during flash-sale expiry
// cleanup where reversion is best-effort so the ephemeral record is always
// removed.
//
// A single mutex serializes every read-modify-write. The wall clock is
// injected so retention and expiry are testable without sleeping.
package store
