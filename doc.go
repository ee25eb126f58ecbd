// Package fusion provides the data model and persistence layer for a
// single-process personal-finance ledger. It tracks users, their bank
// accounts, stock holdings and SIP (Systematic Investment Plan) positions,
// and keeps everything in a flat human-readable text file between runs.
//
// The core pieces are:
//   - Transaction Log: a bounded, append-only record of balance changes per
//     account, evicting its oldest entry when full.
//   - Bank Accounts: deposit/withdraw with validation, guarded by a PIN.
//   - Holdings: stock positions merged by symbol, SIP positions unique per
//     scheme, both bounded per user.
//   - Directory: the root collection of users and the unit of persistence.
//   - Codec: a line-oriented text format that round-trips the whole
//     directory and recovers from a corrupted tail by truncation rather
//     than rejection.
//
// This package is the foundational logic for the `ffn` command-line tool:
// every command loads the directory, applies one operation, and saves.
package fusion
