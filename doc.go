// Package tracker implements the ledger engine of a personal multi-wallet
// finance tracker. Users hold balances in named wallets denominated in
// different currencies, record income and expense transactions against
// wallets and categories, and can soft-delete, restore or permanently purge
// those transactions.
//
// The core functionalities include:
//   - Wallet Store: named wallets with a currency and a running balance,
//     mutated only through the ledger's posting and reversal operations.
//   - Ledger: the transaction journal, assigning stable record identifiers,
//     enforcing sufficient-funds and referential checks, and keeping wallet
//     balances synchronized with record lifecycle transitions.
//   - Trash: a secondary journal of soft-deleted records, capturing enough
//     information to reverse the original balance effect, reversible until
//     purged.
//   - Currency Table: the latest known conversion rate per currency code
//     relative to a fixed reference currency, used for display valuation only.
//   - Persistence Gateway: a full-state JSON document on disk with a rolling
//     one-generation backup, falling back to an empty default on corruption.
//
// This package serves as the foundational logic for the `fin` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package tracker
