package tracker

import "errors"

// Sentinel errors for every failure mode of the ledger engine. Operations
// detect all of these before applying any mutation, so a returned error
// always means the in-memory state is unchanged.
var (
	// ErrInvalidInput reports an empty or malformed wallet, currency or
	// category name.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidAmount reports a non-positive record amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrDuplicateWallet reports an attempt to create a wallet whose name is
	// already taken.
	ErrDuplicateWallet = errors.New("wallet already exists")
	// ErrWalletNotFound reports a reference to an unknown wallet.
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrCategoryNotFound reports a reference to a category missing from the
	// registry.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrRecordNotFound reports a (kind, id) pair matching no record.
	ErrRecordNotFound = errors.New("record not found")
	// ErrInsufficientFunds reports an expense larger than the wallet balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrCorruptState reports a persisted state document that failed
	// boundary validation. The persistence gateway recovers from it by
	// falling back to the empty default state.
	ErrCorruptState = errors.New("corrupt state")
)
