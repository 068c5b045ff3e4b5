package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidChainId      = errors.New("invalid chain id")
	ErrInvalidAddress      = errors.New("Invalid address")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidInvoice      = errors.New("invalid payment invoice")

	// ErrWalletNotConnected will throw when an unlock is attempted before a
	// signer has been configured
	ErrWalletNotConnected = errors.New("wallet not connected")
	// ErrUnlockInFlight will throw when an unlock for the same asset is
	// already running
	ErrUnlockInFlight = errors.New("unlock already in progress")
	// ErrVerificationRejected will throw when the backend refuses a payment proof
	ErrVerificationRejected = errors.New("payment verification rejected")
	// ErrAlreadyUnlocked will throw when unlocking an asset recorded as unlocked
	ErrAlreadyUnlocked = errors.New("asset already unlocked")
	// ErrAssetLocked will throw when content is requested for an asset the
	// viewer has not paid for
	ErrAssetLocked = errors.New("asset is locked")

	ErrUnsupportedSchema = errors.New("Unsupported schema")
	ErrNotImplemented    = errors.New("not implemented")
)
