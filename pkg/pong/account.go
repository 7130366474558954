package pong

import (
	"os"

	"github.com/pongtrack/startuppong/pkg/errors"
)

// Environment variables read by [AccountFromEnv].
const (
	EnvAccountID = "STARTUPPONG_ACCOUNT_ID"
	EnvAccessKey = "STARTUPPONG_ACCESS_KEY"
)

// Account holds the account id / access key pair required by every remote
// call. It is immutable after construction and safe to copy freely.
type Account struct {
	id  string
	key string
}

// NewAccount creates an Account from explicit credential strings.
func NewAccount(id, key string) Account {
	return Account{id: id, key: key}
}

// AccountFromLookup creates an Account from an injected key-value lookup.
// The lookup is queried for [EnvAccountID] and [EnvAccessKey]; a missing or
// empty value yields a MISSING_ENV error naming the variable. Tests pass a
// map-backed lookup instead of depending on process environment state.
func AccountFromLookup(lookup func(string) (string, bool)) (Account, error) {
	id, ok := lookup(EnvAccountID)
	if !ok || id == "" {
		return Account{}, errors.New(errors.ErrCodeMissingEnv, "%s is not set", EnvAccountID)
	}
	key, ok := lookup(EnvAccessKey)
	if !ok || key == "" {
		return Account{}, errors.New(errors.ErrCodeMissingEnv, "%s is not set", EnvAccessKey)
	}
	return NewAccount(id, key), nil
}

// AccountFromEnv creates an Account from the process environment.
// It is a thin wrapper around [AccountFromLookup] with [os.LookupEnv].
func AccountFromEnv() (Account, error) {
	return AccountFromLookup(os.LookupEnv)
}

// ID returns the account identifier.
func (a Account) ID() string { return a.id }

// Key returns the access key.
func (a Account) Key() string { return a.key }
