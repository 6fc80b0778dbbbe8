package login

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// account is one registry entry. The secret is kept only as a bcrypt
// hash; there is no durable storage, accounts live for the process
// lifetime and are never removed.
type account struct {
	hash   []byte
	online bool
}

// Registry tracks every login ever authenticated in this process and
// whether it is currently online. It is owned by the login service
// loop and needs no locking.
type Registry struct {
	accounts map[string]*account
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{accounts: make(map[string]*account)}
}

// Known reports whether the login has an account.
func (r *Registry) Known(login string) bool {
	_, ok := r.accounts[login]
	return ok
}

// Online reports whether the login has an account that is online.
func (r *Registry) Online(login string) bool {
	acc, ok := r.accounts[login]
	return ok && acc.online
}

// Create registers a new account with the given secret and marks it
// online. The login must not be known yet.
func (r *Registry) Create(login, secret string) error {
	if r.Known(login) {
		panic(fmt.Sprintf("login: account %q created twice", login))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password for %q: %w", login, err)
	}
	r.accounts[login] = &account{hash: hash, online: true}
	return nil
}

// Authenticate matches secret against the stored hash of a known
// offline account and marks it online on success. Returns false on a
// mismatched secret; the caller must have excluded online accounts.
func (r *Registry) Authenticate(login, secret string) bool {
	acc, ok := r.accounts[login]
	if !ok {
		panic(fmt.Sprintf("login: authenticating unknown account %q", login))
	}
	if acc.online {
		panic(fmt.Sprintf("login: authenticating online account %q", login))
	}
	if bcrypt.CompareHashAndPassword(acc.hash, []byte(secret)) != nil {
		return false
	}
	acc.online = true
	return true
}

// SetOffline transitions an online account back to offline, preserving
// its secret. Being offline already is an invariant violation: only a
// closing authenticated connection calls this.
func (r *Registry) SetOffline(login string) {
	acc, ok := r.accounts[login]
	if !ok || !acc.online {
		panic(fmt.Sprintf("login: account %q is authenticated but not online", login))
	}
	acc.online = false
}
