// Package identity is the opaque identity collaborator: it supplies a stable
// user id and profile seed fields at sign-in. Credentials are never
// validated here. The seed lives in the OS keyring, with environment
// variables as a fallback for headless machines.
package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/zalando/go-keyring"

	"github.com/habitflow/habitflow/internal/constants"
)

// ErrNotSignedIn is returned when no identity seed is stored.
var ErrNotSignedIn = errors.New("no identity found, run 'habitflow profile edit' to sign in")

const keyringUser = "identity"

// Seed carries the identity fields a profile is created from.
type Seed struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// Current returns the stored identity seed. Resolution order: OS keyring,
// then HABITFLOW_USER_* environment variables. A fresh id is minted when the
// env fallback carries no id.
func Current() (Seed, error) {
	if raw, err := keyring.Get(constants.AppName, keyringUser); err == nil {
		var seed Seed
		if err := json.Unmarshal([]byte(raw), &seed); err == nil && seed.ID != "" {
			return seed, nil
		}
	}

	if name := os.Getenv("HABITFLOW_USER_NAME"); name != "" {
		seed := Seed{
			ID:    os.Getenv("HABITFLOW_USER_ID"),
			Name:  name,
			Email: os.Getenv("HABITFLOW_USER_EMAIL"),
		}
		if seed.ID == "" {
			seed.ID = uuid.New().String()
		}
		return seed, nil
	}

	return Seed{}, ErrNotSignedIn
}

// Save stores the identity seed in the OS keyring.
func Save(seed Seed) error {
	if seed.ID == "" {
		seed.ID = uuid.New().String()
	}
	raw, err := json.Marshal(seed)
	if err != nil {
		return err
	}
	if err := keyring.Set(constants.AppName, keyringUser, string(raw)); err != nil {
		return fmt.Errorf("failed to store identity in keyring: %w", err)
	}
	return nil
}

// Clear removes the stored identity seed (sign-out).
func Clear() error {
	err := keyring.Delete(constants.AppName, keyringUser)
	if err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("failed to clear identity from keyring: %w", err)
	}
	return nil
}
