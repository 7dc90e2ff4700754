package internal

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

const (
	currentUserKey = "current_user"
	loggedInKey    = "is_logged_in"
)

// AuthService manages the locally persisted account and its diamonds balance.
// The remote user table is best-effort: sign-up and account deletion try to
// mirror the change remotely but never block the local operation.
type AuthService struct {
	blobs           *BlobStore
	remote          *SupabaseClient
	chatCost        int
	galleryCost     int
	defaultDiamonds int
}

// NewAuthService creates an auth service; remote may be nil for offline use
func NewAuthService(blobs *BlobStore, remote *SupabaseClient, cfg *Config) *AuthService {
	return &AuthService{
		blobs:           blobs,
		remote:          remote,
		chatCost:        cfg.Diamonds.ChatCost,
		galleryCost:     cfg.Diamonds.GalleryCost,
		defaultDiamonds: cfg.Diamonds.Default,
	}
}

// CurrentUser returns the persisted account, or false when nobody is logged in
func (a *AuthService) CurrentUser() (User, bool) {
	flag, ok := a.blobs.Get(loggedInKey)
	if !ok || string(flag) != "true" {
		return User{}, false
	}
	data, ok := a.blobs.Get(currentUserKey)
	if !ok {
		return User{}, false
	}
	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		LogWarn("stored user undecodable: %v", err)
		return User{}, false
	}
	return user, true
}

// Login signs in with the given email. Credential verification happens
// against the backend in production; the local flow provisions the account
// with the default balance.
func (a *AuthService) Login(username, email string) (User, error) {
	user := User{
		ID:       uuid.NewString(),
		Username: username,
		Email:    email,
		Age:      0,
		Gender:   "male",
		Level:    1,
		Diamonds: a.defaultDiamonds,
	}
	if err := a.saveUser(user); err != nil {
		return User{}, err
	}
	return user, nil
}

// SignUp creates a new account and mirrors it to the backend best-effort
func (a *AuthService) SignUp(ctx context.Context, username, email string, age int, gender string) (User, error) {
	user := User{
		ID:       uuid.NewString(),
		Username: username,
		Email:    email,
		Age:      age,
		Gender:   gender,
		Level:    1,
		Diamonds: a.defaultDiamonds,
	}
	if err := a.saveUser(user); err != nil {
		return User{}, err
	}

	if a.remote != nil {
		if _, err := a.remote.CreateUser(ctx, user); err != nil {
			LogWarn("remote user creation failed: %v", err)
		}
	}
	return user, nil
}

// Logout clears the logged-in flag but keeps the stored profile
func (a *AuthService) Logout() {
	if err := a.blobs.Set(loggedInKey, []byte("false")); err != nil {
		LogWarn("failed to clear login flag: %v", err)
	}
}

// UpdateProfile rewrites the mutable profile fields
func (a *AuthService) UpdateProfile(username string, age int, gender string) (User, bool) {
	user, ok := a.CurrentUser()
	if !ok {
		return User{}, false
	}
	user.Username = username
	user.Age = age
	user.Gender = gender
	if err := a.saveUser(user); err != nil {
		return User{}, false
	}
	return user, true
}

// DeleteAccount removes the local account and best-effort deletes the remote row
func (a *AuthService) DeleteAccount(ctx context.Context) error {
	user, ok := a.CurrentUser()
	if ok && a.remote != nil {
		if err := a.remote.DeleteUser(ctx, user.ID); err != nil {
			LogWarn("remote user deletion failed: %v", err)
		}
	}
	if err := a.blobs.Remove(currentUserKey); err != nil {
		return err
	}
	return a.blobs.Remove(loggedInKey)
}

// SpendDiamonds deducts amount when the balance allows it.
// False means "not permitted": nothing was deducted.
func (a *AuthService) SpendDiamonds(amount int) bool {
	if amount <= 0 {
		return false
	}
	user, ok := a.CurrentUser()
	if !ok || user.Diamonds < amount {
		return false
	}
	user.Diamonds -= amount
	return a.saveUser(user) == nil
}

// AddDiamonds credits the balance
func (a *AuthService) AddDiamonds(amount int) {
	if amount <= 0 {
		return
	}
	user, ok := a.CurrentUser()
	if !ok {
		return
	}
	user.Diamonds += amount
	if err := a.saveUser(user); err != nil {
		LogWarn("failed to credit diamonds: %v", err)
	}
}

// ChatCost is the diamond price of sending one chat message
func (a *AuthService) ChatCost() int {
	return a.chatCost
}

// GalleryCost is the diamond price of unlocking a gallery
func (a *AuthService) GalleryCost() int {
	return a.galleryCost
}

func (a *AuthService) saveUser(user User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := a.blobs.Set(currentUserKey, data); err != nil {
		return err
	}
	return a.blobs.Set(loggedInKey, []byte("true"))
}
