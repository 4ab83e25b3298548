//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"chatroom/errors"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/database"
)

const userPrefix = "user:"

type IUserRepository interface {
	CreateUser(username, hashedPassword string, roles []string) (string, error)
	GetUser(username string) (User, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

// User is the stored account of the identity authority.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateUser persists a user keyed by username.
// It returns the newly generated user ID.
func (u UserRepository) CreateUser(username, hashedPassword string, roles []string) (string, error) {
	user := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hashedPassword,
		Roles:        roles,
		CreatedAt:    time.Now().UTC(),
	}
	data, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("marshal failed: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		key := usernameKey(username)
		if _, err := txn.Get(key); err == nil {
			return errors.ErrUserAlreadyExists
		} else if !stderrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(key, data)
	})
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

func (u UserRepository) GetUser(username string) (User, error) {
	var user User
	err := u.db.View(func(txn *badger.Txn) error {
		return readUser(txn, username, &user)
	})
	return user, err
}

func readUser(txn *badger.Txn, username string, user *User) error {
	item, err := txn.Get(usernameKey(username))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrUserNotFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, user)
	})
}

func usernameKey(username string) []byte {
	return []byte(userPrefix + username)
}

// InspectUser renders a stored entry for the Badger debug inspector.
// Password hashes are never shown.
func InspectUser(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	var user User
	if err := json.Unmarshal(val, &user); err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}
	row.Type = "USER"
	row.Detail = fmt.Sprintf("%s (%s) roles=%s", user.Username, user.ID, strings.Join(user.Roles, ","))
	return row
}
