package inmemdb

import (
	"strings"

	"github.com/ivamusic/academia/core/directory"
)

type userRepository struct {
	db *userTable
}

func NewUserRepository(db *DB) directory.UserRepository {
	return &userRepository{db: db.users}
}

func (repo *userRepository) query() []directory.User {
	users := make([]directory.User, 0, len(repo.db.rows))
	for _, u := range repo.db.rows {
		users = append(users, *u)
	}
	return users
}

func (repo *userRepository) CheckUsernameUniqueness(username string, role directory.Role, excludedUsers ...directory.User) error {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, usr := range repo.db.rows {
		if usr.Role == role && strings.EqualFold(usr.Username, username) && !isExcluded(*usr, excludedUsers) {
			return directory.ErrUsernameExists
		}
	}
	return nil
}

func (repo *userRepository) CreateUser(usr directory.User) (directory.User, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.rows = append(repo.db.rows, &usr)
	return usr, nil
}

func (repo *userRepository) GetUserByID(id string) (directory.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, usr := range repo.db.rows {
		if usr.ID == id {
			return *usr, nil
		}
	}
	return directory.User{}, directory.ErrNotFound
}

func (repo *userRepository) GetUserByUsername(username string, role directory.Role) (directory.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, usr := range repo.db.rows {
		if usr.Role == role && strings.EqualFold(usr.Username, username) {
			return *usr, nil
		}
	}
	return directory.User{}, directory.ErrNotFound
}

func (repo *userRepository) QueryUsersByRole(role directory.Role) ([]directory.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	users := make([]directory.User, 0)
	for _, usr := range repo.db.rows {
		if usr.Role == role {
			users = append(users, *usr)
		}
	}
	return users, nil
}

func (repo *userRepository) QueryAllUsers() ([]directory.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *userRepository) UpdateUser(patch directory.UserPatch) (directory.User, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i, usr := range repo.db.rows {
		if usr.ID == patch.ID {
			merged := patch.Apply(*usr)
			repo.db.rows[i] = &merged
			return merged, nil
		}
	}
	return directory.User{}, directory.ErrNotFound
}

func (repo *userRepository) DeleteUser(id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i, usr := range repo.db.rows {
		if usr.ID == id {
			repo.db.rows = append(repo.db.rows[:i], repo.db.rows[i+1:]...)
			return nil
		}
	}
	return nil // deleting a missing id is a no-op
}

func isExcluded(usr directory.User, excludedUsers []directory.User) bool {
	for _, excl := range excludedUsers {
		if excl.ID == usr.ID {
			return true
		}
	}
	return false
}
