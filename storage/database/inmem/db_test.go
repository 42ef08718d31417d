package inmemdb

import (
	"testing"

	"github.com/volatiletech/null/v8"

	"github.com/ivamusic/academia/core/directory"
)

func openDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open()
	if err != nil {
		t.Fatalf("Open(): %v", err)
	}
	return db
}

func Test_userRepository_usernameMatching(t *testing.T) {
	db := openDB(t)
	db.LoadFixtures()
	repo := NewUserRepository(db)

	// lookups are case-insensitive and scoped to role
	usr, err := repo.GetUserByUsername("iVa-S001", directory.RoleStudent)
	if err != nil {
		t.Fatalf("GetUserByUsername(): %v", err)
	}
	if usr.ID != "student1" {
		t.Errorf("GetUserByUsername() = %q, want student1", usr.ID)
	}
	if _, err = repo.GetUserByUsername("iVa-S001", directory.RoleTeacher); err != directory.ErrNotFound {
		t.Errorf("GetUserByUsername() across roles error = %v, want %v", err, directory.ErrNotFound)
	}

	// uniqueness follows the same matching rules
	if err = repo.CheckUsernameUniqueness("IVA-s001", directory.RoleStudent); err != directory.ErrUsernameExists {
		t.Errorf("CheckUsernameUniqueness() error = %v, want %v", err, directory.ErrUsernameExists)
	}
	if err = repo.CheckUsernameUniqueness("IVA-S001", directory.RoleTeacher); err != nil {
		t.Errorf("CheckUsernameUniqueness() across roles error = %v", err)
	}
	// the user itself can be excluded, e.g. on self update
	if err = repo.CheckUsernameUniqueness("IVA-S001", directory.RoleStudent, usr); err != nil {
		t.Errorf("CheckUsernameUniqueness() with exclusion error = %v", err)
	}
}

func Test_userRepository_updateAndDelete(t *testing.T) {
	db := openDB(t)
	db.LoadFixtures()
	repo := NewUserRepository(db)

	usr, err := repo.UpdateUser(directory.UserPatch{ID: "student2", Instrument: null.StringFrom("Bass")})
	if err != nil {
		t.Fatalf("UpdateUser(): %v", err)
	}
	if usr.Instrument != "Bass" {
		t.Errorf("instrument = %q, want Bass", usr.Instrument)
	}
	if usr.Name != "John Doe" || usr.Password != "password123" {
		t.Errorf("unset fields not preserved: %+v", usr)
	}

	if err = repo.DeleteUser("student2"); err != nil {
		t.Fatalf("DeleteUser(): %v", err)
	}
	if _, err = repo.GetUserByID("student2"); err != directory.ErrNotFound {
		t.Errorf("GetUserByID() after delete error = %v, want %v", err, directory.ErrNotFound)
	}
	if err = repo.DeleteUser("student2"); err != nil {
		t.Errorf("DeleteUser() on missing id error = %v", err)
	}
}

func Test_notificationRepository_audienceFilter(t *testing.T) {
	db := openDB(t)
	repo := NewNotificationRepository(db)

	mustCreate := func(n directory.Notification) {
		if _, err := repo.CreateNotification(n); err != nil {
			t.Fatalf("CreateNotification(): %v", err)
		}
	}
	mustCreate(directory.Notification{ID: "b1", Message: "everyone", TargetRole: directory.AudienceAll})
	mustCreate(directory.Notification{ID: "b2", Message: "students", TargetRole: directory.RoleAudience(directory.RoleStudent)})
	mustCreate(directory.Notification{ID: "b3", Message: "one student", TargetRole: directory.RoleAudience(directory.RoleStudent), TargetUserID: "student1"})

	tests := []struct {
		name    string
		role    directory.Role
		userID  string
		wantIDs []string
	}{
		{name: "student sees own and broadcasts", role: directory.RoleStudent, userID: "student1", wantIDs: []string{"b3", "b2", "b1"}},
		{name: "other student skips targeted", role: directory.RoleStudent, userID: "student2", wantIDs: []string{"b2", "b1"}},
		{name: "teacher only sees broadcasts", role: directory.RoleTeacher, userID: "teacher1", wantIDs: []string{"b1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := repo.QueryNotifications(tt.role, tt.userID)
			if err != nil {
				t.Fatalf("QueryNotifications(): %v", err)
			}
			if len(items) != len(tt.wantIDs) {
				t.Fatalf("QueryNotifications() len = %d, want %d", len(items), len(tt.wantIDs))
			}
			for i, n := range items {
				if n.ID != tt.wantIDs[i] {
					t.Errorf("items[%d].ID = %q, want %q", i, n.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestDB_LoadFixtures(t *testing.T) {
	db := openDB(t)
	db.LoadFixtures()
	db.LoadFixtures() // reloading resets, not appends

	users, err := NewUserRepository(db).QueryAllUsers()
	if err != nil {
		t.Fatalf("QueryAllUsers(): %v", err)
	}
	if len(users) != 4 {
		t.Errorf("QueryAllUsers() len = %d, want 4", len(users))
	}

	notifs, err := NewNotificationRepository(db).QueryNotifications(directory.RoleAdmin, "admin1")
	if err != nil {
		t.Fatalf("QueryNotifications(): %v", err)
	}
	if len(notifs) != 1 || notifs[0].ID != "n1" {
		t.Errorf("QueryNotifications() = %v", notifs)
	}
}
