package inmemdb

import (
	"sync"

	"github.com/ivamusic/academia/core/directory"
)

// DB is the process-local entity store. State lives in memory only and is
// rebuilt from the seed set on every process start; there is no persistence
// across restarts.
//
// Tables are slice backed to keep the store's ordering guarantees: users and
// homework are insertion ordered, materials and notifications are prepend
// ordered (most recent first).
type (
	DB struct {
		users         *userTable
		homework      *homeworkTable
		materials     *materialTable
		notifications *notificationTable
		announcements *announcementTable
		attendance    *attendanceTable
	}

	userTable struct {
		rows  []*directory.User
		mutex sync.RWMutex
	}

	homeworkTable struct {
		rows  []*directory.Homework
		mutex sync.RWMutex
	}

	materialTable struct {
		rows  []*directory.StudyMaterial
		mutex sync.RWMutex
	}

	notificationTable struct {
		rows  []*directory.Notification
		mutex sync.RWMutex
	}

	announcementTable struct {
		rows  []*directory.Announcement
		mutex sync.RWMutex
	}

	attendanceTable struct {
		rows  []*directory.AttendanceRecord
		mutex sync.RWMutex
	}
)

func Open() (*DB, error) {
	db := &DB{
		users:         new(userTable),
		homework:      new(homeworkTable),
		materials:     new(materialTable),
		notifications: new(notificationTable),
		announcements: new(announcementTable),
		attendance:    new(attendanceTable),
	}
	return db, nil
}

// Repositories returns the full set of repositories backed by this store.
func Repositories(db *DB) directory.Repositories {
	return directory.Repositories{
		Users:         NewUserRepository(db),
		Homework:      NewHomeworkRepository(db),
		Materials:     NewMaterialRepository(db),
		Notifications: NewNotificationRepository(db),
		Announcements: NewAnnouncementRepository(db),
		Attendance:    NewAttendanceRepository(db),
	}
}
