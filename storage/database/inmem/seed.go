package inmemdb

import "github.com/ivamusic/academia/core/directory"

// LoadFixtures resets the store to the fixed seed set. The hosting process
// calls this on start up; tests call it to get a known directory.
func (db *DB) LoadFixtures() {
	db.users.mutex.Lock()
	db.users.rows = []*directory.User{
		{
			ID:       "admin1",
			Name:     "Master Admin",
			Role:     directory.RoleAdmin,
			Username: "ivamuc001",
			Password: "Ivamusic001",
			Avatar:   "https://picsum.photos/id/1/200/200",
			Stats:    &directory.Stats{Students: 120, Tasks: 5},
		},
		{
			ID:         "student1",
			Name:       "Alice Melody",
			Role:       directory.RoleStudent,
			Username:   "IVA-S001",
			Password:   "password123",
			Avatar:     "https://picsum.photos/id/64/200/200",
			Instrument: "Piano",
			Stats:      &directory.Stats{Attendance: 92, Tasks: 3},
		},
		{
			ID:         "student2",
			Name:       "John Doe",
			Role:       directory.RoleStudent,
			Username:   "IVA-S002",
			Password:   "password123",
			Avatar:     "https://picsum.photos/id/65/200/200",
			Instrument: "Guitar",
			Stats:      &directory.Stats{Attendance: 85, Tasks: 1},
		},
		{
			ID:       "teacher1",
			Name:     "Prof. Harmony",
			Role:     directory.RoleTeacher,
			Username: "IVA-T001",
			Avatar:   "https://picsum.photos/id/22/200/200",
			Stats:    &directory.Stats{Students: 45, Tasks: 12},
		},
	}
	db.users.mutex.Unlock()

	db.homework.mutex.Lock()
	db.homework.rows = []*directory.Homework{
		{
			ID:          "hw1",
			Title:       "Major Scales Practice",
			Description: "Record a video playing C Major scale in 2 octaves.",
			DueDate:     "2023-10-25",
			AssignedBy:  "Prof. Harmony",
			Status:      directory.HomeworkPending,
			Subject:     "Piano",
			StudentID:   "student1",
		},
		{
			ID:          "hw2",
			Title:       "Music Theory Basics",
			Description: "Complete the worksheet on intervals.",
			DueDate:     "2023-10-28",
			AssignedBy:  "Prof. Harmony",
			Status:      directory.HomeworkSubmitted,
			Subject:     "Theory",
			StudentID:   "student1",
		},
	}
	db.homework.mutex.Unlock()

	db.materials.mutex.Lock()
	db.materials.rows = []*directory.StudyMaterial{
		{
			ID:         "m1",
			Title:      "Sheet Music - Fur Elise",
			Type:       directory.MaterialPDF,
			URL:        "#",
			StudentID:  "student1",
			UploadedBy: "Prof. Harmony",
			Date:       "2023-10-20",
			IsNew:      false,
		},
	}
	db.materials.mutex.Unlock()

	db.announcements.mutex.Lock()
	db.announcements.rows = []*directory.Announcement{
		{
			ID:      "a1",
			Title:   "Annual Recital",
			Content: "The winter recital will be held on December 15th.",
			Date:    "2 Oct",
			Type:    directory.AnnouncementEvent,
		},
		{
			ID:      "a2",
			Title:   "School Closed",
			Content: "Academy closed for maintenance this Sunday.",
			Date:    "5 Oct",
			Type:    directory.AnnouncementAlert,
		},
	}
	db.announcements.mutex.Unlock()

	db.notifications.mutex.Lock()
	db.notifications.rows = []*directory.Notification{
		{
			ID:         "n1",
			Message:    "Welcome to the new term!",
			Time:       "1 day ago",
			Type:       directory.NotificationInfo,
			TargetRole: directory.AudienceAll,
		},
	}
	db.notifications.mutex.Unlock()

	db.attendance.mutex.Lock()
	db.attendance.rows = nil
	db.attendance.mutex.Unlock()
}
