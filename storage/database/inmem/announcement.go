package inmemdb

import "github.com/ivamusic/academia/core/directory"

type announcementRepository struct {
	db *announcementTable
}

func NewAnnouncementRepository(db *DB) directory.AnnouncementRepository {
	return &announcementRepository{db: db.announcements}
}

func (repo *announcementRepository) QueryAllAnnouncements() ([]directory.Announcement, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	items := make([]directory.Announcement, 0, len(repo.db.rows))
	for _, a := range repo.db.rows {
		items = append(items, *a)
	}
	return items, nil
}
