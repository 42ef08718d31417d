package inmemdb

import "github.com/ivamusic/academia/core/directory"

type notificationRepository struct {
	db *notificationTable
}

func NewNotificationRepository(db *DB) directory.NotificationRepository {
	return &notificationRepository{db: db.notifications}
}

func (repo *notificationRepository) CreateNotification(n directory.Notification) (directory.Notification, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	// most recent notifications first
	repo.db.rows = append([]*directory.Notification{&n}, repo.db.rows...)
	return n, nil
}

func (repo *notificationRepository) QueryNotifications(role directory.Role, userID string) ([]directory.Notification, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	items := make([]directory.Notification, 0)
	for _, n := range repo.db.rows {
		if !n.TargetRole.Matches(role) {
			continue
		}
		if n.TargetUserID != "" && n.TargetUserID != userID {
			continue
		}
		items = append(items, *n)
	}
	return items, nil
}
