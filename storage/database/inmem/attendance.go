package inmemdb

import "github.com/ivamusic/academia/core/directory"

type attendanceRepository struct {
	db *attendanceTable
}

func NewAttendanceRepository(db *DB) directory.AttendanceRepository {
	return &attendanceRepository{db: db.attendance}
}

// CreateAttendanceRecords appends a batch. Records are write-only in this
// store; no read or aggregation path is defined over them.
func (repo *attendanceRepository) CreateAttendanceRecords(recs ...directory.AttendanceRecord) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i := range recs {
		rec := recs[i]
		repo.db.rows = append(repo.db.rows, &rec)
	}
	return nil
}
