package inmemdb

import "github.com/ivamusic/academia/core/directory"

type homeworkRepository struct {
	db *homeworkTable
}

func NewHomeworkRepository(db *DB) directory.HomeworkRepository {
	return &homeworkRepository{db: db.homework}
}

func (repo *homeworkRepository) CreateHomework(hw directory.Homework) (directory.Homework, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.rows = append(repo.db.rows, &hw)
	return hw, nil
}

func (repo *homeworkRepository) QueryHomeworkByStudent(studentID string) ([]directory.Homework, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	items := make([]directory.Homework, 0)
	for _, hw := range repo.db.rows {
		if hw.StudentID == studentID {
			items = append(items, *hw)
		}
	}
	return items, nil
}

func (repo *homeworkRepository) UpdateHomeworkStatus(id string, status directory.HomeworkStatus) (directory.Homework, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, hw := range repo.db.rows {
		if hw.ID == id {
			hw.Status = status
			return *hw, nil
		}
	}
	return directory.Homework{}, directory.ErrNotFound
}
