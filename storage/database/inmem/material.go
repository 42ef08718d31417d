package inmemdb

import "github.com/ivamusic/academia/core/directory"

type materialRepository struct {
	db *materialTable
}

func NewMaterialRepository(db *DB) directory.MaterialRepository {
	return &materialRepository{db: db.materials}
}

func (repo *materialRepository) CreateMaterial(mat directory.StudyMaterial) (directory.StudyMaterial, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	// most recent uploads first
	repo.db.rows = append([]*directory.StudyMaterial{&mat}, repo.db.rows...)
	return mat, nil
}

func (repo *materialRepository) QueryMaterialsByStudent(studentID string) ([]directory.StudyMaterial, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	items := make([]directory.StudyMaterial, 0)
	for _, mat := range repo.db.rows {
		if mat.StudentID == studentID {
			items = append(items, *mat)
		}
	}
	return items, nil
}

func (repo *materialRepository) MarkMaterialsSeen(studentID string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, mat := range repo.db.rows {
		if mat.StudentID == studentID {
			mat.IsNew = false
		}
	}
	return nil
}
