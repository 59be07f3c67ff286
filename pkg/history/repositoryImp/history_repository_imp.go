package repositoryImp

import (
	"strings"

	"gorm.io/gorm"

	"agritech/entities"
	"agritech/pkg/history/repository"
)

type historyRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.HistoryRepository { return &historyRepo{db} }

func (r *historyRepo) Log(e *entities.ActivityLog) error { return r.db.Create(e).Error }

func (r *historyRepo) List(search string, page, perPage int) ([]entities.ActivityLog, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 200 {
		perPage = 10
	}
	q := r.db.Model(&entities.ActivityLog{})
	if s := strings.TrimSpace(search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(user_name) LIKE ? OR LOWER(target) LIKE ?", like, like)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []entities.ActivityLog
	err := q.Order("created_at DESC").Limit(perPage).Offset((page - 1) * perPage).Find(&out).Error
	return out, total, err
}

func (r *historyRepo) All() ([]entities.ActivityLog, error) {
	var out []entities.ActivityLog
	return out, r.db.Order("created_at DESC").Find(&out).Error
}
