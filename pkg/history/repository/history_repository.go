package repository

import "agritech/entities"

type HistoryRepository interface {
	Log(e *entities.ActivityLog) error
	// List returns one page of logs (newest first) plus the total count.
	// search matches the user name or target, case-insensitively.
	List(search string, page, perPage int) ([]entities.ActivityLog, int64, error)
	All() ([]entities.ActivityLog, error)
}
