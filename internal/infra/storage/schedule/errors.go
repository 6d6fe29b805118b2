package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда у профессионала нет расписания
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrDuplicateRule возвращается при попытке создать дубликат правила
	// для одного и того же дня недели
	ErrDuplicateRule = errors.New("schedule.repository: duplicate rule for weekday")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
