package appointment

import (
	"github.com/lepikeman/qrenoo-booking/pkg/dbmetrics"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics
type DBExecutor = dbmetrics.DBExecutor
