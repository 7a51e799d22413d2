package billing

import (
	"github.com/mojtermin/MT-BookingPlatform/pkg/dbmetrics"
)

// DBExecutor интерфейс для выполнения запросов к базе данных
type DBExecutor = dbmetrics.DBExecutor
