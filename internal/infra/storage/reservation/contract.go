package reservation

import "github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"

// DBExecutor интерфейс исполнителя запросов к БД.
// Поддерживает *sql.DB и *dbmetrics.DB.
type DBExecutor = dbmetrics.DBExecutor
