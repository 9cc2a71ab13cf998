package catalog

import "github.com/m04kA/SMC-CarwashService/pkg/dbmetrics"

// Переиспользуем интерфейс исполнителя запросов из dbmetrics,
// чтобы репозиторий работал и с *sql.DB, и с оберткой метрик
type DBExecutor = dbmetrics.DBExecutor
