package schedule

import (
	"github.com/d1mas/BC-SchedulingService/pkg/dbmetrics"
)

// DBExecutor интерфейс для выполнения запросов к БД
type DBExecutor = dbmetrics.DBExecutor

// TxExecutor интерфейс для выполнения запросов в транзакции
type TxExecutor = dbmetrics.TxExecutor
