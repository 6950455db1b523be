package event

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("event.repository: event not found")

	// ErrEventAlreadyExists возвращается при попытке создать событие
	// с уже занятым интервалом (start_at, end_at) - нарушение уникального ограничения
	ErrEventAlreadyExists = errors.New("event.repository: event with this interval already exists")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("event.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("event.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("event.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("event.repository: failed to scan row")
)
