package center

import "errors"

var (
	// ErrCenterNotFound возвращается, когда сервис-центр не найден
	ErrCenterNotFound = errors.New("center.repository: service center not found")

	// ErrNoCenters возвращается, когда в системе нет ни одного сервис-центра
	ErrNoCenters = errors.New("center.repository: no service centers configured")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("center.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("center.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("center.repository: failed to scan row")
)
