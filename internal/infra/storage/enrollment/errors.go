package enrollment

import "errors"

var (
	// ErrEnrollmentNotFound возвращается, когда у пользователя нет регистрации
	ErrEnrollmentNotFound = errors.New("enrollment.repository: enrollment not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("enrollment.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("enrollment.repository: failed to scan row")
)
