package directory

import "errors"

var (
	// ErrStudentNotFound возвращается, когда студент не найден в справочнике
	ErrStudentNotFound = errors.New("directory: student not found")

	// ErrInvalidResponse возвращается при некорректном ответе справочника
	ErrInvalidResponse = errors.New("directory: invalid response")

	// ErrServiceDegraded возвращается, когда справочник недоступен
	// Вызывающая сторона может продолжить работу без проверки
	ErrServiceDegraded = errors.New("directory: service unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("directory: internal error")
)
