package create_booking

import "errors"

var (
	// ErrSlotNotFound возвращается, когда метка времени не соответствует
	// ни одному слоту каталога
	ErrSlotNotFound = errors.New("create_booking: time slot not found")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomNotBookable возвращается, когда комната не принимает заявки
	ErrRoomNotBookable = errors.New("create_booking: room is not bookable")

	// ErrStudentNotFound возвращается, когда заявитель не найден в справочнике
	ErrStudentNotFound = errors.New("create_booking: student not found in directory")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
