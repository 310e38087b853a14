package export_receipt

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или принадлежит другому пользователю
	ErrSessionNotFound = errors.New("export_receipt: session not found")

	// ErrNotLoaded возвращается, когда данные страницы ещё не загружены
	ErrNotLoaded = errors.New("export_receipt: page data not loaded")

	// ErrReservationNotFound возвращается, когда бронирования нет на странице
	ErrReservationNotFound = errors.New("export_receipt: reservation not found")

	// ErrNotPaid возвращается, когда бронирование ещё не оплачено
	ErrNotPaid = errors.New("export_receipt: reservation is not paid")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("export_receipt: internal error")
)
