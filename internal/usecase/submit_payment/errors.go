package submit_payment

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или принадлежит другому пользователю
	ErrSessionNotFound = errors.New("submit_payment: session not found")

	// ErrNotLoaded возвращается, когда данные страницы ещё не загружены
	ErrNotLoaded = errors.New("submit_payment: page data not loaded")

	// ErrSubmitInProgress возвращается при повторной отправке до получения ответа
	ErrSubmitInProgress = errors.New("submit_payment: submission already in progress")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_payment: internal error")
)
