package declare_incident

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или принадлежит другому пользователю
	ErrSessionNotFound = errors.New("declare_incident: session not found")

	// ErrNotLoaded возвращается, когда данные страницы ещё не загружены
	ErrNotLoaded = errors.New("declare_incident: page data not loaded")

	// ErrSubmitInProgress возвращается при повторной отправке до получения ответа
	ErrSubmitInProgress = errors.New("declare_incident: submission already in progress")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("declare_incident: internal error")
)
