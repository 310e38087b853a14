package load_profile

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или принадлежит другому пользователю
	ErrSessionNotFound = errors.New("load_profile: session not found")

	// ErrLoadInProgress возвращается, когда загрузка уже выполняется
	ErrLoadInProgress = errors.New("load_profile: load already in progress")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("load_profile: internal error")
)
