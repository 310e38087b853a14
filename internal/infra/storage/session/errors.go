package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session.store: session not found")

	// ErrStorage возвращается при ошибках хранилища
	ErrStorage = errors.New("session.store: storage error")

	// ErrConflict возвращается, когда не удалось применить изменение из-за конкурентной записи
	ErrConflict = errors.New("session.store: concurrent update conflict")

	// ErrJanitor возвращается, когда не удалось запустить очистку сессий
	ErrJanitor = errors.New("session.store: janitor error")
)
