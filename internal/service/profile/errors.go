package profile

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена, истекла или принадлежит другому пользователю
	ErrSessionNotFound = errors.New("profile.service: session not found")

	// ErrRoomNotFound возвращается, когда комнаты нет среди бронирований пользователя
	ErrRoomNotFound = errors.New("profile.service: room not found")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("profile.service: reservation not found")

	// ErrUnknownDialog возвращается при попытке закрыть неизвестный диалог
	ErrUnknownDialog = errors.New("profile.service: unknown dialog")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("profile.service: internal error")
)
