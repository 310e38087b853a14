package hotelapi

import "errors"

var (
	// ErrUnauthorized возвращается при 401/403 от hotel API
	ErrUnauthorized = errors.New("hotelapi client: unauthorized")

	// ErrNotFound возвращается при 404 от hotel API
	ErrNotFound = errors.New("hotelapi client: resource not found")

	// ErrInternal возвращается при внутренних ошибках клиента (сборка запроса, сеть)
	ErrInternal = errors.New("hotelapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("hotelapi client: invalid response")
)
