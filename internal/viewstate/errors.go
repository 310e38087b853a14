package viewstate

import "errors"

var (
	// ErrInvalidTransition возвращается при недопустимом переходе состояния
	ErrInvalidTransition = errors.New("viewstate: invalid transition")

	// ErrNotLoaded возвращается, когда действие требует загруженных данных
	ErrNotLoaded = errors.New("viewstate: page data not loaded")

	// ErrSubmitInProgress возвращается при повторной отправке формы до получения ответа
	ErrSubmitInProgress = errors.New("viewstate: submission already in progress")

	// ErrDialogClosed возвращается при отправке закрытого диалога
	ErrDialogClosed = errors.New("viewstate: dialog is closed")

	// ErrNoRoomSelected возвращается при отправке инцидента без выбранной комнаты
	ErrNoRoomSelected = errors.New("viewstate: no room selected")

	// ErrNoReservationSelected возвращается при оплате без выбранного бронирования
	ErrNoReservationSelected = errors.New("viewstate: no reservation selected")

	// ErrEmailRequired возвращается при оплате с пустым email
	ErrEmailRequired = errors.New("viewstate: email is required")

	// ErrForeignSession возвращается, когда сессия принадлежит другому пользователю
	ErrForeignSession = errors.New("viewstate: session belongs to another subject")
)

// IsSilentGuard сообщает, что сработало защитное условие
// Такие действия прерываются без уведомления пользователя и без запроса в hotel API.
func IsSilentGuard(err error) bool {
	return errors.Is(err, ErrNoRoomSelected) ||
		errors.Is(err, ErrNoReservationSelected) ||
		errors.Is(err, ErrEmailRequired) ||
		errors.Is(err, ErrDialogClosed)
}
