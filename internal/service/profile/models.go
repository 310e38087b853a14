package profile

// Dialog модальный диалог страницы профиля
type Dialog string

const (
	DialogIncident Dialog = "incident"
	DialogPayment  Dialog = "payment"
)

// ParseDialog разбирает имя диалога из URL
func ParseDialog(s string) (Dialog, error) {
	switch Dialog(s) {
	case DialogIncident, DialogPayment:
		return Dialog(s), nil
	default:
		return "", ErrUnknownDialog
	}
}
