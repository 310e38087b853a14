package handlers

import "net/http"

// Сообщения страницы ошибки
const (
	MsgSignIn         = "Please sign in to see your profile."
	MsgSomethingWrong = "Something went wrong. Please try again."
	MsgNotFound       = "The requested item was not found."
)

// ErrorPage отрисовывает HTML страницу ошибки
type ErrorPage interface {
	Error(w http.ResponseWriter, status int, message string) error
}

// RespondErrorPage отдаёт HTML страницу ошибки, при сбое шаблона отдаёт текст
func RespondErrorPage(w http.ResponseWriter, page ErrorPage, status int, message string) {
	if err := page.Error(w, status, message); err != nil {
		http.Error(w, message, status)
	}
}
