package load_profile

import "github.com/m04kA/SMC-ProfileService/internal/viewstate"

// Request запрос на загрузку данных страницы
type Request struct {
	SessionID string
	Subject   string
}

// Response результат загрузки.
// Ошибка загрузки из hotel API отражается в Page.Data, а не в error.
type Response struct {
	Page *viewstate.Page
}
