package domain

// User профиль текущего пользователя, как его отдаёт hotel API
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Room снимок комнаты, встроенный в бронирование или инцидент
type Room struct {
	ID          int64   `json:"id"`
	Image       string  `json:"image"`
	Numero      string  `json:"numero"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// Technician техник, назначенный на инцидент
type Technician struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Speciality string `json:"speciality"`
}
