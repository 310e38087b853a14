package handlers

// Адреса страниц профиля
const (
	PathProfile        = "/profile"
	PathProfileCurrent = "/profile/current"
)
