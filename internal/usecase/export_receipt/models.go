package export_receipt

// Request запрос на выгрузку квитанции
type Request struct {
	SessionID     string
	Subject       string
	ReservationID int64
}

// Response готовый PDF документ
type Response struct {
	FileName string
	Content  []byte
}
