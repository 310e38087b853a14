package receipt

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrRender возвращается при ошибке построения PDF документа
	ErrRender = errors.New("receipt: failed to render document")

	// ErrLogo возвращается, когда логотип не удалось прочитать
	ErrLogo = errors.New("receipt: failed to load logo")
)

// Document данные квитанции. Квитанция не хранится и может быть перегенерирована в любой момент.
type Document struct {
	RoomNumber   string
	ResidentName string
	Email        string
	Price        float64
}

// Exporter узкий интерфейс экспорта документа, отделяющий рендеринг от логики страницы
type Exporter interface {
	Export(doc Document) ([]byte, error)
}

// FileName имя файла квитанции для бронирования комнаты
func FileName(roomNumber string) string {
	return "receipt_room_" + roomNumber + ".pdf"
}

// FormatPrice форматирует цену с двумя знаками после запятой и валютой
func FormatPrice(price float64, currency string) string {
	return fmt.Sprintf("%.2f %s", price, currency)
}

// LoadLogo читает PNG логотип с диска
func LoadLogo(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLogo, err)
	}
	return data, nil
}
