package viewstate

import (
	"time"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
)

// LoadPhase фаза загрузки данных страницы
type LoadPhase string

const (
	LoadIdle    LoadPhase = "idle"
	LoadLoading LoadPhase = "loading"
	LoadLoaded  LoadPhase = "loaded"
	LoadError   LoadPhase = "error"
)

// SectionStatus результат загрузки одной секции страницы
type SectionStatus string

const (
	SectionPending SectionStatus = "pending"
	SectionSuccess SectionStatus = "success"
	SectionFailure SectionStatus = "failure"
)

// DialogPhase фаза модального диалога
type DialogPhase string

const (
	DialogClosed     DialogPhase = "closed"
	DialogOpen       DialogPhase = "open"
	DialogSubmitting DialogPhase = "submitting"
	DialogError      DialogPhase = "error"
)

// NoticeKind тип всплывающего уведомления
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// SectionResult независимо отслеживаемый результат одного запроса загрузки
type SectionResult struct {
	Status SectionStatus `json:"status"`
	Error  string        `json:"error,omitempty"`
}

// Sections результаты трёх запросов загрузки
type Sections struct {
	Profile      SectionResult `json:"profile"`
	Reservations SectionResult `json:"reservations"`
	Incidents    SectionResult `json:"incidents"`
}

// Data загруженные данные страницы
type Data struct {
	Phase        LoadPhase            `json:"phase"`
	User         domain.User          `json:"user"`
	Reservations []domain.Reservation `json:"reservations"`
	Incidents    []domain.Incident    `json:"incidents"`
	Sections     Sections             `json:"sections"`
	Error        string               `json:"error,omitempty"`
}

// IncidentDialog состояние диалога заявки об инциденте
type IncidentDialog struct {
	Phase       DialogPhase `json:"phase"`
	RoomID      *int64      `json:"roomId,omitempty"`
	Description string      `json:"description"`
	LastError   string      `json:"lastError,omitempty"`
}

// PaymentDialog состояние диалога оплаты
type PaymentDialog struct {
	Phase         DialogPhase `json:"phase"`
	ReservationID *int64      `json:"reservationId,omitempty"`
	Email         string      `json:"email"`
	EmailHint     string      `json:"emailHint,omitempty"`
	LastError     string      `json:"lastError,omitempty"`
}

// Notice уведомление, которое показывается один раз
type Notice struct {
	Kind NoticeKind `json:"kind"`
	Text string     `json:"text"`
}

// Page состояние одной сессии страницы профиля
type Page struct {
	ID        string         `json:"id"`
	Subject   string         `json:"subject"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Data      Data           `json:"data"`
	Incident  IncidentDialog `json:"incident"`
	Payment   PaymentDialog  `json:"payment"`
	Notice    *Notice        `json:"notice,omitempty"`
}

// LoadResult итог трёх запросов загрузки, каждый со своей ошибкой
type LoadResult struct {
	User            *domain.User
	UserErr         error
	Reservations    []domain.Reservation
	ReservationsErr error
	Incidents       []domain.Incident
	IncidentsErr    error
}

// Failed returns true if at least one of the requests failed
func (r LoadResult) Failed() bool {
	return r.UserErr != nil || r.ReservationsErr != nil || r.IncidentsErr != nil
}

// New создает новую сессию страницы в исходном состоянии
func New(id, subject string, now time.Time) *Page {
	return &Page{
		ID:        id,
		Subject:   subject,
		CreatedAt: now,
		UpdatedAt: now,
		Data:      Data{Phase: LoadIdle},
		Incident:  IncidentDialog{Phase: DialogClosed},
		Payment:   PaymentDialog{Phase: DialogClosed},
	}
}

// Touch обновляет время последнего изменения
func (p *Page) Touch(now time.Time) {
	p.UpdatedAt = now
}

// Clone возвращает глубокую копию состояния
func (p *Page) Clone() *Page {
	if p == nil {
		return nil
	}
	c := *p
	if p.Data.Reservations != nil {
		c.Data.Reservations = make([]domain.Reservation, len(p.Data.Reservations))
		copy(c.Data.Reservations, p.Data.Reservations)
	}
	if p.Data.Incidents != nil {
		c.Data.Incidents = make([]domain.Incident, len(p.Data.Incidents))
		for i, inc := range p.Data.Incidents {
			if inc.Technician != nil {
				tech := *inc.Technician
				inc.Technician = &tech
			}
			c.Data.Incidents[i] = inc
		}
	}
	if p.Incident.RoomID != nil {
		id := *p.Incident.RoomID
		c.Incident.RoomID = &id
	}
	if p.Payment.ReservationID != nil {
		id := *p.Payment.ReservationID
		c.Payment.ReservationID = &id
	}
	if p.Notice != nil {
		n := *p.Notice
		c.Notice = &n
	}
	return &c
}

// TakeNotice возвращает уведомление и очищает его
func (p *Page) TakeNotice() *Notice {
	n := p.Notice
	p.Notice = nil
	return n
}

// CheckOwner проверяет, что сессия привязана к пользователю subject
func (p *Page) CheckOwner(subject string) error {
	if p.Subject != subject {
		return ErrForeignSession
	}
	return nil
}

func (p *Page) notify(kind NoticeKind, text string) {
	p.Notice = &Notice{Kind: kind, Text: text}
}

func (p *Page) requireLoaded() error {
	if p.Data.Phase != LoadLoaded {
		return ErrNotLoaded
	}
	return nil
}
