package viewstate

import (
	"fmt"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
)

// OpenIncident открывает диалог инцидента для комнаты.
// Повторное открытие просто перепривязывает комнату.
func (p *Page) OpenIncident(roomID int64) error {
	if err := p.requireLoaded(); err != nil {
		return err
	}
	if p.Incident.Phase == DialogSubmitting {
		return ErrSubmitInProgress
	}
	p.Incident.Phase = DialogOpen
	p.Incident.RoomID = &roomID
	p.Incident.LastError = ""
	return nil
}

// CloseIncident закрывает диалог инцидента. Текст описания сохраняется.
func (p *Page) CloseIncident() error {
	if p.Incident.Phase == DialogSubmitting {
		return ErrSubmitInProgress
	}
	p.Incident.Phase = DialogClosed
	p.Incident.RoomID = nil
	p.Incident.LastError = ""
	return nil
}

// BeginIncidentSubmit переводит диалог в отправку и возвращает ID комнаты
func (p *Page) BeginIncidentSubmit(description string) (int64, error) {
	if err := p.requireLoaded(); err != nil {
		return 0, err
	}
	if p.Incident.Phase == DialogSubmitting {
		return 0, ErrSubmitInProgress
	}
	if p.Incident.RoomID == nil {
		return 0, ErrNoRoomSelected
	}
	if p.Incident.Phase == DialogClosed {
		return 0, ErrDialogClosed
	}

	p.Incident.Phase = DialogSubmitting
	p.Incident.Description = description
	p.Incident.LastError = ""
	return *p.Incident.RoomID, nil
}

// CompleteIncident добавляет созданный инцидент и закрывает диалог
func (p *Page) CompleteIncident(incident domain.Incident) error {
	if p.Incident.Phase != DialogSubmitting {
		return fmt.Errorf("%w: complete incident from phase %s", ErrInvalidTransition, p.Incident.Phase)
	}
	p.Data.Incidents = append(p.Data.Incidents, incident)
	p.Incident = IncidentDialog{Phase: DialogClosed}
	p.notify(NoticeSuccess, domain.MsgIncidentSubmitted)
	return nil
}

// FailIncident оставляет диалог открытым для повторной попытки
func (p *Page) FailIncident() error {
	if p.Incident.Phase != DialogSubmitting {
		return fmt.Errorf("%w: fail incident from phase %s", ErrInvalidTransition, p.Incident.Phase)
	}
	p.Incident.Phase = DialogError
	p.Incident.LastError = domain.MsgIncidentFailed
	p.notify(NoticeError, domain.MsgIncidentFailed)
	return nil
}
