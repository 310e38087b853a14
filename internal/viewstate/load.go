package viewstate

import (
	"fmt"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
)

// BeginLoad переводит данные страницы в состояние загрузки
func (p *Page) BeginLoad() error {
	if p.Data.Phase == LoadLoading {
		return fmt.Errorf("%w: load already in progress", ErrInvalidTransition)
	}
	p.Data = Data{
		Phase: LoadLoading,
		Sections: Sections{
			Profile:      SectionResult{Status: SectionPending},
			Reservations: SectionResult{Status: SectionPending},
			Incidents:    SectionResult{Status: SectionPending},
		},
	}
	return nil
}

// CompleteLoad применяет результат загрузки.
// Если хотя бы один запрос упал, страница переходит в ошибку без частичных данных.
func (p *Page) CompleteLoad(res LoadResult) error {
	if p.Data.Phase != LoadLoading {
		return fmt.Errorf("%w: complete load from phase %s", ErrInvalidTransition, p.Data.Phase)
	}

	p.Data.Sections = Sections{
		Profile:      sectionOf(res.UserErr),
		Reservations: sectionOf(res.ReservationsErr),
		Incidents:    sectionOf(res.IncidentsErr),
	}

	if res.Failed() {
		p.Data.Phase = LoadError
		p.Data.Error = domain.MsgLoadFailed
		p.Data.User = domain.User{}
		p.Data.Reservations = nil
		p.Data.Incidents = nil
		return nil
	}

	if res.User != nil {
		p.Data.User = *res.User
	}
	p.Data.Reservations = nonNilReservations(res.Reservations)
	p.Data.Incidents = nonNilIncidents(res.Incidents)
	p.Data.Phase = LoadLoaded
	p.Data.Error = ""
	return nil
}

func sectionOf(err error) SectionResult {
	if err != nil {
		return SectionResult{Status: SectionFailure, Error: err.Error()}
	}
	return SectionResult{Status: SectionSuccess}
}

func nonNilReservations(list []domain.Reservation) []domain.Reservation {
	if list == nil {
		return []domain.Reservation{}
	}
	return list
}

func nonNilIncidents(list []domain.Incident) []domain.Incident {
	if list == nil {
		return []domain.Incident{}
	}
	return list
}
