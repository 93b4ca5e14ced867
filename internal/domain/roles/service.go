package roles

import "time"

type Service struct {
	loc *time.Location
	now func() time.Time
}

// NewService usa loc para decidir qué día es; nil => time.Local.
func NewService(loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		loc: loc,
		now: time.Now,
	}
}

// Today devuelve la fecha local y su rol.
func (s *Service) Today() (time.Time, Role) {
	now := s.now().In(s.loc)
	return now, ForWeekday(now.Weekday())
}
