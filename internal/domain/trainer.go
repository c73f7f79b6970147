package domain

// Trainer тренер зала
// Данные принадлежат админскому контуру; этот сервис их только читает
type Trainer struct {
	ID             int64
	Name           string
	Specialization string
	IsActive       bool
}

// ServesClassType возвращает true, если тренер ведет занятия указанного типа
func (t *Trainer) ServesClassType(classType string) bool {
	return t.Specialization == classType
}
