package domain

// Правила доступности (DS)
const (
	MinDurationMinutes = 30  // 0.5 часа
	MaxDurationMinutes = 240 // 4 часа

	MinAdvanceHours = 1  // минимальное время от "сейчас" до начала резервации
	MaxAdvanceDays  = 30 // максимальный горизонт бронирования
)

// Слоты доступности
const (
	SlotDurationMinutes = 30
)

// Поиск окна при вытеснении (displacement)
const (
	DisplacementStepMinutes  = 30
	DisplacementMaxDaysAhead = 30
)

// Форматы даты и времени
// Полные метки хранятся и передаются как "YYYY-MM-DD HH:MM:SS" (см. pkg/types)
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04:05"
)

// Дни недели
//
// В системе сознательно сосуществуют два соглашения, унаследованные от Data Layer:
//   - рабочие часы полей: 0=воскресенье .. 6=суббота (time.Weekday)
//   - смены менеджеров: ISO, 1=понедельник .. 7=воскресенье
const (
	ShiftDayMonday = 1
	ShiftDaySunday = 7
)
