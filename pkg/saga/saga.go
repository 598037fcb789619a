package saga

import (
	"context"
	"fmt"
)

// Step именованный шаг саги: прямое действие и необязательная компенсация
// Компенсация шага выполняется, только если его прямое действие успело завершиться
type Step struct {
	Name       string
	Run        func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Saga последовательность шагов с компенсацией при сбое
// Data Layer не предоставляет межсущностных транзакций, поэтому многошаговые
// процессы (например, резервация + связанный матч) оформляются как сага:
// при сбое шага N компенсируются шаги N-1..1 в обратном порядке
type Saga struct {
	name   string
	steps  []Step
	logger Logger
}

// New создает сагу с именем процесса
func New(name string, logger Logger) *Saga {
	return &Saga{name: name, logger: logger}
}

// AddStep добавляет шаг в конец саги
func (s *Saga) AddStep(step Step) *Saga {
	s.steps = append(s.steps, step)
	return s
}

// Execute выполняет шаги по порядку. При ошибке шага запускает компенсации
// уже выполненных шагов в обратном порядке и возвращает исходную ошибку.
// Ошибки компенсаций логируются, но не маскируют исходную ошибку
func (s *Saga) Execute(ctx context.Context) error {
	completed := make([]Step, 0, len(s.steps))

	for _, step := range s.steps {
		s.logger.Info("saga %s: running step %s", s.name, step.Name)

		if err := step.Run(ctx); err != nil {
			s.logger.Warn("saga %s: step %s failed: %v", s.name, step.Name, err)
			s.compensate(ctx, completed)
			return fmt.Errorf("saga %s: step %s: %w", s.name, step.Name, err)
		}

		completed = append(completed, step)
	}

	return nil
}

func (s *Saga) compensate(ctx context.Context, completed []Step) {
	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.Compensate == nil {
			continue
		}

		s.logger.Info("saga %s: compensating step %s", s.name, step.Name)
		if err := step.Compensate(ctx); err != nil {
			// Компенсация не удалась - фиксируем, ручное вмешательство
			s.logger.Error("saga %s: compensation for step %s failed: %v", s.name, step.Name, err)
		}
	}
}
