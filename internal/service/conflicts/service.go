package conflicts

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
)

// Detector детектор конфликтов расписания
// Запрашивает у Data Layer резервации, пересекающиеся с окном
// (field, start, end), и нормализует результат в доменные конфликты
//
// Два интервала конфликтуют тогда и только тогда, когда
// a.start < b.end && a.end > b.start (полуоткрытые интервалы,
// соприкасающиеся границами резервации не конфликтуют) - само
// сравнение выполняет Data Layer, детектор доверяет его ответу
type Detector struct {
	overlapChecker OverlapChecker
	logger         Logger
}

// NewDetector создает детектор конфликтов
func NewDetector(overlapChecker OverlapChecker, logger Logger) *Detector {
	return &Detector{
		overlapChecker: overlapChecker,
		logger:         logger,
	}
}

// Check возвращает резервации, конфликтующие с окном (fieldID, start, end)
// excludeID исключает резервацию из результата - обязательно при повторной
// проверке во время вытеснения, чтобы резервация не конфликтовала сама с собой
func (d *Detector) Check(ctx context.Context, fieldID int64, start, end time.Time, excludeID *int64) ([]domain.Conflict, error) {
	result, err := d.overlapChecker.CheckOverlap(ctx, fieldID, start, end)
	if err != nil {
		d.logger.Error("Check: overlap query failed for field=%d: %v", fieldID, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if !result.HasConflict {
		return []domain.Conflict{}, nil
	}

	conflicts := make([]domain.Conflict, 0, len(result.Conflicts))
	for i := range result.Conflicts {
		c, err := result.Conflicts[i].ToDomain()
		if err != nil {
			d.logger.Error("Check: failed to normalize conflict for field=%d: %v", fieldID, err)
			return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
		}

		if excludeID != nil && c.ID == *excludeID {
			continue
		}

		conflicts = append(conflicts, *c)
	}

	return conflicts, nil
}
