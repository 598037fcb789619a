package conflicts

import (
	"context"
	"time"

	"github.com/m04kA/SFB-ReservationBroker/internal/integrations/datalayer"
)

// OverlapChecker интерфейс запроса пересечений к Data Layer
type OverlapChecker interface {
	CheckOverlap(ctx context.Context, fieldID int64, start, end time.Time) (*datalayer.OverlapResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
