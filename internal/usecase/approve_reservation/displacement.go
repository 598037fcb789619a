package approve_reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/internal/integrations/datalayer"
	"github.com/m04kA/SFB-ReservationBroker/pkg/ptr"
	"github.com/m04kA/SFB-ReservationBroker/pkg/types"
)

// Причина отмены вытесненной резервации, для которой не нашлось окна
const displacedCancellationReason = "displaced, no slot available"

// claimedWindow окно, занятое перенесённым кандидатом в рамках текущего
// прогона вытеснения. Data Layer ещё может не отражать перенос на момент
// проверки следующего кандидата, поэтому занятые окна учитываются локально
type claimedWindow struct {
	start time.Time
	end   time.Time
}

// displacer жадный поиск вытеснения для одобряемой championship-резервации.
// Обрабатывает кандидатов строго последовательно; сбой на одном кандидате
// логируется и не прерывает ни остальных кандидатов, ни само одобрение
type displacer struct {
	conflicts ConflictDetector
	mutator   ReservationMutator
	logger    Logger
}

// run вытесняет резервации, конфликтующие с одобряемой и имеющие строго
// худший (численно больший) приоритет. Кандидаты с равным или лучшим
// приоритетом не затрагиваются. Каждый кандидат либо переносится в первое
// свободное окно той же длительности, либо отменяется
func (d *displacer) run(ctx context.Context, approved *domain.Reservation, approverID int64, now time.Time) []DisplacedReservation {
	conflicts, err := d.conflicts.Check(ctx, approved.FieldID,
		approved.StartDatetime, approved.EndDatetime, &approved.ID)
	if err != nil {
		d.logger.Error("Displacement: conflict check failed for reservation id=%d: %v", approved.ID, err)
		return nil
	}

	displaced := make([]DisplacedReservation, 0)
	var claimed []claimedWindow

	for _, candidate := range conflicts {
		if candidate.Priority <= approved.Priority {
			continue
		}

		duration := candidate.EndDatetime.Sub(candidate.StartDatetime)

		// Поиск начинается от собственного конца кандидата
		newStart, newEnd, found := d.findSlot(ctx, approved.FieldID, candidate.ID,
			candidate.EndDatetime, duration, claimed)

		if found {
			note := fmt.Sprintf("[Displaced by championship ID %d]", approved.ID)
			if candidate.Notes != nil && *candidate.Notes != "" {
				note = *candidate.Notes + " " + note
			}

			_, err := d.mutator.UpdateReservation(ctx, candidate.ID, datalayer.UpdateReservationData{
				StartDatetime: ptr.Ptr(types.FormatDateTime(newStart)),
				EndDatetime:   ptr.Ptr(types.FormatDateTime(newEnd)),
				Notes:         &note,
			})
			if err != nil {
				d.logger.Error("Displacement: failed to relocate reservation id=%d: %v", candidate.ID, err)
				continue
			}

			claimed = append(claimed, claimedWindow{start: newStart, end: newEnd})
			displaced = append(displaced, DisplacedReservation{
				ReservationID: candidate.ID,
				Outcome:       OutcomeRelocated,
				NewStart:      &newStart,
				NewEnd:        &newEnd,
			})
			d.logger.Info("Displacement: relocated reservation id=%d to %s - %s",
				candidate.ID, types.FormatDateTime(newStart), types.FormatDateTime(newEnd))
			continue
		}

		// Свободного окна в горизонте нет: кандидат отменяется
		_, err = d.mutator.PatchReservationStatus(ctx, candidate.ID, datalayer.PatchStatusData{
			Status:             string(domain.StatusCancelled),
			CancelledBy:        &approverID,
			CancelledAt:        ptr.Ptr(types.FormatDateTime(now)),
			CancellationReason: ptr.Ptr(displacedCancellationReason),
		})
		if err != nil {
			d.logger.Error("Displacement: failed to cancel reservation id=%d: %v", candidate.ID, err)
			continue
		}

		displaced = append(displaced, DisplacedReservation{
			ReservationID: candidate.ID,
			Outcome:       OutcomeCancelled,
		})
		d.logger.Warn("Displacement: no slot within horizon, cancelled reservation id=%d", candidate.ID)
	}

	return displaced
}

// findSlot пробует окна той же длительности с шагом 30 минут от startSearch
// до горизонта в 30 дней. Окно подходит, если Data Layer не видит по нему
// конфликтов и оно не занято другим кандидатом этого же прогона.
// Ошибка проверки трактуется как конфликт, поиск продолжается
func (d *displacer) findSlot(ctx context.Context, fieldID, candidateID int64, startSearch time.Time, duration time.Duration, claimed []claimedWindow) (time.Time, time.Time, bool) {
	step := time.Duration(domain.DisplacementStepMinutes) * time.Minute
	deadline := startSearch.Add(time.Duration(domain.DisplacementMaxDaysAhead) * 24 * time.Hour)

	for probe := startSearch; !probe.After(deadline); probe = probe.Add(step) {
		probeEnd := probe.Add(duration)

		if overlapsClaimed(probe, probeEnd, claimed) {
			continue
		}

		conflicts, err := d.conflicts.Check(ctx, fieldID, probe, probeEnd, &candidateID)
		if err != nil {
			d.logger.Warn("Displacement: probe check failed for field=%d at %s: %v",
				fieldID, types.FormatDateTime(probe), err)
			continue
		}
		if len(conflicts) == 0 {
			return probe, probeEnd, true
		}
	}

	return time.Time{}, time.Time{}, false
}

func overlapsClaimed(start, end time.Time, claimed []claimedWindow) bool {
	for _, w := range claimed {
		if domain.IntervalsOverlap(start, end, w.start, w.end) {
			return true
		}
	}
	return false
}
