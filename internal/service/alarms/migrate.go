package alarms

import (
	"context"
	"fmt"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/metrics"
	"github.com/oshokin/alarm-clock/internal/repository/legacy"
)

// migrate moves every legacy row into the store, one row at a time.
//
// Each row is deleted from the legacy database once processed, including rows
// that failed to convert: those are logged and dropped rather than retried on
// every start. A crash mid-way leaves the remaining rows for the next start.
// Rows that were stored but could not be scheduled are returned as start errors.
func (r *Registry) migrate(ctx context.Context) ([]error, error) {
	if r.legacy == nil {
		return nil, nil
	}

	rows, err := r.legacy.Query(ctx)
	if err != nil {
		return nil, fmt.Errorf("query legacy alarms: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	var startErrs []error

	logger.WarnKV(ctx, "Migrating legacy alarms", "count", len(rows))

	for _, row := range rows {
		def, err := r.migrateRow(ctx, row)
		metrics.IncMigratedRow(err)

		switch {
		case err != nil && def.ID != 0:
			// Stored, but the scheduler refused it; the next start retries.
			logger.ErrorKV(ctx, "Migrated legacy alarm is not scheduled",
				"legacy_id", row.ID, "alarm_id", def.ID, "error", err)

			startErrs = append(startErrs, err)
		case err != nil:
			logger.ErrorKV(ctx, "Dropping legacy alarm", "legacy_id", row.ID, "error", err)
		default:
			logger.InfoKV(ctx, "Migrated legacy alarm", "legacy_id", row.ID, "alarm_id", def.ID, "state", def.State)
		}

		if err = r.legacy.Delete(ctx, row.ID); err != nil {
			logger.ErrorKV(ctx, "Failed to delete legacy alarm", "legacy_id", row.ID, "error", err)
		}
	}

	return startErrs, nil
}

func (r *Registry) migrateRow(ctx context.Context, row legacy.Row) (domain.Definition, error) {
	settings, err := row.Definition()
	if err != nil {
		return domain.Definition{}, err
	}

	return r.createAlarm(ctx, settings)
}
