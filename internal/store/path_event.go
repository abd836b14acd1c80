package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skillpath/ent"
	"github.com/abhisek/skillpath/ent/pathevent"
)

// Path event actions.
const (
	ActionModuleProgress = "module_progress"
	ActionModuleComplete = "module_complete"
)

func (r *eventRepo) AppendPathEvent(ctx context.Context, data PathEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PathEvent.Create().
		SetSequence(seqNum).
		SetPathID(data.PathID).
		SetAction(data.Action).
		SetModuleIndex(data.ModuleIndex).
		SetPercent(data.Percent).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save path event: %w", err)
	}

	return nil
}

func (r *eventRepo) ModuleEvents(ctx context.Context, pathID string) ([]*ModuleEvent, error) {
	rows, err := r.client.PathEvent.Query().
		Where(pathevent.PathID(pathID)).
		Order(ent.Asc(pathevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query path events: %w", err)
	}

	out := make([]*ModuleEvent, len(rows))
	for i, row := range rows {
		out[i] = &ModuleEvent{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			PathEventData: PathEventData{
				PathID:      row.PathID,
				Action:      row.Action,
				ModuleIndex: row.ModuleIndex,
				Percent:     row.Percent,
			},
		}
	}
	return out, nil
}
