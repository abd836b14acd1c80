package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/skillpath/ent"
	"github.com/abhisek/skillpath/ent/learningpath"
	"github.com/abhisek/skillpath/internal/pathgen"
)

// pathRepo implements PathRepo backed by ent.
type pathRepo struct {
	client *ent.Client
}

func (r *pathRepo) Save(ctx context.Context, userID string, c *pathgen.Curriculum) (string, error) {
	doc, err := curriculumToDoc(c)
	if err != nil {
		return "", &StoreFailure{Op: "save", Err: err}
	}

	row, err := r.client.LearningPath.Create().
		SetUserID(userID).
		SetData(doc).
		Save(ctx)
	if err != nil {
		return "", &StoreFailure{Op: "save", Err: err}
	}

	return row.ID, nil
}

func (r *pathRepo) Get(ctx context.Context, ref string) (*PathRecord, error) {
	row, err := r.client.LearningPath.Get(ctx, ref)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, &StoreFailure{Op: "get", Err: err}
	}
	return recordFromRow(row)
}

func (r *pathRepo) Latest(ctx context.Context, userID string) (*PathRecord, error) {
	row, err := r.client.LearningPath.Query().
		Where(learningpath.UserID(userID)).
		Order(ent.Desc(learningpath.FieldGenerated)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, &StoreFailure{Op: "latest", Err: err}
	}
	return recordFromRow(row)
}

func (r *pathRepo) List(ctx context.Context, userID string) ([]*PathRecord, error) {
	rows, err := r.client.LearningPath.Query().
		Where(learningpath.UserID(userID)).
		Order(ent.Desc(learningpath.FieldGenerated)).
		All(ctx)
	if err != nil {
		return nil, &StoreFailure{Op: "list", Err: err}
	}

	out := make([]*PathRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := recordFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *pathRepo) SetProgress(ctx context.Context, ref string, percent int) error {
	if percent < 0 || percent > 100 {
		return fmt.Errorf("progress %d out of range [0, 100]", percent)
	}

	err := r.client.LearningPath.UpdateOneID(ref).
		SetProgress(percent).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return &StoreFailure{Op: "set progress", Err: err}
	}
	return nil
}

func (r *pathRepo) Archive(ctx context.Context, ref string) error {
	err := r.client.LearningPath.UpdateOneID(ref).
		SetStatus(learningpath.StatusArchived).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return &StoreFailure{Op: "archive", Err: err}
	}
	return nil
}

// curriculumToDoc converts a typed curriculum to the JSON document shape
// stored in the data column.
func curriculumToDoc(c *pathgen.Curriculum) (map[string]any, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal curriculum: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("document shape: %w", err)
	}
	return doc, nil
}

func recordFromRow(row *ent.LearningPath) (*PathRecord, error) {
	raw, err := json.Marshal(row.Data)
	if err != nil {
		return nil, &StoreFailure{Op: "decode", Err: err}
	}
	var c pathgen.Curriculum
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, &StoreFailure{Op: "decode", Err: err}
	}

	return &PathRecord{
		Ref:        row.ID,
		UserID:     row.UserID,
		Generated:  row.Generated,
		Status:     Status(row.Status),
		Progress:   row.Progress,
		Curriculum: &c,
	}, nil
}
