// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillpath/ent/learningpath"
	"github.com/abhisek/skillpath/ent/predicate"
)

// LearningPathUpdate is the builder for updating LearningPath entities.
type LearningPathUpdate struct {
	config
	hooks    []Hook
	mutation *LearningPathMutation
}

// Where appends a list predicates to the LearningPathUpdate builder.
func (_u *LearningPathUpdate) Where(ps ...predicate.LearningPath) *LearningPathUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LearningPathUpdate) SetUserID(v string) *LearningPathUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableUserID(v *string) *LearningPathUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LearningPathUpdate) SetStatus(v learningpath.Status) *LearningPathUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableStatus(v *learningpath.Status) *LearningPathUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *LearningPathUpdate) SetProgress(v int) *LearningPathUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableProgress(v *int) *LearningPathUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *LearningPathUpdate) AddProgress(v int) *LearningPathUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetData sets the "data" field.
func (_u *LearningPathUpdate) SetData(v map[string]interface{}) *LearningPathUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the LearningPathMutation object of the builder.
func (_u *LearningPathUpdate) Mutation() *LearningPathMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningPathUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPathUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningPathUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPathUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningPathUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := learningpath.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningPath.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := learningpath.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LearningPath.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningPathUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningpath.Table, learningpath.Columns, sqlgraph.NewFieldSpec(learningpath.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learningpath.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(learningpath.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(learningpath.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(learningpath.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(learningpath.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningpath.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningPathUpdateOne is the builder for updating a single LearningPath entity.
type LearningPathUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningPathMutation
}

// SetUserID sets the "user_id" field.
func (_u *LearningPathUpdateOne) SetUserID(v string) *LearningPathUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableUserID(v *string) *LearningPathUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LearningPathUpdateOne) SetStatus(v learningpath.Status) *LearningPathUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableStatus(v *learningpath.Status) *LearningPathUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *LearningPathUpdateOne) SetProgress(v int) *LearningPathUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableProgress(v *int) *LearningPathUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *LearningPathUpdateOne) AddProgress(v int) *LearningPathUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetData sets the "data" field.
func (_u *LearningPathUpdateOne) SetData(v map[string]interface{}) *LearningPathUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the LearningPathMutation object of the builder.
func (_u *LearningPathUpdateOne) Mutation() *LearningPathMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningPathUpdate builder.
func (_u *LearningPathUpdateOne) Where(ps ...predicate.LearningPath) *LearningPathUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningPathUpdateOne) Select(field string, fields ...string) *LearningPathUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningPath entity.
func (_u *LearningPathUpdateOne) Save(ctx context.Context) (*LearningPath, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPathUpdateOne) SaveX(ctx context.Context) *LearningPath {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningPathUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPathUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningPathUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := learningpath.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningPath.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := learningpath.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LearningPath.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningPathUpdateOne) sqlSave(ctx context.Context) (_node *LearningPath, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningpath.Table, learningpath.Columns, sqlgraph.NewFieldSpec(learningpath.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningPath.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningpath.FieldID)
		for _, f := range fields {
			if !learningpath.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningpath.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learningpath.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(learningpath.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(learningpath.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(learningpath.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(learningpath.FieldData, field.TypeJSON, value)
	}
	_node = &LearningPath{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningpath.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
