// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillpath/ent/learningpath"
)

// LearningPathCreate is the builder for creating a LearningPath entity.
type LearningPathCreate struct {
	config
	mutation *LearningPathMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *LearningPathCreate) SetUserID(v string) *LearningPathCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetGenerated sets the "generated" field.
func (_c *LearningPathCreate) SetGenerated(v time.Time) *LearningPathCreate {
	_c.mutation.SetGenerated(v)
	return _c
}

// SetNillableGenerated sets the "generated" field if the given value is not nil.
func (_c *LearningPathCreate) SetNillableGenerated(v *time.Time) *LearningPathCreate {
	if v != nil {
		_c.SetGenerated(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *LearningPathCreate) SetStatus(v learningpath.Status) *LearningPathCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LearningPathCreate) SetNillableStatus(v *learningpath.Status) *LearningPathCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *LearningPathCreate) SetProgress(v int) *LearningPathCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *LearningPathCreate) SetNillableProgress(v *int) *LearningPathCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *LearningPathCreate) SetData(v map[string]interface{}) *LearningPathCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetID sets the "id" field.
func (_c *LearningPathCreate) SetID(v string) *LearningPathCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LearningPathCreate) SetNillableID(v *string) *LearningPathCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the LearningPathMutation object of the builder.
func (_c *LearningPathCreate) Mutation() *LearningPathMutation {
	return _c.mutation
}

// Save creates the LearningPath in the database.
func (_c *LearningPathCreate) Save(ctx context.Context) (*LearningPath, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningPathCreate) SaveX(ctx context.Context) *LearningPath {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPathCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPathCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningPathCreate) defaults() {
	if _, ok := _c.mutation.Generated(); !ok {
		v := learningpath.DefaultGenerated()
		_c.mutation.SetGenerated(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := learningpath.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := learningpath.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := learningpath.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningPathCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LearningPath.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := learningpath.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningPath.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Generated(); !ok {
		return &ValidationError{Name: "generated", err: errors.New(`ent: missing required field "LearningPath.generated"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "LearningPath.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := learningpath.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LearningPath.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "LearningPath.progress"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "LearningPath.data"`)}
	}
	return nil
}

func (_c *LearningPathCreate) sqlSave(ctx context.Context) (*LearningPath, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected LearningPath.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearningPathCreate) createSpec() (*LearningPath, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningPath{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningpath.Table, sqlgraph.NewFieldSpec(learningpath.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(learningpath.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Generated(); ok {
		_spec.SetField(learningpath.FieldGenerated, field.TypeTime, value)
		_node.Generated = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(learningpath.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(learningpath.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(learningpath.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	return _node, _spec
}

// LearningPathCreateBulk is the builder for creating many LearningPath entities in bulk.
type LearningPathCreateBulk struct {
	config
	err      error
	builders []*LearningPathCreate
}

// Save creates the LearningPath entities in the database.
func (_c *LearningPathCreateBulk) Save(ctx context.Context) ([]*LearningPath, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningPath, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningPathMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LearningPathCreateBulk) SaveX(ctx context.Context) []*LearningPath {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPathCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPathCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
