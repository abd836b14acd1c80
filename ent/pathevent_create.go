// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillpath/ent/pathevent"
)

// PathEventCreate is the builder for creating a PathEvent entity.
type PathEventCreate struct {
	config
	mutation *PathEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PathEventCreate) SetSequence(v int64) *PathEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PathEventCreate) SetTimestamp(v time.Time) *PathEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PathEventCreate) SetNillableTimestamp(v *time.Time) *PathEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetPathID sets the "path_id" field.
func (_c *PathEventCreate) SetPathID(v string) *PathEventCreate {
	_c.mutation.SetPathID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *PathEventCreate) SetAction(v string) *PathEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetModuleIndex sets the "module_index" field.
func (_c *PathEventCreate) SetModuleIndex(v int) *PathEventCreate {
	_c.mutation.SetModuleIndex(v)
	return _c
}

// SetNillableModuleIndex sets the "module_index" field if the given value is not nil.
func (_c *PathEventCreate) SetNillableModuleIndex(v *int) *PathEventCreate {
	if v != nil {
		_c.SetModuleIndex(*v)
	}
	return _c
}

// SetPercent sets the "percent" field.
func (_c *PathEventCreate) SetPercent(v int) *PathEventCreate {
	_c.mutation.SetPercent(v)
	return _c
}

// SetNillablePercent sets the "percent" field if the given value is not nil.
func (_c *PathEventCreate) SetNillablePercent(v *int) *PathEventCreate {
	if v != nil {
		_c.SetPercent(*v)
	}
	return _c
}

// Mutation returns the PathEventMutation object of the builder.
func (_c *PathEventCreate) Mutation() *PathEventMutation {
	return _c.mutation
}

// Save creates the PathEvent in the database.
func (_c *PathEventCreate) Save(ctx context.Context) (*PathEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PathEventCreate) SaveX(ctx context.Context) *PathEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PathEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := pathevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ModuleIndex(); !ok {
		v := pathevent.DefaultModuleIndex
		_c.mutation.SetModuleIndex(v)
	}
	if _, ok := _c.mutation.Percent(); !ok {
		v := pathevent.DefaultPercent
		_c.mutation.SetPercent(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PathEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PathEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PathEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.PathID(); !ok {
		return &ValidationError{Name: "path_id", err: errors.New(`ent: missing required field "PathEvent.path_id"`)}
	}
	if v, ok := _c.mutation.PathID(); ok {
		if err := pathevent.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "PathEvent.path_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "PathEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := pathevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "PathEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModuleIndex(); !ok {
		return &ValidationError{Name: "module_index", err: errors.New(`ent: missing required field "PathEvent.module_index"`)}
	}
	if _, ok := _c.mutation.Percent(); !ok {
		return &ValidationError{Name: "percent", err: errors.New(`ent: missing required field "PathEvent.percent"`)}
	}
	return nil
}

func (_c *PathEventCreate) sqlSave(ctx context.Context) (*PathEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PathEventCreate) createSpec() (*PathEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PathEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pathevent.Table, sqlgraph.NewFieldSpec(pathevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(pathevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(pathevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.PathID(); ok {
		_spec.SetField(pathevent.FieldPathID, field.TypeString, value)
		_node.PathID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(pathevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.ModuleIndex(); ok {
		_spec.SetField(pathevent.FieldModuleIndex, field.TypeInt, value)
		_node.ModuleIndex = value
	}
	if value, ok := _c.mutation.Percent(); ok {
		_spec.SetField(pathevent.FieldPercent, field.TypeInt, value)
		_node.Percent = value
	}
	return _node, _spec
}

// PathEventCreateBulk is the builder for creating many PathEvent entities in bulk.
type PathEventCreateBulk struct {
	config
	err      error
	builders []*PathEventCreate
}

// Save creates the PathEvent entities in the database.
func (_c *PathEventCreateBulk) Save(ctx context.Context) ([]*PathEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PathEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PathEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *PathEventCreateBulk) SaveX(ctx context.Context) []*PathEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
