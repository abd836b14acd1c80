// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillpath/ent/pathevent"
	"github.com/abhisek/skillpath/ent/predicate"
)

// PathEventUpdate is the builder for updating PathEvent entities.
type PathEventUpdate struct {
	config
	hooks    []Hook
	mutation *PathEventMutation
}

// Where appends a list predicates to the PathEventUpdate builder.
func (_u *PathEventUpdate) Where(ps ...predicate.PathEvent) *PathEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPathID sets the "path_id" field.
func (_u *PathEventUpdate) SetPathID(v string) *PathEventUpdate {
	_u.mutation.SetPathID(v)
	return _u
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillablePathID(v *string) *PathEventUpdate {
	if v != nil {
		_u.SetPathID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *PathEventUpdate) SetAction(v string) *PathEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableAction(v *string) *PathEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetModuleIndex sets the "module_index" field.
func (_u *PathEventUpdate) SetModuleIndex(v int) *PathEventUpdate {
	_u.mutation.ResetModuleIndex()
	_u.mutation.SetModuleIndex(v)
	return _u
}

// SetNillableModuleIndex sets the "module_index" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableModuleIndex(v *int) *PathEventUpdate {
	if v != nil {
		_u.SetModuleIndex(*v)
	}
	return _u
}

// AddModuleIndex adds value to the "module_index" field.
func (_u *PathEventUpdate) AddModuleIndex(v int) *PathEventUpdate {
	_u.mutation.AddModuleIndex(v)
	return _u
}

// SetPercent sets the "percent" field.
func (_u *PathEventUpdate) SetPercent(v int) *PathEventUpdate {
	_u.mutation.ResetPercent()
	_u.mutation.SetPercent(v)
	return _u
}

// SetNillablePercent sets the "percent" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillablePercent(v *int) *PathEventUpdate {
	if v != nil {
		_u.SetPercent(*v)
	}
	return _u
}

// AddPercent adds value to the "percent" field.
func (_u *PathEventUpdate) AddPercent(v int) *PathEventUpdate {
	_u.mutation.AddPercent(v)
	return _u
}

// Mutation returns the PathEventMutation object of the builder.
func (_u *PathEventUpdate) Mutation() *PathEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PathEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PathEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathEventUpdate) check() error {
	if v, ok := _u.mutation.PathID(); ok {
		if err := pathevent.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "PathEvent.path_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := pathevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "PathEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *PathEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathevent.Table, pathevent.Columns, sqlgraph.NewFieldSpec(pathevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PathID(); ok {
		_spec.SetField(pathevent.FieldPathID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(pathevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleIndex(); ok {
		_spec.SetField(pathevent.FieldModuleIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModuleIndex(); ok {
		_spec.AddField(pathevent.FieldModuleIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percent(); ok {
		_spec.SetField(pathevent.FieldPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercent(); ok {
		_spec.AddField(pathevent.FieldPercent, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PathEventUpdateOne is the builder for updating a single PathEvent entity.
type PathEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PathEventMutation
}

// SetPathID sets the "path_id" field.
func (_u *PathEventUpdateOne) SetPathID(v string) *PathEventUpdateOne {
	_u.mutation.SetPathID(v)
	return _u
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillablePathID(v *string) *PathEventUpdateOne {
	if v != nil {
		_u.SetPathID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *PathEventUpdateOne) SetAction(v string) *PathEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableAction(v *string) *PathEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetModuleIndex sets the "module_index" field.
func (_u *PathEventUpdateOne) SetModuleIndex(v int) *PathEventUpdateOne {
	_u.mutation.ResetModuleIndex()
	_u.mutation.SetModuleIndex(v)
	return _u
}

// SetNillableModuleIndex sets the "module_index" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableModuleIndex(v *int) *PathEventUpdateOne {
	if v != nil {
		_u.SetModuleIndex(*v)
	}
	return _u
}

// AddModuleIndex adds value to the "module_index" field.
func (_u *PathEventUpdateOne) AddModuleIndex(v int) *PathEventUpdateOne {
	_u.mutation.AddModuleIndex(v)
	return _u
}

// SetPercent sets the "percent" field.
func (_u *PathEventUpdateOne) SetPercent(v int) *PathEventUpdateOne {
	_u.mutation.ResetPercent()
	_u.mutation.SetPercent(v)
	return _u
}

// SetNillablePercent sets the "percent" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillablePercent(v *int) *PathEventUpdateOne {
	if v != nil {
		_u.SetPercent(*v)
	}
	return _u
}

// AddPercent adds value to the "percent" field.
func (_u *PathEventUpdateOne) AddPercent(v int) *PathEventUpdateOne {
	_u.mutation.AddPercent(v)
	return _u
}

// Mutation returns the PathEventMutation object of the builder.
func (_u *PathEventUpdateOne) Mutation() *PathEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PathEventUpdate builder.
func (_u *PathEventUpdateOne) Where(ps ...predicate.PathEvent) *PathEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PathEventUpdateOne) Select(field string, fields ...string) *PathEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PathEvent entity.
func (_u *PathEventUpdateOne) Save(ctx context.Context) (*PathEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathEventUpdateOne) SaveX(ctx context.Context) *PathEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PathEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathEventUpdateOne) check() error {
	if v, ok := _u.mutation.PathID(); ok {
		if err := pathevent.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "PathEvent.path_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := pathevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "PathEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *PathEventUpdateOne) sqlSave(ctx context.Context) (_node *PathEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathevent.Table, pathevent.Columns, sqlgraph.NewFieldSpec(pathevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PathEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pathevent.FieldID)
		for _, f := range fields {
			if !pathevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pathevent.FieldID {
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
	if value, ok := _u.mutation.PathID(); ok {
		_spec.SetField(pathevent.FieldPathID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(pathevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleIndex(); ok {
		_spec.SetField(pathevent.FieldModuleIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModuleIndex(); ok {
		_spec.AddField(pathevent.FieldModuleIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percent(); ok {
		_spec.SetField(pathevent.FieldPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercent(); ok {
		_spec.AddField(pathevent.FieldPercent, field.TypeInt, value)
	}
	_node = &PathEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
