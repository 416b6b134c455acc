// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/coderelay/coderelay/ent/predicate"
	"github.com/coderelay/coderelay/ent/repository"
)

// RepositoryUpdate is the builder for updating Repository entities.
type RepositoryUpdate struct {
	config
	hooks    []Hook
	mutation *RepositoryMutation
}

// Where appends a list predicates to the RepositoryUpdate builder.
func (_u *RepositoryUpdate) Where(ps ...predicate.Repository) *RepositoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetURL sets the "url" field.
func (_u *RepositoryUpdate) SetURL(v string) *RepositoryUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableURL(v *string) *RepositoryUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RepositoryUpdate) SetName(v string) *RepositoryUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableName(v *string) *RepositoryUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetBranch sets the "branch" field.
func (_u *RepositoryUpdate) SetBranch(v string) *RepositoryUpdate {
	_u.mutation.SetBranch(v)
	return _u
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableBranch(v *string) *RepositoryUpdate {
	if v != nil {
		_u.SetBranch(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *RepositoryUpdate) SetLanguage(v string) *RepositoryUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableLanguage(v *string) *RepositoryUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *RepositoryUpdate) ClearLanguage() *RepositoryUpdate {
	_u.mutation.ClearLanguage()
	return _u
}

// SetLastIndexedCommit sets the "last_indexed_commit" field.
func (_u *RepositoryUpdate) SetLastIndexedCommit(v string) *RepositoryUpdate {
	_u.mutation.SetLastIndexedCommit(v)
	return _u
}

// SetNillableLastIndexedCommit sets the "last_indexed_commit" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableLastIndexedCommit(v *string) *RepositoryUpdate {
	if v != nil {
		_u.SetLastIndexedCommit(*v)
	}
	return _u
}

// ClearLastIndexedCommit clears the value of the "last_indexed_commit" field.
func (_u *RepositoryUpdate) ClearLastIndexedCommit() *RepositoryUpdate {
	_u.mutation.ClearLastIndexedCommit()
	return _u
}

// SetLastIndexedAt sets the "last_indexed_at" field.
func (_u *RepositoryUpdate) SetLastIndexedAt(v time.Time) *RepositoryUpdate {
	_u.mutation.SetLastIndexedAt(v)
	return _u
}

// SetNillableLastIndexedAt sets the "last_indexed_at" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableLastIndexedAt(v *time.Time) *RepositoryUpdate {
	if v != nil {
		_u.SetLastIndexedAt(*v)
	}
	return _u
}

// ClearLastIndexedAt clears the value of the "last_indexed_at" field.
func (_u *RepositoryUpdate) ClearLastIndexedAt() *RepositoryUpdate {
	_u.mutation.ClearLastIndexedAt()
	return _u
}

// Mutation returns the RepositoryMutation object of the builder.
func (_u *RepositoryUpdate) Mutation() *RepositoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RepositoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RepositoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RepositoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RepositoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RepositoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(repository.Table, repository.Columns, sqlgraph.NewFieldSpec(repository.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(repository.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(repository.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Branch(); ok {
		_spec.SetField(repository.FieldBranch, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(repository.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(repository.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.LastIndexedCommit(); ok {
		_spec.SetField(repository.FieldLastIndexedCommit, field.TypeString, value)
	}
	if _u.mutation.LastIndexedCommitCleared() {
		_spec.ClearField(repository.FieldLastIndexedCommit, field.TypeString)
	}
	if value, ok := _u.mutation.LastIndexedAt(); ok {
		_spec.SetField(repository.FieldLastIndexedAt, field.TypeTime, value)
	}
	if _u.mutation.LastIndexedAtCleared() {
		_spec.ClearField(repository.FieldLastIndexedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{repository.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RepositoryUpdateOne is the builder for updating a single Repository entity.
type RepositoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RepositoryMutation
}

// SetURL sets the "url" field.
func (_u *RepositoryUpdateOne) SetURL(v string) *RepositoryUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableURL(v *string) *RepositoryUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RepositoryUpdateOne) SetName(v string) *RepositoryUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableName(v *string) *RepositoryUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetBranch sets the "branch" field.
func (_u *RepositoryUpdateOne) SetBranch(v string) *RepositoryUpdateOne {
	_u.mutation.SetBranch(v)
	return _u
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableBranch(v *string) *RepositoryUpdateOne {
	if v != nil {
		_u.SetBranch(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *RepositoryUpdateOne) SetLanguage(v string) *RepositoryUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableLanguage(v *string) *RepositoryUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *RepositoryUpdateOne) ClearLanguage() *RepositoryUpdateOne {
	_u.mutation.ClearLanguage()
	return _u
}

// SetLastIndexedCommit sets the "last_indexed_commit" field.
func (_u *RepositoryUpdateOne) SetLastIndexedCommit(v string) *RepositoryUpdateOne {
	_u.mutation.SetLastIndexedCommit(v)
	return _u
}

// SetNillableLastIndexedCommit sets the "last_indexed_commit" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableLastIndexedCommit(v *string) *RepositoryUpdateOne {
	if v != nil {
		_u.SetLastIndexedCommit(*v)
	}
	return _u
}

// ClearLastIndexedCommit clears the value of the "last_indexed_commit" field.
func (_u *RepositoryUpdateOne) ClearLastIndexedCommit() *RepositoryUpdateOne {
	_u.mutation.ClearLastIndexedCommit()
	return _u
}

// SetLastIndexedAt sets the "last_indexed_at" field.
func (_u *RepositoryUpdateOne) SetLastIndexedAt(v time.Time) *RepositoryUpdateOne {
	_u.mutation.SetLastIndexedAt(v)
	return _u
}

// SetNillableLastIndexedAt sets the "last_indexed_at" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableLastIndexedAt(v *time.Time) *RepositoryUpdateOne {
	if v != nil {
		_u.SetLastIndexedAt(*v)
	}
	return _u
}

// ClearLastIndexedAt clears the value of the "last_indexed_at" field.
func (_u *RepositoryUpdateOne) ClearLastIndexedAt() *RepositoryUpdateOne {
	_u.mutation.ClearLastIndexedAt()
	return _u
}

// Mutation returns the RepositoryMutation object of the builder.
func (_u *RepositoryUpdateOne) Mutation() *RepositoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the RepositoryUpdate builder.
func (_u *RepositoryUpdateOne) Where(ps ...predicate.Repository) *RepositoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RepositoryUpdateOne) Select(field string, fields ...string) *RepositoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Repository entity.
func (_u *RepositoryUpdateOne) Save(ctx context.Context) (*Repository, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RepositoryUpdateOne) SaveX(ctx context.Context) *Repository {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RepositoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RepositoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RepositoryUpdateOne) sqlSave(ctx context.Context) (_node *Repository, err error) {
	_spec := sqlgraph.NewUpdateSpec(repository.Table, repository.Columns, sqlgraph.NewFieldSpec(repository.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Repository.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, repository.FieldID)
		for _, f := range fields {
			if !repository.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != repository.FieldID {
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
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(repository.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(repository.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Branch(); ok {
		_spec.SetField(repository.FieldBranch, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(repository.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(repository.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.LastIndexedCommit(); ok {
		_spec.SetField(repository.FieldLastIndexedCommit, field.TypeString, value)
	}
	if _u.mutation.LastIndexedCommitCleared() {
		_spec.ClearField(repository.FieldLastIndexedCommit, field.TypeString)
	}
	if value, ok := _u.mutation.LastIndexedAt(); ok {
		_spec.SetField(repository.FieldLastIndexedAt, field.TypeTime, value)
	}
	if _u.mutation.LastIndexedAtCleared() {
		_spec.ClearField(repository.FieldLastIndexedAt, field.TypeTime)
	}
	_node = &Repository{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{repository.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
