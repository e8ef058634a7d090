package foxenv

const Theory = `
Environment:
An Env holds two independent stores, variables and functions, each an ordered array
with a name index. Arrays start at a fixed capacity and double when a define would
overflow them. Deleting a variable removes it and shifts later entries down one slot,
so definition order of the survivors is kept.

Policies:
1. Defining a name that is already bound in the same store fails with ErrDuplicateName.
   The first binding stays visible.
2. Updating an immutable variable fails with ErrImmutable and leaves the value alone.
   Error handlers (log sink, external script) run afterwards, outside the lock.
   Their failures are logged and never replace ErrImmutable.
3. Call only checks that a call is well-formed. Execution belongs to an Evaluator.
4. Destroy is the end of the lifetime. Any later use is a caller bug and panics.
`
