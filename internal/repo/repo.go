package repo

import "errors"

// ErrConstraint is returned when a write would violate a uniqueness
// invariant (duplicate daily completion or focus entry). The Postgres repos
// translate unique-violation errors (23505) into it so services never see
// driver-specific errors for this case.
var ErrConstraint = errors.New("constraint violation")
