// Package item contains the DeliveryItem aggregate and its lifecycle status
// state machine. All item mutations (assignment, status changes, edits,
// unassignment and deletion checks) go through this aggregate so the
// assignment and transition invariants are enforced in exactly one place.
package item
