// Package services contains domain services coordinating changes that span
// the Order and Bid aggregates. Every accepted mutation on one side drives
// the paired transition on the other within the same unit of work, so the
// two state machines never observe each other in an inconsistent state.
package services
