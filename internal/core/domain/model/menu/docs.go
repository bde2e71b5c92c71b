// Package menu contains the MenuItem aggregate and the reservation types used
// when orders consume stock. Stock reservation itself is an atomic conditional
// update performed by the repository; this package owns the invariants
// (non-negative stock, positive price) and the insufficient stock error.
package menu
