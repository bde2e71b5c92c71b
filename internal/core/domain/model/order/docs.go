// Package order contains the Order aggregate: the lines it owns, the captured
// prices that freeze historical totals, the payment method enumeration, and
// the status state machine that gates every lifecycle change.
package order
