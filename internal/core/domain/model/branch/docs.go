// Package branch contains the Branch aggregate. Branches are the isolation
// boundary of the system: menus, stock and staff all hang off a branch, and
// queries are filtered by branch scope.
package branch
