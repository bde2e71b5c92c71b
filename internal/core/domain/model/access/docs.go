// Package access models the authorization side of the domain: the roles known
// to the system, the authenticated principal supplied by the auth
// collaborator, and the branch scope every order and inventory read must be
// filtered by.
//
// Branch resolution happens exactly once per request, when the principal is
// built; ScopeFor then derives the scope from the already-resolved principal
// so no handler re-implements role-to-branch logic.
package access
