// Package auth defines the authentication collaborator consumed by the
// router: a Provider that answers "is anyone signed in, and as whom",
// plus an in-memory implementation suitable for demos and tests.
//
// The router only ever reads auth state. Mutation (sign-in, sign-out)
// belongs to the application and to Provider implementations.
package auth
