// Package user provides the closed role set and the user read model consumed
// by the order lifecycle and communication core.
//
// The package includes:
//   - Role: a closed enum of ADMINISTRADOR, OPERADOR, FABRICA, and CLIENTE,
//     carrying the policy predicates (IsStaff, CanTransitionOrders)
//   - User: the immutable identity read model {id, email, role} resolved by
//     the external identity collaborator
//
// Users are owned externally. The core only reads them: authorization and
// notification addressing branch on Role instead of raw strings, keeping
// role policy in one place.
package user
