// Package notification decides which email is sent for an order transition
// and models the outbox record that carries that decision to the dispatcher.
//
// The transition-to-template mapping lives here as a pure function
// (TemplateForStatus); delivery mechanics live in the outbound adapters and
// the dispatch job. Rendering template identifiers and data into actual
// markup is the external mail collaborator's job.
package notification
