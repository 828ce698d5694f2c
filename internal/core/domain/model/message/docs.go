// Package message provides the immutable thread message entity attached to
// orders. A thread is the append-only, audit-style communication record
// between the customer who owns an order and the staff working on it.
package message
