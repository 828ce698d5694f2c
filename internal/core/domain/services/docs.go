// Package services contains stateless domain services that coordinate policy
// across aggregates. AccessPolicy is the single place where role-based access
// and transition authority are decided.
package services
