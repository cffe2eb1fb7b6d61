// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/order, domain/designjob,
// domain/organization, domain/manufacturing) and the advisory rule engine
// lives in domain/validation. This root package holds sentinel errors,
// field-level validation errors, and the Action interface.
package domain
