// Package validation is the advisory rule engine. Each entity type has a
// fixed catalog of named checks; a run evaluates every check in catalog
// order against a subject and a reference time, and Summarize folds the
// outcomes into one status where the worst severity wins.
//
// Checks are pure functions of (subject, now). They never touch storage and
// never reject a write: findings are recorded for visibility only.
//
//	outcomes := validation.Run(validation.OrderChecks(), subject, now)
//	report := validation.NewRun(validation.EntityOrder, id, outcomes, now, ttl)
package validation
