// Package scheduler places cleaning tasks on working days for a single agent.
//
// Packing is first-fit and forward-only: tasks keep their input order, are
// never split, and a day is closed as soon as the next task does not fit in
// the remaining hours. Schedules can be exported with pkg/export.
package scheduler
