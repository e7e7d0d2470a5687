// Package tasks expands fleet and frequency parameters into the flat list of
// cleaning tasks required over a planning horizon. The order of the returned
// tasks is the order in which the scheduler places them.
package tasks
