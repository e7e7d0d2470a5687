// Package factory is a small generic registry used to build modules, such as
// metrics sinks, from configuration entries of the form
//
//	sinks:
//	  - type: log
//	    conf:
//	      level: info
//
// Factories decode the raw conf map into a typed struct with Decode.
package factory
