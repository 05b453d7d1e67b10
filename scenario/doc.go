// Package scenario replays scripted operations against priority queues.
//
// A scenario is a TOML document listing steps:
//
//	name = "smoke"
//
//	[[step]]
//	op = "insert"
//	key = 1
//	value = 42
//
//	[[step]]
//	op = "min_value"
//	expect = 42
//
//	[[step]]
//	op = "change_value"
//	key = 7
//	value = 1
//	error = "not_found"
//
// Each step targets a named queue ("main" unless queue is set); binary
// operations such as merge and compare name their second queue in other.
// Queues hold int keys and int values and are created on first use.
package scenario
