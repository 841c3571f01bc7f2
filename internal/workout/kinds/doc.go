// Package kinds provides the concrete workout kinds handled by the workout Dispatcher.
//
// Each kind couples a bound record type (Running, SportsWalking, Swimming) with a
// profile that turns positional sensor fields into that record. Profiles are
// registered in a workout.Dispatcher and accept input through workout.Param maps.
package kinds
