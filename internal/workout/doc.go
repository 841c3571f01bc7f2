// Package workout defines the workout computation model and the code-based dispatcher.
//
// Each workout kind is described by one Kind (its formula profile), and raw sensor
// packages are turned into bound Workout values by the Dispatcher.
package workout
