// Package tick defines the host temporal types used by the conversion
// layer.
//
// Every type is a count of 100ns ticks, the finest resolution the host
// supports. Instants and dates count from 0001-01-01T00:00:00Z on the
// proleptic Gregorian calendar; durations and clock times count from zero.
// Constructors validate calendar fields and range, so a value built here is
// always representable. Calendar arithmetic is delegated to the time
// package.
package tick
