// Package calendar provides the date arithmetic behind synthetic history:
// inclusive day ranges walked one day at a time, and randomized
// working-hours timestamps formatted for git's date override.
package calendar
