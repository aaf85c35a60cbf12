// Package timezone centralizes time handling for the application.
// All wall-clock reads go through Now so that every component observes
// the same configured location.
package timezone
