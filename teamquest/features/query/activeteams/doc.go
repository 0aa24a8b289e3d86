// Package activeteams implements the Active Teams query used by the daily rollover job.
package activeteams
