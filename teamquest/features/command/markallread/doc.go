// Package markallread implements the Mark All Notifications Read use case.
package markallread
