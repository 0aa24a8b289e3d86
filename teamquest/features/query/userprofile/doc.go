// Package userprofile implements the User Profile query.
package userprofile
