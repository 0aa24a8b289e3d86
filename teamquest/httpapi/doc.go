// Package httpapi is the JSON API of TeamQuest on top of echo.
//
// Authentication is a bcrypt password check plus an HMAC-signed session cookie. Login and sign-up
// are rate limited per client IP. Every business operation goes through the handler bundle.
package httpapi
