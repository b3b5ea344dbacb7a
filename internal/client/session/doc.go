// Package session owns the credential token of the logged-in user.
//
// A Guard answers one question, "may a protected command run right now?",
// by checking that a token is stored and that its exp claim has not
// passed. The check fails closed: a missing or undecodable token means the
// session is over. Watch repeats the check on a fixed interval and clears
// the token as soon as it expires.
package session
