// Package clientstate is the facade over the client's persisted state:
// language preference, login flag, company-published flag and CSRF
// token.
//
// Every local setter persists the canonical encoding and raises one
// notification on the manager's change stream. Writes made by other
// holders of the same store (see statestore) arrive on the same
// stream, so a single subscription keeps any consumer consistent with
// every writer, local or remote.
//
// The login flag is guarded by a state machine. Valid transitions:
// loggedOut to loggedIn via a confirmed authentication check or an
// explicit override after login/signup; loggedIn to loggedOut via
// explicit logout, a denied authentication check, or a 401 on any
// request. A 403 never transitions: it signals an authorization
// problem, such as an unverified email, not a lost session.
//
// One invariant is enforced here rather than left to callers: setting
// the login flag false cascade-clears the company-published flag and
// the CSRF token atomically, so login=false always implies
// companyPublished=false and no held token.
package clientstate
