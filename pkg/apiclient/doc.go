// Package apiclient is the request facade for the Proveo backend.
//
// Client.Do wraps every call with the conventions pages rely on: a
// fresh correlation ID per request, the session cookie carried
// automatically, and the CSRF token attached to state-changing verbs
// when one is held. It returns the raw response; callers parse and
// sanitize bodies themselves (sanitizer.APIResponse).
//
// On top of Do sit the two derived checks, CheckAuthenticated and
// CheckCompanyPublished, each a single request whose observation is
// reconciled into the persisted flags only on disagreement, and the
// endpoint helpers for login, signup, logout and verification resend.
// Login and signup capture the backend-issued CSRF token and flip the
// login flag; logout clears it, cascading per the clientstate rules.
//
// Error behavior follows a strict taxonomy: transport failures are
// logged and propagated unchanged with no retry and no state change; a
// 401 anywhere clears the login state; a 403 is surfaced as an
// HTTPError for page-specific handling and never touches the session.
package apiclient
