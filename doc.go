// Package clientkit provides the building blocks for Proveo client
// applications: input sanitization, shared session state with cross-instance
// synchronization, and a thin API client that keeps that state honest.
//
// The module is organized as independent packages under pkg/, each usable on
// its own:
//
//   - pkg/sanitizer: XSS-safe normalization of text, emails, phones, URLs,
//     limited rich text, and whole API response payloads
//   - pkg/validator: rule-based field validation and form validation built on
//     the sanitizer
//   - pkg/statestore: key-value state with change notifications from other
//     instances (in-memory and Redis-backed)
//   - pkg/broadcast: generic in-process pub/sub used to fan state changes out
//     to observers
//   - pkg/statemachine: a small finite state machine
//   - pkg/clientstate: the session facade combining store, broadcaster, and a
//     login state machine behind typed accessors
//   - pkg/apiclient: HTTP client with correlation IDs, CSRF handling, and
//     auth lifecycle endpoints
//   - pkg/correlation: request correlation IDs and context plumbing
//   - pkg/logger: slog-based logger construction
//   - pkg/config: environment-based configuration loading
//
// Typical wiring:
//
//	store := statestore.NewMemory()
//	state, err := clientstate.New(ctx, store, log)
//	if err != nil {
//		return err
//	}
//	defer state.Close()
//
//	client, err := apiclient.New(cfg, state, log)
//	if err != nil {
//		return err
//	}
//
//	payload, err := client.Login(ctx, apiclient.Credentials{Email: email, Password: password})
package clientkit
