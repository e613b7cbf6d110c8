// Package chatwoot provides thin HTTP clients for the Chatwoot REST API.
//
// # Overview
//
// Three clients cover the three credential scopes Chatwoot exposes:
//
//   - Client: the account-scoped Application API (api/v1 plus the api/v2
//     reporting surface), authenticated with an agent/bot token
//   - PublicClient: the unauthenticated widget API, scoped per inbox
//     identifier (public/api/v1)
//   - PlatformClient: the super-admin Platform API (platform/api/v1),
//     authenticated with a separate master token
//
// All clients normalize failures into *APIError carrying the HTTP status
// code and the application-supplied message where one exists. Transport
// failures (DNS, timeout, refused connections) surface as status 500.
//
// # Account Override
//
// Every Client method takes an accountID parameter. Zero means "use the
// default account from configuration"; any other value issues the call
// against that account's scope using the same credential, without mutating
// the client. If neither a default nor an override is available the call
// fails before any I/O.
//
// Clients are stateless per call and safe for concurrent use.
package chatwoot
