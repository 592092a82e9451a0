// Package remote provides an HTTP implementation of the
// domain.ConversionService interface that delegates to a binconvd daemon.
//
// Conversions are sent to POST /api/convert. A 422 response is turned back
// into a *domain.ConversionError so callers can use errors.Is and errors.As
// exactly as with the local service. Other non-2xx statuses are returned as
// errors with the HTTP method, full URL and status text to aid diagnostics.
//
// All requests accept a context for cancellation and deadlines.
package remote
