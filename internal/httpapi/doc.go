// Package httpapi implements the binconvd HTTP surface.
//
// # HTTP API
//
//	GET /
//	    The single-page converter UI.
//
//	GET /healthz
//	    Liveness probe, {"status":"ok"}.
//
//	POST /api/convert {"mode":"textToBinary","input":"Hi"}
//	    Run one conversion. Blank input is converted like any other; the
//	    empty-input shortcut belongs to shells. A failed decode is 422 with
//	    {"error":"Error: Invalid input format.","kind":...,"token":...,"index":...}.
//
//	POST /api/sessions {"mode":"binaryToText"}
//	    Create a shell session held in memory. The body is optional. Past
//	    the session cap (DefaultMaxSessions unless configured) it is 503.
//
//	GET /api/sessions/{id}
//	PUT /api/sessions/{id}/input {"input":"..."}
//	PUT /api/sessions/{id}/mode {"mode":"..."}
//	POST /api/sessions/{id}/swap
//	POST /api/sessions/{id}/clear
//	    Read or drive a session; every call returns the session state.
//
//	DELETE /api/sessions/{id}
//	    Drop a session.
//
// # Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Responses are JSON. Non-2xx statuses carry an APIError body.
//   - A lightweight access log records method, path, remote, status, bytes and
//     duration for each request.
package httpapi
