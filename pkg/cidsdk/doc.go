// Package cidsdk is a client for the CID daemon API.
//
// A CI action runs next to a CID daemon which exposes its configuration,
// the version control history, the discovered project modules, command
// execution and artifact storage over HTTP. The daemon is reached either
// through a unix socket (CID_API_SOCKET) or an HTTP endpoint (CID_API_ADDR),
// requests are authenticated with a bearer token (CID_API_SECRET).
//
//	sdk, err := cidsdk.NewClient()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	modules, err := sdk.Modules()
//
// Failed calls return a *Error when the daemon answered with a JSON error
// document and a *TransportError for everything else:
//
//	var apiErr *cidsdk.Error
//	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
//	    // ...
//	}
//
// Consumers that want to test their action without a daemon should depend
// on the SDK interface and use the cidsdkmock package.
package cidsdk
