// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

/*
Package supervisor runs the long-lived parts of VGTrends under a suture v4
supervisor tree.

	RootSupervisor ("vgtrends")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff, and cancelling the
context passed to Serve shuts the tree down within TreeConfig.ShutdownTimeout.
Supervisor events are logged through sutureslog, which takes a *slog.Logger;
main passes logging.NewSlogLogger() so events end up in the zerolog stream.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	errCh := tree.ServeBackground(ctx)
*/
package supervisor
