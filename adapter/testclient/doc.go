// Package testclient provides an in-memory client for exercising a
// compiled route table without a network listener.
//
// Requests run through the exact same filter pipeline as production
// traffic, so tests observe real status mapping, content encoding, and
// CORS behavior:
//
//	api := b.MustBuild()
//	c := testclient.New(api)
//
//	resp, err := c.Get(ctx, "/hello/Peter")
//	resp, err = c.Post(ctx, "/widgets", request.WithBody(`{"name":"x"}`))
package testclient
