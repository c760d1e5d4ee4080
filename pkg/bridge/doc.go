// Package bridge connects a browser to a router over a WebSocket. The
// embedded shell page mirrors the browser's location fragment to the
// server and swaps the mount element's content from server frames; the
// server runs one router per connection, driving resolutions from the
// connection's read loop.
package bridge
