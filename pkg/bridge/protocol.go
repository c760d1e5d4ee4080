package bridge

// Frame types exchanged with the shell client.
const (
	// FrameNavigate is sent by the client when the fragment changes
	// (initial load, hash edit, back/forward).
	FrameNavigate = "navigate"

	// FrameNavPush tells the client to push a history entry for Path.
	FrameNavPush = "nav_push"

	// FrameNavReplace tells the client to replace the current history
	// entry with Path. Used for redirects and canonicalization so dead
	// links never pile up in history.
	FrameNavReplace = "nav_replace"

	// FrameContent tells the client to swap the mount element's
	// content to HTML.
	FrameContent = "content"
)

// Frame is the single message shape in both directions.
type Frame struct {
	Type string `json:"type"`
	Path string `json:"path,omitempty"`
	HTML string `json:"html,omitempty"`
}
