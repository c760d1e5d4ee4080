package bridge

import "html/template"

// shellTemplate is the thin client: it mirrors location.hash to the
// server and applies NAV/content frames. Delegated clicks on
// [data-wf-home] cover the error placeholder's recovery control even
// before any content script runs.
var shellTemplate = template.Must(template.New("shell").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
<div id="{{.MountID}}"></div>
<script>
(function () {
  var mount = document.getElementById({{.MountID}});
  var proto = location.protocol === "https:" ? "wss:" : "ws:";
  var sock = new WebSocket(proto + "//" + location.host + "{{.SocketPath}}");
  var muted = false;

  function fragment() {
    return location.hash.replace(/^#/, "") || "/";
  }

  function sendNavigate() {
    if (sock.readyState === WebSocket.OPEN) {
      sock.send(JSON.stringify({type: "navigate", path: fragment()}));
    }
  }

  sock.onopen = sendNavigate;

  window.addEventListener("hashchange", function () {
    if (muted) { muted = false; return; }
    sendNavigate();
  });

  document.addEventListener("click", function (ev) {
    var el = ev.target.closest("[data-wf-home]");
    if (el) {
      ev.preventDefault();
      location.hash = el.getAttribute("href").replace(/^#/, "");
    }
  });

  sock.onmessage = function (ev) {
    var frame = JSON.parse(ev.data);
    switch (frame.type) {
      case "content":
        mount.innerHTML = frame.html;
        break;
      case "nav_push":
        if (fragment() !== frame.path) {
          muted = true;
          location.hash = frame.path;
        }
        break;
      case "nav_replace":
        if (fragment() !== frame.path) {
          history.replaceState(null, "", "#" + frame.path);
        }
        break;
    }
  };
})();
</script>
</body>
</html>
`))

type shellData struct {
	Title      string
	MountID    string
	SocketPath string
}
