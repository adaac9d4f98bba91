package httpapi

// indexHTML shows the current frame and forwards key presses to the API.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Monthly average temperatures</title>
</head>
<body>
<div id="chart"></div>
<script>
var latest = 0;
var frame = "";

function refresh() {
	var seq = ++latest;
	fetch("/api/v1/chart.svg", {cache: "no-store"})
		.then(function (r) {
			return r.text().then(function (svg) { return {id: r.headers.get("X-Frame-ID"), svg: svg}; });
		})
		.then(function (res) {
			// Only the newest request may paint, and an unchanged frame keeps its animation.
			if (seq !== latest || res.id === frame) {
				return;
			}
			frame = res.id;
			document.getElementById("chart").innerHTML = res.svg;
		});
}

window.focus();
window.addEventListener("keydown", function (e) {
	fetch("/api/v1/keys", {
		method: "POST",
		headers: {"Content-Type": "application/json"},
		body: JSON.stringify({keyCode: e.keyCode})
	})
		.then(function (r) { return r.json(); })
		.then(function (res) { if (res.changed) { refresh(); } });
});

refresh();
setInterval(refresh, 1000);
</script>
</body>
</html>
`
