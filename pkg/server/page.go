package server

const indexTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Renko Chart</title>
<style>
body { font-family: sans-serif; text-align: center; margin: 0 auto; max-width: 1320px; }
.controls { margin: 12px 0; }
.controls button, .controls select { margin: 0 6px; }
img { width: 100%; }
</style>
</head>
<body>
<div class="controls">
  <button id="prev">Previous</button>
  {{ if .Week }}Week <span id="dataset">{{ .Current }}</span>{{ else }}<span id="dataset">{{ .Current }}</span> ({{ .Index }}/{{ .Total }}){{ end }}
  <button id="next">Next</button>
  <select id="kind">
    <option value="renko">Renko</option>
    <option value="candlestick">Candlestick</option>
    <option value="scatter">Scatter</option>
  </select>
  <label><input type="checkbox" id="volume" {{ if .Volume }}checked{{ end }}> Volume</label>
</div>
<img id="chart" alt="chart">
<div class="controls">
  <input type="range" id="offset" min="0" max="0" value="0" style="width: 90%">
</div>
<script>
var size = {{ .Window }};

function refresh() {
  var q = new URLSearchParams({
    kind: document.getElementById('kind').value,
    offset: document.getElementById('offset').value,
    size: size,
    volume: document.getElementById('volume').checked
  });
  document.getElementById('chart').src = '/api/chart.png?' + q.toString() + '&t=' + Date.now();
}

function updateSlider() {
  fetch('/api/bricks').then(function (r) { return r.json(); }).then(function (body) {
    var slots = 0;
    (body.bricks || []).forEach(function (b) { slots = Math.max(slots, b.index + 1); });
    var slider = document.getElementById('offset');
    slider.max = Math.max(0, slots - size);
    slider.value = 0;
    refresh();
  }).catch(refresh);
}

function navigate(action) {
  fetch('/api/navigate/' + action, { method: 'POST' }).then(function (r) { return r.json(); }).then(function (body) {
    document.getElementById('dataset').textContent = body.current;
    updateSlider();
  });
}

document.getElementById('prev').onclick = function () { navigate('prev'); };
document.getElementById('next').onclick = function () { navigate('next'); };
document.getElementById('kind').onchange = refresh;
document.getElementById('volume').onchange = refresh;
document.getElementById('offset').oninput = refresh;
updateSlider();
</script>
</body>
</html>
`
