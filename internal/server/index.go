package server

import "net/http"

// handleIndex serves a small single-page editor. The page creates a
// session on load, renders through the API, and re-renders after every
// edit; all state lives server-side.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(indexHTML))
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>netsketch</title>
<style>
  body { font-family: sans-serif; margin: 0; display: flex; height: 100vh; }
  #controls { width: 260px; padding: 1rem; border-right: 1px solid #ddd; overflow-y: auto; }
  #canvas { flex: 1; }
  #canvas svg { width: 100%; height: 100%; }
  button { margin: 2px 0; }
  label { display: block; margin-top: 8px; font-size: 0.85rem; }
  .layer { display: flex; align-items: center; gap: 4px; margin: 2px 0; }
</style>
</head>
<body>
<div id="controls">
  <h3>netsketch</h3>
  <div id="layers"></div>
  <button id="add">add layer</button>
  <button id="reroll">reroll weights</button>
  <label><input type="checkbox" id="bias"> show bias</label>
  <label><input type="checkbox" id="labels" checked> show labels</label>
  <label><input type="checkbox" id="bezier" checked> curved links</label>
  <label>direction
    <select id="direction">
      <option value="horizontal">horizontal</option>
      <option value="vertical">vertical</option>
    </select>
  </label>
  <label>arrowheads
    <select id="arrowheads">
      <option value="none">none</option>
      <option value="empty">empty</option>
      <option value="solid">solid</option>
    </select>
  </label>
</div>
<div id="canvas"></div>
<script>
let diagram = null;

async function api(method, path, body) {
  const res = await fetch(path, {
    method: method,
    headers: body ? {"Content-Type": "application/json"} : {},
    body: body ? JSON.stringify(body) : undefined,
  });
  if (!res.ok) throw new Error(await res.text());
  return res.status === 204 ? null : res.json();
}

async function refresh() {
  const canvas = document.getElementById("canvas");
  const url = "/api/diagrams/" + diagram.id + "/render" +
    "?width=" + canvas.clientWidth + "&height=" + canvas.clientHeight;
  const res = await fetch(url);
  canvas.innerHTML = await res.text();
  renderControls();
}

function renderControls() {
  const div = document.getElementById("layers");
  div.innerHTML = "";
  diagram.network.forEach((layer, i) => {
    const row = document.createElement("div");
    row.className = "layer";
    const input = document.createElement("input");
    input.type = "number";
    input.min = 1; input.max = 50; input.value = layer.neurons;
    input.style.width = "4em";
    input.onchange = async () => {
      diagram = await api("PUT", "/api/diagrams/" + diagram.id + "/layers/" + i,
        {neurons: parseInt(input.value, 10)});
      refresh();
    };
    const del = document.createElement("button");
    del.textContent = "x";
    del.onclick = async () => {
      diagram = await api("DELETE", "/api/diagrams/" + diagram.id + "/layers/" + i);
      refresh();
    };
    row.append("layer " + (i + 1) + ": ", input, del);
    div.append(row);
  });
}

async function patchStyle(patch) {
  diagram = await api("PATCH", "/api/diagrams/" + diagram.id + "/style", patch);
  refresh();
}

document.getElementById("add").onclick = async () => {
  diagram = await api("POST", "/api/diagrams/" + diagram.id + "/layers");
  refresh();
};
document.getElementById("reroll").onclick = async () => {
  diagram = await api("POST", "/api/diagrams/" + diagram.id + "/reroll");
  refresh();
};
document.getElementById("bias").onchange = e => patchStyle({show_bias: e.target.checked});
document.getElementById("labels").onchange = e => patchStyle({show_labels: e.target.checked});
document.getElementById("bezier").onchange = e => patchStyle({bezier: e.target.checked});
document.getElementById("direction").onchange = e => patchStyle({direction: e.target.value});
document.getElementById("arrowheads").onchange = e => patchStyle({arrowheads: e.target.value});
window.onresize = () => { if (diagram) refresh(); };

(async () => {
  diagram = await api("POST", "/api/diagrams/");
  refresh();
})();
</script>
</body>
</html>
`
