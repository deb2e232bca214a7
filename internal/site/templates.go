package site

// shellTemplate is the Go html/template wrapping every page.
const shellTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} — {{.SiteName}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body>
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-header">
      <a href="{{.BasePath}}" class="site-title">{{.SiteName}}</a>
      <input type="text" id="search-input" placeholder="Search topics..." autocomplete="off">
      <div class="search-results" id="search-results"></div>
    </div>
    <div class="sidebar-nav">
      {{.NavHTML}}
    </div>
  </nav>
  <main class="content">
    <div class="top-bar">
      <button class="menu-toggle" id="menu-toggle" aria-label="Toggle sidebar">☰</button>
      <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">◐</button>
    </div>
    <article class="page">
      {{.Body}}
    </article>
  </main>
  <script src="{{.BasePath}}script.js"></script>
  {{if .LiveReload}}<script>
    (function () {
      var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws/reload");
      ws.onmessage = function () { location.reload(); };
    })();
  </script>{{end}}
</body>
</html>`

// cssContent is the stylesheet written to every build output.
const cssContent = `/* ============ Variables ============ */
:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --bg-sidebar: #f1f3f5;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #5f3dc4;
  --accent-light: #f3f0ff;
  --code-bg: #f1f3f5;
  --pill-bg: #e7f5ff;
  --pill-text: #1971c2;
  --sidebar-width: 270px;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
}

[data-theme="dark"] {
  --bg: #1a1b26;
  --bg-secondary: #1f2030;
  --bg-sidebar: #16171f;
  --text: #c0caf5;
  --text-muted: #565f89;
  --border: #292e42;
  --accent: #bb9af7;
  --accent-light: #2a2440;
  --code-bg: #1f2030;
  --pill-bg: #1a2b3c;
  --pill-text: #7aa2f7;
  --shadow: 0 1px 3px rgba(0,0,0,0.3);
}

* { box-sizing: border-box; }
body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--text);
  display: flex;
}

/* ============ Sidebar ============ */
.sidebar {
  width: var(--sidebar-width);
  min-height: 100vh;
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  padding: 1rem;
  position: sticky;
  top: 0;
  align-self: flex-start;
  max-height: 100vh;
  overflow-y: auto;
}
.site-title {
  display: block;
  font-size: 1.25rem;
  font-weight: 700;
  color: var(--accent);
  text-decoration: none;
  margin-bottom: 0.75rem;
}
#search-input {
  width: 100%;
  padding: 0.5rem;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg);
  color: var(--text);
}
.search-results { margin-top: 0.25rem; }
.search-results a {
  display: block;
  padding: 0.35rem 0.5rem;
  border-radius: 4px;
  color: var(--text);
  text-decoration: none;
  font-size: 0.85rem;
}
.search-results a:hover { background: var(--accent-light); }
.search-results .cat { color: var(--text-muted); font-size: 0.75rem; margin-left: 0.35rem; }

.sidebar-nav ul { list-style: none; padding-left: 0; margin: 0.5rem 0; }
.sidebar-nav li.nav-category {
  font-weight: 600;
  font-size: 0.8rem;
  text-transform: uppercase;
  letter-spacing: 0.04em;
  color: var(--text-muted);
  margin-top: 1rem;
}
.sidebar-nav li.nav-topic a {
  display: block;
  padding: 0.3rem 0.5rem;
  border-radius: 4px;
  color: var(--text);
  text-decoration: none;
  font-size: 0.9rem;
}
.sidebar-nav li.nav-topic a:hover { background: var(--accent-light); }
.sidebar-nav li.nav-topic a.active { background: var(--accent-light); color: var(--accent); font-weight: 600; }

/* ============ Content ============ */
.content { flex: 1; min-width: 0; }
.top-bar {
  display: flex;
  justify-content: space-between;
  padding: 0.5rem 1rem;
  border-bottom: 1px solid var(--border);
}
.top-bar button {
  border: 1px solid var(--border);
  background: var(--bg-secondary);
  color: var(--text);
  border-radius: 6px;
  padding: 0.25rem 0.6rem;
  cursor: pointer;
}
.page { max-width: 880px; margin: 0 auto; padding: 1.5rem; }
.page h1 { margin-bottom: 0.25rem; }
.page .lede { color: var(--text-muted); margin-top: 0; }

/* ============ Blocks ============ */
.block { margin: 2rem 0; }
.cards { display: grid; gap: 0.75rem; }
.cards-grid { grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); }
.card {
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 0.9rem 1rem;
  background: var(--bg-secondary);
  box-shadow: var(--shadow);
}
.card h3 { margin: 0 0 0.35rem; font-size: 1rem; }
.card .card-body p { margin: 0; font-size: 0.9rem; }
.pills { margin-top: 0.6rem; display: flex; flex-wrap: wrap; gap: 0.3rem; }
.pill {
  background: var(--pill-bg);
  color: var(--pill-text);
  border-radius: 999px;
  padding: 0.1rem 0.6rem;
  font-size: 0.75rem;
}
pre {
  background: var(--code-bg);
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 0.9rem 1rem;
  overflow-x: auto;
  font-size: 0.85rem;
}
code { font-family: "SF Mono", Consolas, Menlo, monospace; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid var(--border); padding: 0.45rem 0.7rem; text-align: left; font-size: 0.9rem; }
th { background: var(--bg-secondary); }

/* ============ Home ============ */
.category { margin: 2rem 0; }
.category .blurb { color: var(--text-muted); margin-top: 0.15rem; }
.topic-cards { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: 0.75rem; }
.topic-cards a {
  display: block;
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 0.8rem 1rem;
  color: var(--text);
  text-decoration: none;
  background: var(--bg-secondary);
}
.topic-cards a:hover { border-color: var(--accent); }

/* ============ Specialized pages ============ */
.tabs { display: flex; flex-wrap: wrap; gap: 0.4rem; margin: 1rem 0; }
.tabs a {
  padding: 0.3rem 0.9rem;
  border: 1px solid var(--border);
  border-radius: 999px;
  color: var(--text);
  text-decoration: none;
  font-size: 0.85rem;
}
.tabs a.active { background: var(--accent); border-color: var(--accent); color: #fff; }
.case-meta { color: var(--text-muted); font-style: italic; }
.expand-card .detail { margin-top: 0.6rem; padding-top: 0.6rem; border-top: 1px dashed var(--border); }
.error-banner {
  background: #fff5f5;
  border: 1px solid #ffc9c9;
  color: #c92a2a;
  border-radius: 8px;
  padding: 0.7rem 1rem;
  margin: 1rem 0;
}
[data-theme="dark"] .error-banner { background: #2d1a1e; border-color: #5c2430; color: #ff8787; }
.lang-toggle { float: right; }
.filter-form { margin: 1rem 0; }
.filter-form input {
  padding: 0.45rem 0.7rem;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg);
  color: var(--text);
  min-width: 240px;
}

/* ============ Not found ============ */
.notfound { text-align: left; padding: 3rem 0; }
.notfound .debug {
  font-family: monospace;
  background: var(--code-bg);
  border-radius: 6px;
  padding: 0.7rem 1rem;
  display: inline-block;
}

@media (max-width: 800px) {
  .sidebar { display: none; }
  .sidebar.open { display: block; position: fixed; z-index: 10; }
}
`

// jsContent powers the theme toggle, the sidebar toggle, and the
// type-ahead catalog search. When served live the search box queries
// /api/search; a static build ships search-index.json instead and the
// same rules (two-character minimum, five-result cap) run client-side.
const jsContent = `(function () {
  // Theme toggle, persisted per browser.
  var root = document.documentElement;
  var stored = localStorage.getItem("devatlas-theme");
  if (stored) root.setAttribute("data-theme", stored);
  var themeBtn = document.getElementById("theme-toggle");
  if (themeBtn) themeBtn.addEventListener("click", function () {
    var next = root.getAttribute("data-theme") === "dark" ? "light" : "dark";
    root.setAttribute("data-theme", next);
    localStorage.setItem("devatlas-theme", next);
  });

  var menuBtn = document.getElementById("menu-toggle");
  if (menuBtn) menuBtn.addEventListener("click", function () {
    document.getElementById("sidebar").classList.toggle("open");
  });

  // Catalog search.
  var input = document.getElementById("search-input");
  var results = document.getElementById("search-results");
  if (!input || !results) return;

  var staticIndex = null;

  function renderResults(entries) {
    results.innerHTML = "";
    entries.forEach(function (e) {
      var a = document.createElement("a");
      a.href = e.path;
      a.textContent = e.title;
      var cat = document.createElement("span");
      cat.className = "cat";
      cat.textContent = e.category;
      a.appendChild(cat);
      results.appendChild(a);
    });
  }

  function searchStatic(q) {
    q = q.toLowerCase();
    var out = [];
    for (var i = 0; i < staticIndex.length && out.length < 5; i++) {
      if (staticIndex[i].title.toLowerCase().indexOf(q) !== -1) out.push(staticIndex[i]);
    }
    renderResults(out);
  }

  input.addEventListener("input", function () {
    var q = input.value.trim();
    if (q.length < 2) { results.innerHTML = ""; return; }

    fetch("/api/search?q=" + encodeURIComponent(q))
      .then(function (r) { if (!r.ok) throw new Error("no api"); return r.json(); })
      .then(renderResults)
      .catch(function () {
        // Static build: fall back to the shipped index.
        if (staticIndex) { searchStatic(q); return; }
        fetch("/search-index.json")
          .then(function (r) { return r.json(); })
          .then(function (ix) { staticIndex = ix; searchStatic(q); })
          .catch(function () { results.innerHTML = ""; });
      });
  });
})();
`
