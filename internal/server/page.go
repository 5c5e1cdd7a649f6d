package server

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/san-kum/popgrowth/internal/export"
	"github.com/san-kum/popgrowth/internal/logistic"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 0; display: flex; color: #333; }
aside { width: 300px; padding: 1rem; background: #f4f4f8; min-height: 100vh; }
main { flex: 1; padding: 1rem 2rem; }
h3 { font-size: 22px; color: #333; }
label { display: block; margin-top: .8rem; font-size: .9rem; }
input { width: 100%; }
.formula { font-family: serif; font-size: 1.1rem; }
.error { white-space: pre-line; border: 1px solid #d33; background: #fee; padding: 1rem; color: #900; }
.results { border-collapse: collapse; }
.results td, .results th { padding: 2px 12px; text-align: right; border-bottom: 1px solid #ddd; }
</style>
</head>
<body>
<aside>
<h4>Parameters</h4>
<form method="get" action="/">
{{range .Fields}}<label for="{{.Name}}">{{.Label}}</label>
<input type="number" id="{{.Name}}" name="{{.Name}}" min="{{.Min}}" max="{{.Max}}" step="{{.Step}}" value="{{.Value}}">
{{end}}<p><button type="submit">Update</button></p>
</form>
</aside>
<main>
<h3>{{.Title}}</h3>
<p>Adjust N₀, r (may be negative), K and t in the sidebar.</p>
<p class="formula">{{.ODE}}</p>
<p class="formula">{{.Closed}}</p>
{{if .Error}}<div class="error">{{.Error}}</div>
{{else}}<h4>Results</h4>
<table class="results">
<tr><th>t</th><th>N</th></tr>
{{range .Rows}}<tr><td>{{.T}}</td><td>{{.N}}</td></tr>
{{end}}</table>
<h4>Population N over time</h4>
{{.Chart}}
{{end}}</main>
</body>
</html>
`))

type fieldView struct {
	Name, Label, Min, Max, Step, Value string
}

type rowView struct {
	T int
	N string
}

type pageData struct {
	Title  string
	ODE    string
	Closed string
	Fields []fieldView
	Rows   []rowView
	Chart  template.HTML
	Error  string
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:  logistic.ModelName,
		ODE:    logistic.EquationODE,
		Closed: logistic.EquationClosedForm,
	}

	status := http.StatusOK
	p, err := parseParams(r.URL.Query(), s.cfg.Params)
	data.Fields = fieldViews(p)
	if err != nil {
		status = http.StatusBadRequest
		data.Error = err.Error()
	} else if series, err := s.evaluate(p); err != nil {
		data.Error = err.Error()
		if de, ok := logistic.AsDomainError(err); ok {
			data.Error = de.Explain()
		}
	} else {
		data.Rows = make([]rowView, len(series))
		for i, pt := range series {
			data.Rows[i] = rowView{T: pt.T, N: export.CellN(pt)}
		}
		data.Chart = template.HTML(export.SeriesToSVG(series, s.svgOptions()))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTmpl.Execute(w, data); err != nil {
		s.logger.Error().Err(err).Msg("render page")
	}
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	p, err := parseParams(r.URL.Query(), s.cfg.Params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	series, err := s.evaluate(p)
	if err != nil {
		msg := err.Error()
		if de, ok := logistic.AsDomainError(err); ok {
			msg = de.Explain()
		}
		http.Error(w, msg, http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write([]byte(export.SeriesToSVG(series, s.svgOptions())))
}

func (s *Server) svgOptions() export.SVGOptions {
	opts := export.DefaultSVGOptions()
	if s.cfg.Server.SVGWidth > 0 {
		opts.Width = s.cfg.Server.SVGWidth
	}
	if s.cfg.Server.SVGHeight > 0 {
		opts.Height = s.cfg.Server.SVGHeight
	}
	opts.Background = "#ffffff"
	opts.Stroke = "#1f77b4"
	opts.AxisColor = "#555555"
	return opts
}

func fieldViews(p logistic.Params) []fieldView {
	fields := logistic.Fields()
	out := make([]fieldView, len(fields))
	for i, f := range fields {
		out[i] = fieldView{
			Name:  f.Name,
			Label: f.Label,
			Min:   f.Format(f.Min),
			Max:   f.Format(f.Max),
			Step:  strconv.FormatFloat(f.Step, 'f', -1, 64),
			Value: f.Format(f.Get(p)),
		}
	}
	return out
}
