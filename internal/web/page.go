package web

import (
	"html/template"

	"tasklist/internal/output"
	"tasklist/internal/service"
)

type pageData struct {
	Title       string
	Input       string
	Tasks       []service.Task
	Session     string
	InputID     string
	AddButtonID string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; background: #f3f4f6; display: flex; justify-content: center; padding: 2rem; }
main { background: #fff; border-radius: 12px; padding: 1.5rem; width: 28rem; box-shadow: 0 4px 12px rgba(0,0,0,.1); }
form.entry { display: flex; gap: .5rem; margin-bottom: 1.5rem; }
form.entry input { flex: 1; padding: .5rem 1rem; }
ul { list-style: none; padding: 0; }
li { display: flex; align-items: center; gap: .75rem; padding: .75rem; background: #f9fafb; margin-bottom: .75rem; border-radius: 8px; }
li span { flex: 1; }
li form { margin: 0; }
.line-through { text-decoration: line-through; color: #6b7280; }
footer { color: #9ca3af; font-size: .75rem; }
</style>
</head>
<body>
<main>
<h1>{{.Title}}</h1>
<form class="entry" method="post" action="/tasks">
<input type="text" name="text" value="{{.Input}}" placeholder="Add a new task" aria-label="New task input" data-testid="{{.InputID}}" autofocus>
<button type="submit" aria-label="Add task" data-testid="{{.AddButtonID}}">+</button>
</form>
<ul>
{{- range .Tasks}}
<li>
<form method="post" action="/tasks/{{.ID}}/toggle"><button type="submit" role="checkbox" aria-checked="{{.Completed}}" aria-label="Mark {{printf "%q" .Text}} as complete" data-testid="{{.CheckboxID}}">{{if .Completed}}&#9745;{{else}}&#9744;{{end}}</button></form>
<span class="{{if .Completed}}line-through{{else}}open{{end}}">{{.Text}}</span>
<form method="post" action="/tasks/{{.ID}}/delete"><button type="submit" aria-label="Delete {{printf "%q" .Text}}" data-testid="{{.DeleteButtonID}}">&#10005;</button></form>
</li>
{{- end}}
</ul>
{{- if .Session}}
<footer>session {{.Session}}</footer>
{{- end}}
</main>
</body>
</html>
`))

func newPageData(view service.View, session string) pageData {
	return pageData{
		Title:       output.Title,
		Input:       view.Input,
		Tasks:       view.Tasks,
		Session:     session,
		InputID:     service.InputID,
		AddButtonID: service.AddButtonID,
	}
}
