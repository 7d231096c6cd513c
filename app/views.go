package app

import (
	"html"
	"net/http"
)

// HelloView renders the greeting as HTML.
type HelloView struct{ base }

func (v *HelloView) Execute() {
	if v.c == nil {
		return
	}
	m := &GreetingModel{Name: v.c.Query("name")}
	m.Execute()
	v.c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>"+html.EscapeString(m.Text)+"</h1>\n"))
}
