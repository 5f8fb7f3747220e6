package serverdebug

import (
	"html/template"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/labstack/echo/v4"
)

var routesTmpl = template.Must(template.New("routes").Parse(`<html>
	<title>Pages Routes</title>
<body>
	<h2>Routes</h2>
	<table>
		<tr><th>Path</th><th>File</th><th>Status</th><th>Size</th></tr>
		{{range .Routes}}
		<tr><td>{{.Path}}</td><td>{{.File}}</td><td>{{.Status}}</td><td>{{.Size}}</td></tr>
		{{end}}
	</table>
	<p>Not found page: {{.NotFound.File}} ({{.NotFound.Size}})</p>
</body>
</html>
`))

type routeInfo struct {
	Path   string `json:"path"`
	File   string `json:"file"`
	Status int    `json:"status"`
	Bytes  int64  `json:"bytes"`
	Size   string `json:"size"`
}

type routesInfo struct {
	Routes   []routeInfo `json:"routes"`
	NotFound routeInfo   `json:"notFound"`
}

func (s *Server) collectRoutes() routesInfo {
	rr := s.pages.Routes()

	info := routesInfo{
		Routes:   make([]routeInfo, 0, len(rr)),
		NotFound: s.fileInfo(s.pages.NotFoundFile()),
	}
	info.NotFound.Status = http.StatusNotFound

	for _, r := range rr {
		ri := s.fileInfo(r.File)
		ri.Path = r.Path
		ri.Status = r.Status
		info.Routes = append(info.Routes, ri)
	}
	return info
}

func (s *Server) fileInfo(file string) routeInfo {
	ri := routeInfo{File: file, Bytes: s.pages.FileSize(file), Size: "missing"}
	if ri.Bytes >= 0 {
		ri.Size = humanize.Bytes(uint64(ri.Bytes))
	}
	return ri
}

func (s *Server) Routes(eCtx echo.Context) error {
	eCtx.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	return routesTmpl.Execute(eCtx.Response(), s.collectRoutes())
}

func (s *Server) RoutesJSON(eCtx echo.Context) error {
	return eCtx.JSON(http.StatusOK, s.collectRoutes())
}
