// Package apidoc builds an OpenAPI 3.0 description from route
// annotations registered alongside the router's route table, and serves
// it at a fixed documentation path.
package apidoc

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

// Param describes a single operation parameter.
type Param struct {
	Name        string
	In          string // "path" or "query"
	Type        string
	Required    bool
	Description string
}

// Operation annotates one route.
type Operation struct {
	Tag       string
	Summary   string
	Params    []Param
	FormBody  map[string]string // form field name -> type
	Responses map[string]string // status code -> description
}

// Registry collects route annotations.
type Registry struct {
	title   string
	version string
	paths   map[string]map[string]Operation
}

func NewRegistry(title, version string) *Registry {
	return &Registry{
		title:   title,
		version: version,
		paths:   make(map[string]map[string]Operation),
	}
}

// Add registers an annotation for a method and gin-style path. Paths like
// /books/:id are converted to the OpenAPI /books/{id} form, and path
// parameters are derived from the path itself.
func (r *Registry) Add(method, path string, op Operation) {
	docPath, pathParams := convertPath(path)
	op.Params = append(pathParams, op.Params...)

	if r.paths[docPath] == nil {
		r.paths[docPath] = make(map[string]Operation)
	}
	r.paths[docPath][strings.ToLower(method)] = op
}

// --- OpenAPI document types ---

type Document struct {
	OpenAPI string                         `json:"openapi"`
	Info    Info                           `json:"info"`
	Paths   map[string]map[string]PathItem `json:"paths"`
}

type Info struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

type PathItem struct {
	Tags        []string                `json:"tags,omitempty"`
	Summary     string                  `json:"summary,omitempty"`
	Parameters  []ParameterObject       `json:"parameters,omitempty"`
	RequestBody *RequestBodyObject      `json:"requestBody,omitempty"`
	Responses   map[string]ResponseBody `json:"responses"`
}

type ParameterObject struct {
	Name        string       `json:"name"`
	In          string       `json:"in"`
	Required    bool         `json:"required"`
	Description string       `json:"description,omitempty"`
	Schema      SchemaObject `json:"schema"`
}

type RequestBodyObject struct {
	Content map[string]MediaTypeObject `json:"content"`
}

type MediaTypeObject struct {
	Schema SchemaObject `json:"schema"`
}

type SchemaObject struct {
	Type       string                  `json:"type,omitempty"`
	Properties map[string]SchemaObject `json:"properties,omitempty"`
	Items      *SchemaObject           `json:"items,omitempty"`
}

type ResponseBody struct {
	Description string `json:"description"`
}

// Document builds the OpenAPI document from the registered annotations.
func (r *Registry) Document() Document {
	paths := make(map[string]map[string]PathItem, len(r.paths))
	for path, ops := range r.paths {
		items := make(map[string]PathItem, len(ops))
		for method, op := range ops {
			items[method] = buildPathItem(op)
		}
		paths[path] = items
	}

	return Document{
		OpenAPI: "3.0.3",
		Info:    Info{Title: r.title, Version: r.version},
		Paths:   paths,
	}
}

// Handler serves the document as JSON.
func (r *Registry) Handler() gin.HandlerFunc {
	doc := r.Document()
	return func(c *gin.Context) {
		c.IndentedJSON(http.StatusOK, doc)
	}
}

func buildPathItem(op Operation) PathItem {
	item := PathItem{
		Summary:   op.Summary,
		Responses: make(map[string]ResponseBody, len(op.Responses)),
	}
	if op.Tag != "" {
		item.Tags = []string{op.Tag}
	}
	for code, desc := range op.Responses {
		item.Responses[code] = ResponseBody{Description: desc}
	}

	for _, p := range op.Params {
		item.Parameters = append(item.Parameters, ParameterObject{
			Name:        p.Name,
			In:          p.In,
			Required:    p.Required,
			Description: p.Description,
			Schema:      SchemaObject{Type: p.Type},
		})
	}

	if len(op.FormBody) > 0 {
		props := make(map[string]SchemaObject, len(op.FormBody))
		for name, typ := range op.FormBody {
			if strings.HasSuffix(typ, "[]") {
				props[name] = SchemaObject{
					Type:  "array",
					Items: &SchemaObject{Type: strings.TrimSuffix(typ, "[]")},
				}
				continue
			}
			props[name] = SchemaObject{Type: typ}
		}
		item.RequestBody = &RequestBodyObject{
			Content: map[string]MediaTypeObject{
				"application/x-www-form-urlencoded": {
					Schema: SchemaObject{Type: "object", Properties: props},
				},
			},
		}
	}

	return item
}

// convertPath turns a gin route path into an OpenAPI path and its path
// parameters.
func convertPath(path string) (string, []Param) {
	var params []Param
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			name := strings.TrimPrefix(seg, ":")
			segments[i] = "{" + name + "}"
			params = append(params, Param{
				Name:     name,
				In:       "path",
				Type:     "string",
				Required: true,
			})
		}
	}
	sort.SliceStable(params, func(i, j int) bool { return params[i].Name < params[j].Name })
	return strings.Join(segments, "/"), params
}
