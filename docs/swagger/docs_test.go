package swagger

import (
	"encoding/json"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

var (
	paramLine  = regexp.MustCompile(`^// @Param (\S+) (\S+) \S+ \S+ "(.*)"$`)
	routerLine = regexp.MustCompile(`^// @Router (\S+) \[(\w+)\]$`)
)

type annotatedParam struct {
	name, in, description string
}

// annotatedRoutes collects the @Param lines of every @Router block in a
// handler source file, keyed by "<method> <path>".
func annotatedRoutes(t *testing.T, path string) map[string][]annotatedParam {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	routes := make(map[string][]annotatedParam)
	var params []annotatedParam
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if m := paramLine.FindStringSubmatch(line); m != nil {
			params = append(params, annotatedParam{name: m[1], in: m[2], description: m[3]})
			continue
		}
		if m := routerLine.FindStringSubmatch(line); m != nil {
			routes[m[2]+" "+m[1]] = params
			params = nil
		}
	}
	return routes
}

func TestDocMatchesHandlerAnnotations(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]struct {
			Parameters []struct {
				Name        string `json:"name"`
				In          string `json:"in"`
				Description string `json:"description"`
			} `json:"parameters"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	routes := annotatedRoutes(t, "../../feature/diff/handler.go")
	require.NotEmpty(t, routes)

	for route, params := range routes {
		t.Run(route, func(t *testing.T) {
			method, path, _ := strings.Cut(route, " ")
			op, ok := doc.Paths[path][method]
			require.True(t, ok, "route missing from doc")

			got := make(map[string]annotatedParam, len(op.Parameters))
			for _, p := range op.Parameters {
				got[p.Name] = annotatedParam{name: p.Name, in: p.In, description: p.Description}
			}
			assert.Len(t, got, len(params))
			for _, want := range params {
				assert.Equal(t, want, got[want.name])
			}
		})
	}
}

func TestDocFormatDefault(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)
	assert.Contains(t, raw, `"json (default) or text"`)
}
