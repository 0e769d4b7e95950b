package router

import (
	"net/url"
	"sort"
	"strings"
)

// Path is the fragment path of a location, without its query string
type Path string

const (
	PathLogin    Path = "#/login"
	PathRegister Path = "#/register"
	PathFeed     Path = "#/feed"
	PathCreate   Path = "#/create"
	PathPost     Path = "#/post"
	PathProfile  Path = "#/profile"
	PathLogout   Path = "#/logout"
)

// Access is the guard class of a path
type Access int

const (
	AccessUnknown       Access = iota // Not a known path
	AccessGuest                       // Only while logged out
	AccessAuthenticated               // Only with a valid session
	AccessUnconditional               // Always runs, never renders
)

// Query parameter names
const (
	ParamID   = "id"
	ParamName = "name"
	ParamEdit = "edit"
	ParamTag  = "tag"
	ParamPage = "page"
)

var pathAccess = map[Path]Access{
	PathLogin:    AccessGuest,
	PathRegister: AccessGuest,
	PathFeed:     AccessAuthenticated,
	PathCreate:   AccessAuthenticated,
	PathPost:     AccessAuthenticated,
	PathProfile:  AccessAuthenticated,
	PathLogout:   AccessUnconditional,
}

// requiredParams lists parameters a path cannot render without
var requiredParams = map[Path][]string{
	PathPost: {ParamID},
}

// Access returns the guard class of the path
func (p Path) Access() Access {
	return pathAccess[p]
}

// Route is a parsed location: a path plus trimmed, non-empty query values
type Route struct {
	Path   Path
	Params map[string]string
}

// Param returns a query value, or "" when absent
func (r Route) Param(key string) string {
	return r.Params[key]
}

// Missing returns the first required parameter the route lacks
func (r Route) Missing() (string, bool) {
	for _, key := range requiredParams[r.Path] {
		if r.Param(key) == "" {
			return key, true
		}
	}
	return "", false
}

// String returns the location of the route
func (r Route) String() string {
	return Location(r.Path, r.Params)
}

// Parse turns a location into a route. An empty location is the login route.
func Parse(location string) Route {
	location = strings.TrimSpace(location)
	if location == "" || location == "#" {
		return Route{Path: PathLogin, Params: map[string]string{}}
	}
	if !strings.HasPrefix(location, "#") {
		location = "#" + strings.TrimPrefix(location, "/")
		if !strings.HasPrefix(location, "#/") {
			location = "#/" + strings.TrimPrefix(location, "#")
		}
	}

	path, query, _ := strings.Cut(location, "?")
	query, _, _ = strings.Cut(query, "#")

	params := map[string]string{}
	values, err := url.ParseQuery(query)
	if err == nil {
		for key, vals := range values {
			if len(vals) == 0 {
				continue
			}
			if v := strings.TrimSpace(vals[0]); v != "" {
				params[key] = v
			}
		}
	}
	return Route{Path: Path(path), Params: params}
}

// Location builds a location string from a path and query values. Empty values are dropped.
func Location(path Path, params map[string]string) string {
	if len(params) == 0 {
		return string(path)
	}

	keys := make([]string, 0, len(params))
	for k, v := range params {
		if strings.TrimSpace(v) != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return string(path)
	}
	sort.Strings(keys)

	values := url.Values{}
	for _, k := range keys {
		values.Set(k, params[k])
	}
	return string(path) + "?" + values.Encode()
}
