// Package navigator maps paths to views and gates every navigation on the
// session state. The guard is synchronous and side-effect-free: it reads
// what the session already holds in memory and never talks to the network.
package navigator

import (
	"strings"

	"github.com/quillboard/quill/internal/session"
)

type Navigator struct {
	routes  []Route
	session *session.Session
}

func New(sess *session.Session) *Navigator {
	return &Navigator{routes: Routes(), session: sess}
}

// Resolution is the outcome of one navigation attempt. Redirect is empty
// when the navigation may proceed.
type Resolution struct {
	Matched  bool
	Route    Route
	Params   map[string]string
	Redirect string
}

func (r Resolution) Allowed() bool {
	return r.Matched && r.Redirect == ""
}

// Resolve evaluates a navigation attempt. The guard runs on every call,
// including the initial one; first matching rule wins:
//
//  1. route requires auth and the session is not authenticated -> login
//  2. route requires admin and the user is not an authenticated admin -> login
//  3. otherwise allow
//
// A denied navigation is aborted, not queued for after login.
func (n *Navigator) Resolve(path string) Resolution {
	route, params, ok := n.match(path)
	if !ok {
		return Resolution{}
	}

	res := Resolution{Matched: true, Route: route, Params: params}
	switch {
	case route.RequiresAuth && !n.session.Authenticated():
		res.Redirect = LoginPath
	case route.RequiresAdmin && (!n.session.Authenticated() || !n.session.User().IsAdmin()):
		res.Redirect = LoginPath
	}
	return res
}

func (n *Navigator) match(path string) (Route, map[string]string, bool) {
	segments := splitPath(path)
	for _, route := range n.routes {
		if params, ok := matchPattern(route.Pattern, segments); ok {
			return route, params, true
		}
	}
	return Route{}, nil, false
}

func matchPattern(pattern string, segments []string) (map[string]string, bool) {
	want := splitPath(pattern)
	if len(want) != len(segments) {
		return nil, false
	}

	var params map[string]string
	for i, w := range want {
		if strings.HasPrefix(w, "{") && strings.HasSuffix(w, "}") {
			if params == nil {
				params = make(map[string]string)
			}
			params[w[1:len(w)-1]] = segments[i]
			continue
		}
		if w != segments[i] {
			return nil, false
		}
	}
	return params, true
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
