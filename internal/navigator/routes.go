package navigator

// Route declares a view the UI layer can navigate to, with the access
// requirements the guard evaluates. Requirements are meta flags on the
// route itself; there is no separate public allow-list.
type Route struct {
	Name          string
	Pattern       string
	RequiresAuth  bool
	RequiresAdmin bool
}

// LoginPath is where every denied navigation is redirected.
const LoginPath = "/login"

// Routes is the canonical route table. Literal patterns come before
// parameterized ones so /posts/create is never swallowed by /posts/{id}.
func Routes() []Route {
	return []Route{
		{Name: "Home", Pattern: "/"},
		{Name: "Login", Pattern: "/login"},
		{Name: "Register", Pattern: "/register"},
		{Name: "Posts", Pattern: "/posts"},
		{Name: "CreatePost", Pattern: "/posts/create", RequiresAuth: true},
		{Name: "PostDetail", Pattern: "/posts/{id}"},
		{Name: "Profile", Pattern: "/profile", RequiresAuth: true},
		{Name: "Chat", Pattern: "/chat", RequiresAuth: true},
		{Name: "AdminDashboard", Pattern: "/admin", RequiresAdmin: true},
		{Name: "AdminUsers", Pattern: "/admin/users", RequiresAdmin: true},
		{Name: "AdminPosts", Pattern: "/admin/posts", RequiresAdmin: true},
		{Name: "AdminComments", Pattern: "/admin/comments", RequiresAdmin: true},
	}
}
