package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quillboard/quill/internal/apiclient"
	"github.com/quillboard/quill/internal/chat"
	"github.com/quillboard/quill/internal/config"
	"github.com/quillboard/quill/internal/credstore"
	"github.com/quillboard/quill/internal/logger"
	"github.com/quillboard/quill/internal/markdown"
	"github.com/quillboard/quill/internal/navigator"
	"github.com/quillboard/quill/internal/session"
	"github.com/quillboard/quill/internal/store"
)

const usage = `usage: quill [-config path] <command> [args]

commands:
  register <username> <email> <password>
  login <email> <password>
  logout
  whoami
  stats
  passwd <current> <new>
  posts
  post <id>
  create <title> <content>
  edit <id> <title> <content>
  rm <id>
  comment <post-id> <content>
  comments <post-id>
  navigate <path>
  chat
  admin users|posts|comments
`

type app struct {
	session  *session.Session
	posts    *store.Posts
	comments *store.Comments
	admin    *store.Admin
	nav      *navigator.Navigator
	chat     *chat.Client
	render   *markdown.Renderer
}

func main() {
	log.SetFlags(log.Lshortfile)

	var configPath string
	flag.StringVar(&configPath, "config", "config/config.yaml", "path to config file")
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.MustLoad(configPath)
	logger.Initialize(cfg.Log.Level, cfg.Log.JSON)

	creds, err := credstore.Open(cfg.State.Dir)
	if err != nil {
		log.Fatal(err)
	}
	defer creds.Close()

	if cfg.Metrics.Addr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			logger.Log.Error("metrics listener stopped", "error", http.ListenAndServe(cfg.Metrics.Addr, mux))
		}()
	}

	client := apiclient.New(cfg.API.BaseURL, cfg.API.Timeout.Std())
	sess := session.New(client, creds)

	ctx := context.Background()
	sess.Initialize(ctx)

	a := &app{
		session:  sess,
		posts:    store.NewPosts(client, sess),
		comments: store.NewComments(client, sess),
		admin:    store.NewAdmin(client, sess),
		nav:      navigator.New(sess),
		chat:     chat.New(cfg.Chat.URL, sess),
		render:   markdown.New(),
	}

	if err := a.run(ctx, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		if len(rest) != 3 {
			return fmt.Errorf("register needs <username> <email> <password>")
		}
		ok, err := a.session.Register(ctx, rest[0], rest[1], rest[2])
		if err != nil {
			return err
		}
		// ok only means the backend issued a credential; the profile fetch
		// behind it can still fail and drop the session.
		if ok && a.session.Authenticated() {
			fmt.Println("registered and logged in as", a.session.User().Username)
		} else {
			fmt.Println("registration did not produce a usable session, try logging in")
		}
		return nil
	case "login":
		if len(rest) != 2 {
			return fmt.Errorf("login needs <email> <password>")
		}
		ok, err := a.session.Login(ctx, rest[0], rest[1])
		if err != nil {
			return err
		}
		if ok && a.session.Authenticated() {
			fmt.Println("logged in as", a.session.User().Username)
		} else {
			fmt.Println("login did not produce a usable session")
		}
		return nil
	case "logout":
		a.session.Logout()
		fmt.Println("logged out")
		return nil
	case "whoami":
		u := a.session.User()
		if u == nil {
			fmt.Println("not logged in")
			return nil
		}
		fmt.Printf("%s <%s> role=%s\n", u.Username, u.Email, u.Role)
		return nil
	case "stats":
		stats, err := a.session.FetchStats(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("posts: %d, comments: %d\n", stats.Posts, stats.Comments)
		return nil
	case "passwd":
		if len(rest) != 2 {
			return fmt.Errorf("passwd needs <current> <new>")
		}
		if err := a.session.ChangePassword(ctx, rest[0], rest[1]); err != nil {
			return err
		}
		fmt.Println("password changed")
		return nil
	case "posts":
		a.posts.FetchAll(ctx)
		if err := a.posts.Err(); err != nil {
			return err
		}
		for _, p := range a.posts.Items() {
			fmt.Printf("#%d  %s  (%d comments)\n", p.Id, p.Title, p.CommentsCount)
		}
		return nil
	case "post":
		id, err := parseId(rest, "post")
		if err != nil {
			return err
		}
		a.posts.FetchOne(ctx, id)
		if err := a.posts.Err(); err != nil {
			return err
		}
		p := a.posts.Current()
		if p == nil {
			return fmt.Errorf("post %d not found", id)
		}
		body, err := a.render.Render(p.Content)
		if err != nil {
			return err
		}
		fmt.Printf("#%d  %s\n\n%s\n", p.Id, p.Title, body)
		return nil
	case "create":
		if len(rest) != 2 {
			return fmt.Errorf("create needs <title> <content>")
		}
		p, err := a.posts.Create(ctx, rest[0], rest[1])
		if err != nil {
			return err
		}
		fmt.Println("created post", p.Id)
		return nil
	case "edit":
		if len(rest) != 3 {
			return fmt.Errorf("edit needs <id> <title> <content>")
		}
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad post id %q", rest[0])
		}
		p, err := a.posts.Update(ctx, id, rest[1], rest[2])
		if err != nil {
			return err
		}
		fmt.Println("updated post", p.Id)
		return nil
	case "rm":
		id, err := parseId(rest, "rm")
		if err != nil {
			return err
		}
		if err := a.posts.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Println("deleted post", id)
		return nil
	case "comment":
		if len(rest) != 2 {
			return fmt.Errorf("comment needs <post-id> <content>")
		}
		postId, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad post id %q", rest[0])
		}
		c, err := a.comments.Create(ctx, postId, rest[1])
		if err != nil {
			return err
		}
		fmt.Println("created comment", c.Id)
		return nil
	case "comments":
		postId, err := parseId(rest, "comments")
		if err != nil {
			return err
		}
		a.comments.FetchAll(ctx, postId)
		if err := a.comments.Err(); err != nil {
			return err
		}
		for _, c := range a.comments.Items() {
			author := "?"
			if c.Author != nil {
				author = c.Author.Username
			}
			fmt.Printf("#%d  %s: %s\n", c.Id, author, c.Content)
		}
		return nil
	case "navigate":
		if len(rest) != 1 {
			return fmt.Errorf("navigate needs <path>")
		}
		res := a.nav.Resolve(rest[0])
		switch {
		case !res.Matched:
			fmt.Println("no route for", rest[0])
		case res.Redirect != "":
			fmt.Println("redirect to", res.Redirect)
		default:
			fmt.Println("route:", res.Route.Name)
		}
		return nil
	case "chat":
		return a.runChat(ctx)
	case "admin":
		return a.runAdmin(ctx, rest)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// runChat connects to the chat endpoint and bridges stdin to it. Incoming
// messages print as they arrive; an empty line exits.
func (a *app) runChat(ctx context.Context) error {
	if res := a.nav.Resolve("/chat"); !res.Allowed() {
		return fmt.Errorf("chat requires login")
	}
	if err := a.chat.Connect(ctx); err != nil {
		return err
	}
	defer a.chat.Close()

	for _, m := range a.chat.Messages() {
		fmt.Printf("%s: %s\n", m.Username, m.Content)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			return nil
		}
		if err := a.chat.Send(line, nil); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (a *app) runAdmin(ctx context.Context, rest []string) error {
	if res := a.nav.Resolve("/admin"); !res.Allowed() {
		return fmt.Errorf("admin commands require an admin account")
	}
	if len(rest) != 1 {
		return fmt.Errorf("admin needs users|posts|comments")
	}
	switch rest[0] {
	case "users":
		a.admin.FetchUsers(ctx)
		if err := a.admin.Err(); err != nil {
			return err
		}
		for _, u := range a.admin.Users() {
			fmt.Printf("#%d  %s <%s> role=%s\n", u.Id, u.Username, u.Email, u.Role)
		}
	case "posts":
		a.admin.FetchPosts(ctx)
		if err := a.admin.Err(); err != nil {
			return err
		}
		for _, p := range a.admin.Posts() {
			fmt.Printf("#%d  %s (author %d)\n", p.Id, p.Title, p.AuthorId)
		}
	case "comments":
		a.admin.FetchComments(ctx)
		if err := a.admin.Err(); err != nil {
			return err
		}
		for _, c := range a.admin.Comments() {
			fmt.Printf("#%d  post %d: %s\n", c.Id, c.PostId, c.Content)
		}
	default:
		return fmt.Errorf("unknown admin listing %q", rest[0])
	}
	return nil
}

func parseId(rest []string, cmd string) (int64, error) {
	if len(rest) != 1 {
		return 0, fmt.Errorf("%s needs <id>", cmd)
	}
	id, err := strconv.ParseInt(rest[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad id %q", rest[0])
	}
	return id, nil
}
