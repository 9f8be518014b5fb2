// Command amal is a terminal client for the support chat: it wires the
// preference, auth and chat-session stores against a running backend.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/amal-dz/amal/internal/apiclient"
	"github.com/amal-dz/amal/internal/authstore"
	"github.com/amal-dz/amal/internal/chatstore"
	"github.com/amal-dz/amal/internal/config"
	"github.com/amal-dz/amal/internal/eventbus"
	"github.com/amal-dz/amal/internal/i18n"
	"github.com/amal-dz/amal/internal/localstore"
	"github.com/amal-dz/amal/internal/prefs"
)

const eventReply = "chat:reply"

// Shown instead of dropping the message when the backend is down.
var fallbackResponses = []string{
	"عذراً، ما قدرتش نوصل للخادم. جرب مرة أخرى من فضلك.",
	"كاين مشكل في الاتصال. راني هنا كي يرجع الاتصال.",
	"سمحلي، الخدمة ماشي متوفرة دروك. عاود جرب بعد شوية.",
}

type app struct {
	cfg      config.Config
	client   *apiclient.Client
	bus      *eventbus.Bus
	lang     *prefs.LanguageStore
	theme    *prefs.ThemeStore
	resolver *i18n.Resolver
	auth     *authstore.Store
	chats    *chatstore.Store

	// backend conversation id per local session; temporary-mode
	// conversations are keyed under tempConvKey and forgotten when the
	// mode is left.
	convIDs map[string]string
}

const tempConvKey = "!temporary"

func main() {
	ctx := context.Background()
	cfg := config.Load()

	local, err := localstore.Open(cfg.LocalDBPath)
	if err != nil {
		log.Fatalf("open local store: %v", err)
	}

	lang, err := prefs.NewLanguageStore(ctx, local, i18n.Language(cfg.DefaultLanguage))
	if err != nil {
		log.Fatalf("language store: %v", err)
	}

	client := apiclient.New(cfg.APIBaseURL)

	a := &app{
		cfg:      cfg,
		client:   client,
		bus:      eventbus.New(),
		lang:     lang,
		theme:    prefs.NewThemeStore(),
		resolver: i18n.NewResolver(lang),
		auth:     authstore.New(client, local),
		chats:    chatstore.New(),
		convIDs:  make(map[string]string),
	}

	a.bus.On(eventReply, func(payload any) {
		if msg, ok := payload.(chatstore.Message); ok {
			marker := ""
			if msg.IsError {
				marker = " [offline]"
			}
			fmt.Printf("\namal%s> %s\n\n", marker, msg.Content)
		}
	})
	a.lang.Subscribe(func(l i18n.Language) {
		fmt.Printf("language: %s (%s)\n", l, a.lang.Direction())
	})

	if err := a.auth.LoadStoredAuth(ctx); err != nil {
		log.Printf("restore session: %v", err)
	}
	if snap := a.auth.Snapshot(); snap.IsAuthenticated {
		fmt.Printf("signed in as %s\n", snap.User.Email)
	}

	fmt.Println(a.resolver.T("home.welcome"))
	fmt.Println(`type a message, or /help for commands`)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 64*1024)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "/") {
			if !a.command(ctx, line) {
				return
			}
			continue
		}
		a.send(ctx, line)
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("stdin: %v", err)
	}
}

// command runs one slash command. It returns false when the REPL
// should exit.
func (a *app) command(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "/quit", "/exit":
		return false

	case "/help":
		fmt.Println(`/signup <email> <password> [name]
/login <email> <password>
/logout
/forgot <email>
/reset <token> <new-password>
/lang <en|ar|fr|dz>
/theme
/new          start a new conversation
/sessions     list conversations
/temp         toggle temporary mode
/quit`)

	case "/signup":
		if len(args) < 2 {
			fmt.Println("usage: /signup <email> <password> [name]")
			return true
		}
		name := ""
		if len(args) > 2 {
			name = strings.Join(args[2:], " ")
		}
		if err := a.auth.Signup(ctx, args[0], args[1], name); err != nil {
			fmt.Printf("signup failed: %v\n", err)
			return true
		}
		fmt.Printf("welcome, %s\n", a.auth.Snapshot().User.Name)

	case "/login":
		if len(args) != 2 {
			fmt.Println("usage: /login <email> <password>")
			return true
		}
		if err := a.auth.Login(ctx, args[0], args[1]); err != nil {
			fmt.Printf("login failed: %v\n", err)
			return true
		}
		fmt.Printf("signed in as %s\n", a.auth.Snapshot().User.Email)

	case "/logout":
		a.auth.Logout(ctx)
		fmt.Println("signed out")

	case "/forgot":
		if len(args) != 1 {
			fmt.Println("usage: /forgot <email>")
			return true
		}
		msg, err := a.auth.ForgotPassword(ctx, args[0])
		if err != nil {
			fmt.Printf("request failed: %v\n", err)
			return true
		}
		fmt.Println(msg)

	case "/reset":
		if len(args) != 2 {
			fmt.Println("usage: /reset <token> <new-password>")
			return true
		}
		if err := a.auth.ResetPassword(ctx, args[0], args[1]); err != nil {
			fmt.Printf("reset failed: %v\n", err)
			return true
		}
		fmt.Println("password updated")

	case "/lang":
		if len(args) != 1 {
			fmt.Printf("current: %s\n", a.lang.Language())
			return true
		}
		if err := a.lang.Set(ctx, i18n.Language(args[0])); err != nil {
			fmt.Printf("unsupported language %q\n", args[0])
		}

	case "/theme":
		fmt.Printf("theme: %s\n", a.theme.Toggle())

	case "/new":
		a.chats.CreateSession()
		fmt.Println("started a new conversation")

	case "/sessions":
		for _, sess := range a.chats.Sessions() {
			current := " "
			if sess.ID == a.chats.CurrentSessionID() {
				current = "*"
			}
			fmt.Printf("%s %s  %s (%d messages)\n", current, sess.ID, sess.Title, len(sess.Messages))
		}

	case "/temp":
		next := !a.chats.TemporaryMode()
		a.chats.SetTemporaryMode(next)
		delete(a.convIDs, tempConvKey)
		if next {
			fmt.Println("temporary mode on: messages will not be kept")
		} else {
			fmt.Println("temporary mode off")
		}

	default:
		fmt.Printf("unknown command %s\n", cmd)
	}
	return true
}

// send delivers one user message and prints the reply. When the
// backend is unreachable the reply is a locally chosen fallback,
// flagged as an error so the transcript shows it was never sent.
func (a *app) send(ctx context.Context, text string) {
	userMsg := chatstore.Message{Role: chatstore.RoleUser, Content: text}

	if a.chats.TemporaryMode() {
		a.chats.AddTemporaryMessage(userMsg)
	} else {
		if a.chats.CurrentSessionID() == "" {
			a.chats.CreateSession()
		}
		if _, err := a.chats.AddMessage(a.chats.CurrentSessionID(), userMsg); err != nil {
			fmt.Printf("store message: %v\n", err)
			return
		}
	}

	convKey := tempConvKey
	if !a.chats.TemporaryMode() {
		convKey = a.chats.CurrentSessionID()
	}
	reply := a.requestReply(ctx, text, convKey)

	if a.chats.TemporaryMode() {
		a.chats.AddTemporaryMessage(reply)
	} else {
		if _, err := a.chats.AddMessage(a.chats.CurrentSessionID(), reply); err != nil {
			fmt.Printf("store message: %v\n", err)
			return
		}
	}

	a.bus.Emit(eventReply, reply)
}

func (a *app) requestReply(ctx context.Context, text, convKey string) chatstore.Message {
	resp, err := a.client.Chat(ctx, text, a.convIDs[convKey])
	if err != nil {
		return chatstore.Message{
			Role:    chatstore.RoleAssistant,
			Content: fallbackResponses[rand.IntN(len(fallbackResponses))],
			IsError: true,
		}
	}
	a.convIDs[convKey] = resp.ConversationID
	return chatstore.Message{
		Role:    chatstore.RoleAssistant,
		Content: resp.Response,
		Intent:  resp.Intent,
		Source:  resp.Source,
	}
}
