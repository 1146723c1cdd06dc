package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.userName)
}

func (a *App) report(err error) {
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
	}
}

func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to remindme (type 'help' for commands)")
	scanner := bufio.NewScanner(a.in)

	for {
		fmt.Fprintf(a.out, "remindme %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		if ctx.Err() != nil {
			return
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: friends, accept <id>, reject <id>, unfriend <id>, addfriend,")
				fmt.Fprintln(a.out, "  search [text], next, prev, filter, remind, categories, newcategory,")
				fmt.Fprintln(a.out, "  profile, rename, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: signup, login, exit")
			}

		case "signup":
			a.report(a.Signup(ctx))
		case "login":
			a.report(a.Login(ctx))
		case "logout":
			a.report(a.Logout(ctx))

		case "friends":
			a.report(a.listFriends(ctx))
		case "accept":
			a.report(a.respond(ctx, args, true))
		case "reject":
			a.report(a.respond(ctx, args, false))
		case "unfriend":
			a.report(a.unfriend(ctx, args))
		case "addfriend":
			a.report(a.addFriend(ctx))

		case "search":
			a.report(a.search(ctx, args))
		case "next":
			a.report(a.nextPage(ctx))
		case "prev":
			a.report(a.prevPage(ctx))
		case "filter":
			a.report(a.filterCategory(ctx))

		case "remind":
			a.report(a.createReminder(ctx))
		case "categories":
			a.report(a.listCategories(ctx))
		case "newcategory":
			a.report(a.newCategory(ctx))

		case "profile":
			a.report(a.editNotifications(ctx))
		case "rename":
			a.report(a.rename(ctx))

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}

}
