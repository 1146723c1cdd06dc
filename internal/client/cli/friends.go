package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"remindme/internal/client/api"
)

func parseID(args []string, usage string) (uuid.UUID, error) {
	if len(args) == 0 {
		return uuid.Nil, errors.New(usage)
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

// listFriends refreshes the directory and prints pending requests and friends.
// A partial refresh still prints whatever was fetched before the error.
func (a *App) listFriends(ctx context.Context) error {
	refreshErr := a.friends.Refresh(ctx)
	if errors.Is(refreshErr, api.ErrNoSession) {
		return refreshErr
	}

	d := a.friends.Directory()

	if len(d.Received) > 0 {
		fmt.Fprintln(a.out, "Incoming requests:")
		for _, r := range d.Received {
			fmt.Fprintf(a.out, "  %s  %s <%s>\n", r.ID, r.Counterparty.Name, r.Counterparty.Email)
		}
	}
	if len(d.Sent) > 0 {
		fmt.Fprintln(a.out, "Sent requests:")
		for _, r := range d.Sent {
			fmt.Fprintf(a.out, "  %s  %s <%s>\n", r.ID, r.Counterparty.Name, r.Counterparty.Email)
		}
	}

	fmt.Fprintf(a.out, "Friends (%d):\n", len(d.Friends))
	for _, f := range d.Friends {
		fmt.Fprintf(a.out, "  %s  %s <%s>\n", f.FriendshipID, f.Friend.Name, f.Friend.Email)
	}

	return refreshErr
}

func (a *App) respond(ctx context.Context, args []string, accept bool) error {
	verb := "accept"
	if !accept {
		verb = "reject"
	}
	id, err := parseID(args, "Usage: "+verb+" <request-id>")
	if err != nil {
		return err
	}

	if err := a.friends.Respond(ctx, id, accept); err != nil {
		return err
	}
	if accept {
		fmt.Fprintln(a.out, "Request accepted.")
	} else {
		fmt.Fprintln(a.out, "Request rejected.")
	}
	return nil
}

func (a *App) unfriend(ctx context.Context, args []string) error {
	id, err := parseID(args, "Usage: unfriend <friendship-id>")
	if err != nil {
		return err
	}

	if err := a.friends.Unfriend(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Friend removed.")
	return nil
}

// addFriend searches a user by email and, if no relation exists yet, offers
// to send a friend request.
func (a *App) addFriend(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Friend's email", a.out)
	if err != nil {
		return err
	}

	c, err := a.friends.SearchByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintln(a.out, "No user with that email.")
			return nil
		}
		var netErr *api.NetworkError
		if errors.As(err, &netErr) {
			fmt.Fprintln(a.out, "Could not reach the server, try again later.")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Found %s <%s>\n", c.Name, c.Email)
	if !c.CanRequest() {
		fmt.Fprintf(a.out, "Relation already exists: %s\n", *c.Status)
		return nil
	}

	answer, err := getSimpleText(a.reader, "Send a friend request? (y/n)", a.out)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "yes" {
		return nil
	}

	if err := a.friends.SendRequest(ctx, c.Email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Request sent.")
	return nil
}
