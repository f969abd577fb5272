package cli

import (
	"context"
	"fmt"
	"os"
	"time"
)

// Chat prints the conversation with the given profile, then reads
// messages to send until an empty line is entered.
func (a *App) Chat(ctx context.Context, profileID string) error {
	if !a.requireAuth() {
		return nil
	}

	msgs, err := a.chatService.History(ctx, profileID)
	if err != nil {
		renderError(err)
		return err
	}

	self := a.root.Session.Snapshot().User.ID
	for _, m := range msgs {
		who := "them"
		if m.SourceProfile == self {
			who = "you"
		}
		printlnFn(fmt.Sprintf("[%s] %s: %s",
			time.Unix(m.Timestamp, 0).Format("2006-01-02 15:04"), who, m.Text))
	}

	for {
		text, err := getSimpleText(a.reader, "Message (empty to leave)", os.Stdout)
		if err != nil {
			return err
		}
		if text == "" {
			return nil
		}
		if err := a.chatService.Send(ctx, profileID, text); err != nil {
			renderError(err)
			continue
		}
		printlnFn("Sent.")
	}
}

// Notifications prints the activity feed, newest first as the server
// returns it, marking the unread ones.
func (a *App) Notifications(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	ns, err := a.notificationService.List(ctx)
	if err != nil {
		renderError(err)
		return err
	}

	if len(ns) == 0 {
		printlnFn("Nothing new.")
		return nil
	}
	for _, n := range ns {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%s [%s] %s from %s", marker,
			time.Unix(n.Timestamp, 0).Format("2006-01-02 15:04"), n.Type, n.SourceProfile))
	}
	return nil
}
