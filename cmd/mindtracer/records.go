package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmoriguchi/mindtracer/internal/cli"
	"github.com/tmoriguchi/mindtracer/internal/common"
	"github.com/tmoriguchi/mindtracer/internal/model"
)

func recordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Manage account records",
		Long:  `View and update the local user profile, subscription status, and broadcast messages.`,
	}

	cmd.AddCommand(userRecordCmd())
	cmd.AddCommand(subscriptionRecordCmd())
	cmd.AddCommand(messagesRecordCmd())

	return cmd
}

func userRecordCmd() *cobra.Command {
	var nameFlag, emailFlag string

	cmd := &cobra.Command{
		Use:   "user",
		Short: "Show or update the user profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initRecordStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			user, err := store.GetUser(ctx)
			switch {
			case errors.Is(err, common.ErrNotFound):
				user = &model.UserProfile{}
			case err != nil:
				return err
			}

			if cmd.Flags().Changed("name") || cmd.Flags().Changed("email") {
				if cmd.Flags().Changed("name") {
					user.DisplayName = nameFlag
				}
				if cmd.Flags().Changed("email") {
					user.Email = emailFlag
				}
				now := time.Now()
				user.LastLogin = &now
				if err := store.SaveUser(ctx, user); err != nil {
					return err
				}
				fmt.Println(cli.FormatSuccess("Profile saved"))
				return nil
			}

			if user.ID == "" {
				fmt.Println(cli.InfoStyle.Render("No profile yet. Set one with --name and --email."))
				return nil
			}
			fmt.Printf("Name:  %s\nEmail: %s\n", user.DisplayName, user.Email)
			if user.LastLogin != nil {
				fmt.Printf("Seen:  %s\n", user.LastLogin.Local().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&nameFlag, "name", "", "display name")
	cmd.Flags().StringVar(&emailFlag, "email", "", "email address")

	return cmd
}

func subscriptionRecordCmd() *cobra.Command {
	var tierFlag string

	cmd := &cobra.Command{
		Use:   "subscription",
		Short: "Show or update the subscription tier",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initRecordStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if cmd.Flags().Changed("tier") {
				user, err := store.GetUser(ctx)
				if err != nil && !errors.Is(err, common.ErrNotFound) {
					return err
				}

				sub := &model.SubscriptionStatus{Tier: model.ParseAccessLevel(tierFlag)}
				if user != nil {
					sub.UserID = user.ID
				}
				now := time.Now()
				sub.LastVerified = &now
				if err := store.SaveSubscription(ctx, sub); err != nil {
					return err
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Subscription set to %s", sub.Tier)))
				return nil
			}

			sub, err := store.GetSubscription(ctx)
			if errors.Is(err, common.ErrNotFound) {
				fmt.Println(cli.InfoStyle.Render("No subscription record; running on the free tier."))
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("Tier: %s\n", sub.Tier)
			if sub.ExpiresOn != nil {
				fmt.Printf("Expires: %s\n", sub.ExpiresOn.Local().Format("2006-01-02"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tierFlag, "tier", "", "subscription tier (free, premium)")

	return cmd
}

func messagesRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Manage broadcast messages",
	}

	cmd.AddCommand(listMessagesCmd())
	cmd.AddCommand(addMessageCmd())
	cmd.AddCommand(deleteMessageCmd())

	return cmd
}

func listMessagesCmd() *cobra.Command {
	var allFlag bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List messages, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initRecordStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			messages, err := store.ListMessages(ctx, !allFlag)
			if err != nil {
				return err
			}
			if len(messages) == 0 {
				fmt.Println(cli.InfoStyle.Render("No messages."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "ID\tDATE\tCATEGORY\tTITLE")
			for _, msg := range messages {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					msg.ID, msg.Date.Local().Format("2006-01-02"), msg.Category, msg.Title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&allFlag, "all", false, "include inactive messages")
	return cmd
}

func addMessageCmd() *cobra.Command {
	var (
		bodyFlag     string
		categoryFlag string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := initRecordStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			msg := &model.Message{
				Date:     time.Now(),
				Title:    args[0],
				Body:     bodyFlag,
				Category: model.ParseMessageCategory(categoryFlag),
				IsActive: true,
			}
			if err := store.SaveMessage(ctx, msg); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Message %s saved", msg.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&bodyFlag, "body", "", "message body")
	cmd.Flags().StringVar(&categoryFlag, "category", string(model.MessageSupport), "category (Support, Administration, Marketing)")

	return cmd
}

func deleteMessageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := initRecordStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteMessage(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Message deleted"))
			return nil
		},
	}
}
