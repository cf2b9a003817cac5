package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmynk/chatrecords/internal/models"
)

var user models.UserProfile

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Print a user profile built from flags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		slog.Debug("Built user profile", "id", user.GetID(), "email", user.GetEmail())
		return printRecord(cmd.OutOrStdout(), &user)
	},
}

var group models.GroupDescriptor

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Print a group descriptor built from flags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		slog.Debug("Built group descriptor", "group_name", group.GetGroupName())
		return printRecord(cmd.OutOrStdout(), &group)
	},
}

func init() {
	f := userCmd.Flags()
	f.Int32Var(&user.ID, "id", 0, "user id")
	f.StringVar(&user.FullName, "full-name", "", "full name")
	f.StringVar(&user.Email, "email", "", "email address")
	f.Int32Var(&user.Age, "age", 0, "age")
	f.StringVar(&user.City, "city", "", "city")

	g := groupCmd.Flags()
	g.StringVar(&group.GroupName, "name", "", "group name")
	g.StringVar(&group.Description, "description", "", "group description")

	rootCmd.AddCommand(userCmd, groupCmd)
}
