package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saketh8887/medconnect/internal/profile"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List and provision accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every account",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		users, err := rt.store.ListUsers(cmd.Context())
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-38s  %-22s  %-30s  %-8s  %-16s  %s\n",
			"ID", "Name", "Email", "Role", "Year", "Last login")
		fmt.Fprintln(out, strings.Repeat("─", 136))
		for _, u := range users {
			last := "never"
			if u.LastLogin != nil {
				last = u.LastLogin.Local().Format("2006-01-02 15:04")
			}
			fmt.Fprintf(out, "%-38s  %-22s  %-30s  %-8s  %-16s  %s\n",
				u.ID, u.Name, u.Email, u.Role, u.Year, last)
		}
		return nil
	},
}

var usersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Provision a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		name, _ := f.GetString("name")
		email, _ := f.GetString("email")
		password, _ := f.GetString("password")
		role, _ := f.GetString("role")
		year, _ := f.GetString("year")
		college, _ := f.GetString("college")

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		u := &profile.UserProfile{
			Name:     name,
			Email:    email,
			Password: password,
			Role:     profile.Role(role),
			Year:     year,
			College:  college,
		}
		if err := rt.store.CreateUser(cmd.Context(), u); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s) with id %s\n", u.Name, u.Email, u.ID)
		return nil
	},
}

func init() {
	f := usersAddCmd.Flags()
	f.String("name", "", "Full name")
	f.String("email", "", "Sign-in email")
	f.String("password", "", "Initial password")
	f.String("role", string(profile.RoleStudent), "Student, Nurse, Doctor or Admin")
	f.String("year", "", "Academic year, e.g. \"MBBS Phase II\"")
	f.String("college", "", "College name")
	for _, name := range []string{"name", "email", "password"} {
		_ = usersAddCmd.MarkFlagRequired(name)
	}

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersAddCmd)
}
