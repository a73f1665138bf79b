package main

import (
	"context"
	"fmt"
	"strings"

	"todolist/internal/client"
	"todolist/internal/utils"
	"todolist/internal/view"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all todos",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v := mount(cmd.Context())
		return v.Render(cmd.OutOrStdout())
	},
}

var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a new todo",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v := mount(cmd.Context())
		v.SetNewTodo(strings.Join(args, " "))
		v.Submit(cmd.Context())
		return v.Render(cmd.OutOrStdout())
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a todo between done and not done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		v := mount(cmd.Context())
		v.Toggle(cmd.Context(), id)
		return v.Render(cmd.OutOrStdout())
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id> <text>",
	Short: "Replace the text of a todo",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		v := mount(cmd.Context())
		v.StartEdit(id, currentText(v, id))
		v.SetEditText(strings.Join(args[1:], " "))
		v.SaveEdit(cmd.Context())
		return v.Render(cmd.OutOrStdout())
	},
}

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a todo",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		v := mount(cmd.Context())
		v.Delete(cmd.Context(), id)
		return v.Render(cmd.OutOrStdout())
	},
}

func mount(ctx context.Context) *view.TodoView {
	v := view.New(client.New(apiURL, nil))
	v.Mount(ctx)
	return v
}

func currentText(v *view.TodoView, id int64) string {
	for _, t := range v.Todos() {
		if t.ID == id {
			return t.Text
		}
	}
	return ""
}

func parseID(raw string) (int64, error) {
	id, ok := utils.ParseID(raw)
	if !ok {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
