package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/cobra"
)

func newStateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect or change the saved analyzer state",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the saved analyzer state",
			Args:  cobra.NoArgs,
			RunE:  a.wrap(a.runStateShow),
		},
		&cobra.Command{
			Use:   "save",
			Short: "Save the current analyzer state",
			Args:  cobra.NoArgs,
			RunE:  a.wrap(a.runStateSave),
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Delete the saved analyzer state",
			Args:  cobra.NoArgs,
			RunE:  a.wrap(a.runStateReset),
		},
	)

	return cmd
}

type stateView struct {
	Path    string     `json:"path"`
	Exists  bool       `json:"exists"`
	Version int        `json:"version,omitempty"`
	SavedAt *time.Time `json:"savedAt,omitempty"`
	Error   string     `json:"error,omitempty"`
}

func (a *app) runStateShow(cmd *cobra.Command, args []string) error {
	view := stateView{Path: a.store.Path}

	state, err := a.store.Read()
	switch {
	case err == nil:
		view.Exists = true
		view.Version = state.Version
		view.SavedAt = &state.SavedAt
	case errors.Is(err, fs.ErrNotExist):
	default:
		view.Exists = true
		view.Error = err.Error()
	}

	if a.ui.IsJSON() {
		encoder := json.NewEncoder(a.ui.Writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(view)
	}

	s := a.ui.Styles
	w := a.ui.Writer
	fmt.Fprintf(w, "%s %s\n", s.Header.Render("State file:"), s.Path.Render(view.Path))
	switch {
	case !view.Exists:
		fmt.Fprintln(w, s.Dim.Render("No saved state"))
	case view.Error != "":
		fmt.Fprintln(w, s.Error.Render(fmt.Sprintf("%s %s", s.IconError, view.Error)))
		fmt.Fprintln(w, s.Dim.Render("A fresh analyzer will be used until the state is saved again"))
	default:
		fmt.Fprintf(w, "Version:  %d\n", view.Version)
		fmt.Fprintf(w, "Saved at: %s\n", view.SavedAt.Local().Format(time.RFC1123))
	}
	return nil
}

func (a *app) runStateSave(cmd *cobra.Command, args []string) error {
	if err := a.store.Save(a.store.Load()); err != nil {
		return fmt.Errorf("failed to save data: %w", err)
	}
	fmt.Fprintln(a.ui.Writer, a.ui.Styles.Success.Render(
		fmt.Sprintf("%s Analysis data saved to %s", a.ui.Styles.IconSuccess, a.store.Path),
	))
	return nil
}

func (a *app) runStateReset(cmd *cobra.Command, args []string) error {
	if err := a.store.Reset(); err != nil {
		return err
	}
	fmt.Fprintln(a.ui.Writer, a.ui.Styles.Success.Render(
		fmt.Sprintf("%s Removed %s", a.ui.Styles.IconSuccess, a.store.Path),
	))
	return nil
}
