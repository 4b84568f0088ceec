package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"holocron/internal/client/api"
	"holocron/internal/client/models"
	"holocron/internal/client/notes"
)

// List fetches notes from the server, optionally filtered by term, and prints
// them numbered, newest first. The fetched collection is remembered so that
// show, edit and delete can refer to notes by number.
func (a *App) List(ctx context.Context, term string) error {
	result, err := a.repo.List(ctx, term)
	if err != nil {
		printlnFn("Error:", err.Error())
		reportAuthLoss(err)
		return err
	}

	notes.SortByUpdatedDesc(result)
	a.notes = result

	if len(a.notes) == 0 {
		if term == "" {
			printlnFn("No notes yet. Type 'add' to create one.")
		} else {
			printlnFn("No notes match", strconv.Quote(term))
		}
		return nil
	}

	for i, n := range a.notes {
		printlnFn(fmt.Sprintf("%3d. %s (updated %s)", i+1, n.DisplayTitle(), n.UpdatedAt.Local().Format("2006-01-02 15:04")))
	}
	return nil
}

// Add collects a title and a multi-line body and creates the note. A note
// with both fields empty is rejected locally without a network call.
func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}

	content, err := GetMultiline(a.reader, "Enter note text:", os.Stdout)
	if err != nil {
		return err
	}

	saved, err := a.repo.Save(ctx, models.Note{Title: title, Content: content})
	if err != nil {
		printlnFn("Error:", err.Error())
		reportAuthLoss(err)
		return err
	}

	a.rememberNote(*saved)
	printlnFn("Created", saved.DisplayTitle())
	return nil
}

// Show displays a single note from the last listing.
func (a *App) Show(ctx context.Context) error {
	n, err := a.pickNote()
	if err != nil {
		return err
	}

	fresh, err := a.repo.Get(ctx, n.ID)
	if err != nil {
		printlnFn("Error:", err.Error())
		reportAuthLoss(err)
		return err
	}
	a.rememberNote(*fresh)

	printlnFn("Title:  ", fresh.DisplayTitle())
	printlnFn("Updated:", fresh.UpdatedAt.Local().Format("2006-01-02 15:04"))
	printlnFn("")
	printlnFn(fresh.Content)
	return nil
}

// Edit prompts for new values for a note from the last listing. An empty
// title input keeps the current title; the body is always re-entered.
func (a *App) Edit(ctx context.Context) error {
	n, err := a.pickNote()
	if err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Enter title [%s]", n.DisplayTitle()), os.Stdout)
	if err != nil {
		return err
	}
	if title == "" {
		title = n.Title
	}

	content, err := GetMultiline(a.reader, "Enter note text:", os.Stdout)
	if err != nil {
		return err
	}

	saved, err := a.repo.Save(ctx, models.Note{ID: n.ID, Title: title, Content: content})
	if err != nil {
		printlnFn("Error:", err.Error())
		reportAuthLoss(err)
		return err
	}

	a.rememberNote(*saved)
	printlnFn("Saved", saved.DisplayTitle())
	return nil
}

// Delete removes a note from the last listing. The local collection is only
// updated after the server confirms the deletion.
func (a *App) Delete(ctx context.Context) error {
	n, err := a.pickNote()
	if err != nil {
		return err
	}

	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Delete %q? (y/N)", n.DisplayTitle()), os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "Y" {
		printlnFn("Cancelled")
		return nil
	}

	if err := a.repo.Delete(ctx, n.ID); err != nil {
		printlnFn("Error:", err.Error())
		reportAuthLoss(err)
		return err
	}

	a.forgetNote(n.ID)
	printlnFn("Deleted", n.DisplayTitle())
	return nil
}

var errNoSelection = errors.New("no note selected")

// pickNote prompts for a note number referring to the last listing.
func (a *App) pickNote() (models.Note, error) {
	var zero models.Note

	if len(a.notes) == 0 {
		printlnFn("No notes listed yet. Run 'list' first.")
		return zero, errNoSelection
	}

	input, err := getSimpleText(a.reader, fmt.Sprintf("Enter note number (1-%d)", len(a.notes)), os.Stdout)
	if err != nil {
		return zero, err
	}

	idx, err := strconv.Atoi(input)
	if err != nil || idx < 1 || idx > len(a.notes) {
		printlnFn("Invalid note number:", input)
		return zero, errNoSelection
	}

	return a.notes[idx-1], nil
}

// reportAuthLoss prints a hint when a command failed because the session was
// rejected by the server.
func reportAuthLoss(err error) {
	if errors.Is(err, api.ErrAuthenticationRequired) {
		printlnFn("Your session has expired. Please log in again.")
	}
}
