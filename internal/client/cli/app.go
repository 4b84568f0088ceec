package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"holocron/internal/client/api"
	"holocron/internal/client/config"
	"holocron/internal/client/credstore"
	"holocron/internal/client/models"
	"holocron/internal/client/notes"
	"holocron/internal/client/session"
	"holocron/internal/logging"

	_ "modernc.org/sqlite"
)

// App holds the wired-up client components and the note collection shown by
// the most recent listing. Commands reference notes by their number in that
// listing.
type App struct {
	config  *config.Config
	session *session.Manager
	repo    *notes.Repository
	api     api.Client
	db      *sql.DB
	reader  *bufio.Reader
	log     logging.Logger

	// notes listed last, newest first
	notes []models.Note
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {

	ctx := context.Background()

	db, err := credstore.InitDatabase(ctx, c.VaultPath)
	if err != nil {
		log.Error(ctx, "error initializing vault", "error", err)
		return nil, err
	}

	store := credstore.NewSQLiteStore(db)
	apiClient := api.NewHTTPClient(c.APIBaseURL, store, log)

	sess := session.NewManager(apiClient, store, log)
	apiClient.OnAuthRejected(sess.Invalidate)

	repo := notes.NewRepository(apiClient)

	return &App{
		config:  c,
		session: sess,
		repo:    repo,
		api:     apiClient,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		log:     log,
	}, nil
}

// Run restores any persisted session and hands control to the REPL. It blocks
// until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	a.session.Restore(ctx)
	if u := a.session.CurrentUser(); u != nil {
		printlnFn("Welcome back,", u.Email)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if u := a.session.CurrentUser(); u != nil {
		return "(" + u.Email + ")"
	}
	return ""
}

// rememberNote keeps the local collection consistent with the server after a
// save: an existing note is replaced in place, a new one is prepended since
// it is necessarily the most recently updated.
func (a *App) rememberNote(n models.Note) {
	for i := range a.notes {
		if a.notes[i].ID == n.ID {
			a.notes[i] = n
			notes.SortByUpdatedDesc(a.notes)
			return
		}
	}
	a.notes = append([]models.Note{n}, a.notes...)
}

func (a *App) forgetNote(id string) {
	for i := range a.notes {
		if a.notes[i].ID == id {
			a.notes = append(a.notes[:i], a.notes[i+1:]...)
			return
		}
	}
}
