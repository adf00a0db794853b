package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MKhiriev/go-quick-post/internal/adapter"
	"github.com/MKhiriev/go-quick-post/internal/config"
	"github.com/MKhiriev/go-quick-post/internal/logger"
	"github.com/MKhiriev/go-quick-post/internal/service"
	"github.com/MKhiriev/go-quick-post/internal/store"
	"github.com/MKhiriev/go-quick-post/models"
)

// annotationSession marks commands that need a constructed session service.
const annotationSession = "quickpost/session"

type sessionFactory func(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (service.SessionService, func() error, error)

// rootOptions holds the persistent flags.
type rootOptions struct {
	configPath string
	address    string
	backend    string
}

// cli owns the command tree and the session it builds for the subcommands.
// Every external effect is a field so tests can replace it.
type cli struct {
	opts      rootOptions
	buildInfo models.AppBuildInfo

	loadConfig    func(config.StructuredConfig) (*config.ClientConfig, error)
	newLogger     func(config.ClientLog) *logger.Logger
	newSession    sessionFactory
	isTerminal    func(fd int) bool
	readPassword  func(fd int) ([]byte, error)
	readClipboard func() (string, error)
	now           func() time.Time

	log    *logger.Logger
	async  *service.AsyncSessionClient
	closer func() error
}

func newCLI(buildInfo models.AppBuildInfo) *cli {
	return &cli{
		buildInfo:  buildInfo,
		loadConfig: config.GetClientConfigWithOverrides,
		newLogger: func(cfg config.ClientLog) *logger.Logger {
			return logger.NewClientLogger("quickpost", cfg.File, cfg.Level)
		},
		newSession:    newSessionFromConfig,
		isTerminal:    term.IsTerminal,
		readPassword:  term.ReadPassword,
		readClipboard: clipboard.ReadAll,
		now:           time.Now,
	}
}

func newSessionFromConfig(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (service.SessionService, func() error, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, nil, fmt.Errorf("create server adapter: %w", err)
	}

	credentialStore, closeStore, err := store.NewCredentialStore(ctx, cfg.Storage, log)
	if err != nil {
		return nil, nil, fmt.Errorf("create credential store: %w", err)
	}

	return service.NewSessionService(credentialStore, serverAdapter, log), closeStore, nil
}

// execute runs the command tree with args and releases the credential store.
func (c *cli) execute(ctx context.Context, args []string) error {
	root := c.rootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if closeErr := c.close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	return err
}

func (c *cli) close() error {
	if c.closer == nil {
		return nil
	}
	closer := c.closer
	c.closer = nil
	if err := closer(); err != nil {
		return fmt.Errorf("close credential store: %w", err)
	}
	return nil
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "quickpost",
		Short: "Post to Bluesky from the command line",
		Long: `quickpost logs in to a Bluesky (AT Protocol) server, keeps the session in the
credential store and publishes text posts.

Examples:
  # Log in, prompting for the app password
  quickpost login --identifier alice.bsky.social

  # Publish a post
  quickpost post "Hello, Bluesky!"

  # Publish the clipboard contents
  quickpost post --from-clipboard

  # Show the stored session
  quickpost status`,
		Version:           c.buildInfo.String(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.preRun,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.opts.configPath, "config", "c", "", "JSON config file path")
	flags.StringVarP(&c.opts.address, "address", "a", "", "Server base URL (default https://bsky.social)")
	flags.StringVar(&c.opts.backend, "backend", "", "Credential store backend: keyring, sqlite or memory")

	root.AddCommand(
		c.loginCommand(),
		c.postCommand(),
		c.logoutCommand(),
		c.statusCommand(),
	)
	return root
}

// preRun builds the session service once, for commands annotated with
// annotationSession.
func (c *cli) preRun(cmd *cobra.Command, _ []string) error {
	if _, ok := cmd.Annotations[annotationSession]; !ok || c.async != nil {
		return nil
	}

	cfg, err := c.loadConfig(config.StructuredConfig{
		Adapter:      config.Adapter{HTTPAddress: c.opts.address},
		Storage:      config.Storage{Backend: c.opts.backend},
		JSONFilePath: c.opts.configPath,
	})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	c.log = c.newLogger(cfg.Log)

	session, closer, err := c.newSession(cmd.Context(), cfg, c.log)
	if err != nil {
		return err
	}

	c.async = service.NewAsyncSessionClient(session)
	c.closer = closer
	return nil
}

func needsSession() map[string]string {
	return map[string]string{annotationSession: ""}
}

func stdinFD() int {
	return int(os.Stdin.Fd())
}
