package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"dareme/internal/app"
	"dareme/internal/config"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads .env, the config file and environment overrides.
func loadConfig() (*config.Config, map[string]string, error) {
	if err := app.LoadEnv(); err != nil {
		return nil, nil, err
	}

	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}
	app.ApplyEnvOverrides(cfg)
	return cfg, defaults, nil
}

// newApp reads the config and creates a DareApp. The caller must defer app.Close().
// command identifies the CLI command being run (e.g. "post-create").
func newApp(command string) (*app.DareApp, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return nil, err
	}

	a, err := app.NewDareApp(cfg, command)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

// readSecret returns the value of envVar if set, otherwise prompts on the
// terminal without echo. Non-interactive stdin is read as one line.
func readSecret(envVar, prompt string) (string, error) {
	if v := os.Getenv(envVar); v != "" {
		return v, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("reading %s from stdin: %w", strings.ToLower(prompt), err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fmt.Fprintf(os.Stderr, "%s: ", prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", strings.ToLower(prompt), err)
	}
	return string(b), nil
}

// login authenticates the user named by --as (or DAREME_USER).
func login(cmd *cobra.Command, a *app.DareApp) (*app.Session, error) {
	username, _ := cmd.Flags().GetString("as")
	if username == "" {
		username = os.Getenv("DAREME_USER")
	}
	if username == "" {
		return nil, fmt.Errorf("no user: pass --as USERNAME or set DAREME_USER")
	}

	password, err := readSecret("DAREME_PASSWORD", "Password")
	if err != nil {
		return nil, err
	}
	return a.Login(username, password)
}

// withSession opens the app, logs in and runs fn.
func withSession(cmd *cobra.Command, command string, fn func(a *app.DareApp, sess *app.Session) error) error {
	a, err := newApp(command)
	if err != nil {
		return err
	}
	defer a.Close()

	sess, err := login(cmd, a)
	if err != nil {
		return err
	}
	return fn(a, sess)
}

// withApp opens the app and runs fn without a session.
func withApp(command string, fn func(a *app.DareApp) error) error {
	a, err := newApp(command)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// userIDOrSelf resolves an optional username argument, defaulting to the
// session user.
func userIDOrSelf(cmd *cobra.Command, a *app.DareApp, args []string) (int64, error) {
	if len(args) > 0 {
		u, err := a.LookupUser(args[0])
		if err != nil {
			return 0, err
		}
		return u.ID, nil
	}
	sess, err := login(cmd, a)
	if err != nil {
		return 0, err
	}
	return sess.UserID, nil
}

const timeLayout = "2006-01-02 15:04"

var rootCmd = &cobra.Command{
	Use:          "dareme",
	Short:        "DareMe social backend",
	SilenceUsage: true,
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.LoadEnv(); err != nil {
			return err
		}
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.NewConfig(defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Base Dir: %s\n", defaults["base_dir"])
		fmt.Println("Next: run 'dareme db migrate' and 'dareme db keygen'")
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, defaults, err := loadConfig()
		if err != nil {
			return err
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Base Dir:  %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:   %s\n", cfg.LogDir)
		fmt.Printf("Database:  %s %s%s\n", cfg.Database.Type, cfg.Database.DataDir, cfg.Database.Path)
		switch cfg.Media.Type {
		case "s3":
			fmt.Printf("Media:     s3://%s/%s\n", cfg.Media.S3Bucket, cfg.Media.S3Prefix)
		default:
			fmt.Printf("Media:     %s %s\n", cfg.Media.Type, cfg.Media.Root)
		}
		fmt.Printf("Uploads:   max %d bytes, images %v, videos %v\n", cfg.Upload.MaxSize, cfg.Upload.ImageTypes, cfg.Upload.VideoTypes)
		fmt.Printf("Backups:   %s\n", cfg.Backup.Type)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("as", "", "Username to act as (password from DAREME_PASSWORD or prompt)")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
