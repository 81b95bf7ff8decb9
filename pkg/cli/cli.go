package cli

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pushloop/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

const defaultEnvFile = ".env"

type CLI struct {
}

func New() *CLI {
	return &CLI{}
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
		envFile   string
	)

	if err := loadEnvFile(argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	app := &cli.Command{
		Name:           "pushloop",
		Usage:          "Push a timestamped file to GitHub repositories periodically",
		DefaultCommand: "run",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [trace|debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("PUSHLOOP_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("PUSHLOOP_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("PUSHLOOP_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "-",
			},
			&cli.StringFlag{
				Name:        "env-file",
				Usage:       "Dotenv file loaded before other options. Ignored if missing",
				Sources:     cli.EnvVars("PUSHLOOP_ENV_FILE"),
				Destination: &envFile,
				Value:       defaultEnvFile,
			},
		},
		Commands: []*cli.Command{
			runCommand(),
			checkCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			return logging.With(ctx, logging.Default()), nil
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}

// loadEnvFile reads the dotenv file named by --env-file or PUSHLOOP_ENV_FILE
// into the environment before flags resolve their sources. Variables that are
// already set are kept.
func loadEnvFile(argv []string) error {
	path, explicit := envFilePath(argv)

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return goerr.Wrap(err, "failed to load env file", goerr.V("path", path))
	}
	return nil
}

func envFilePath(argv []string) (string, bool) {
	for i, arg := range argv {
		if arg == "--" {
			break
		}
		if v, ok := strings.CutPrefix(arg, "--env-file="); ok {
			return v, true
		}
		if arg == "--env-file" && i+1 < len(argv) {
			return argv[i+1], true
		}
	}

	if v, ok := os.LookupEnv("PUSHLOOP_ENV_FILE"); ok && v != "" {
		return v, true
	}
	return defaultEnvFile, false
}
