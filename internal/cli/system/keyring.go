package system

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/habitflow/habitflow-cli/internal/cli"
	"github.com/habitflow/habitflow-cli/internal/keyring"
	"github.com/habitflow/habitflow-cli/internal/storage"
)

// KeyringSetCmd stores database connection credentials in the OS keyring
type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in keyring"`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	if !strings.HasPrefix(cmd.ConnectionString, "postgres://") &&
		!strings.HasPrefix(cmd.ConnectionString, "postgresql://") &&
		!strings.Contains(cmd.ConnectionString, "host=") {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if storage.HasEmbeddedCredentials(cmd.ConnectionString) {
		fmt.Println("⚠️  Note: Connection string contains embedded credentials.")
		fmt.Println("   It will be stored as-is in the encrypted OS keyring.")
	}

	if err := keyring.SetConnectionString(cmd.ConnectionString); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}

	fmt.Println("✓ Connection string stored successfully in OS keyring")
	fmt.Println("  You can now use habitflow without the --config flag")
	return nil
}

// KeyringGetCmd retrieves database connection credentials from the OS keyring
type KeyringGetCmd struct{}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring. Use 'habitflow keyring set' to store one")
		}
		return fmt.Errorf("failed to retrieve connection string from keyring: %w", err)
	}

	fmt.Println("Connection string retrieved from keyring:")
	fmt.Println(maskPassword(connStr))
	return nil
}

// KeyringDeleteCmd removes database connection credentials from the OS keyring
type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}

	fmt.Println("✓ Connection string removed from OS keyring")
	return nil
}

// maskPassword hides the password portion of a connection string for display.
func maskPassword(connStr string) string {
	if u, err := url.Parse(connStr); err == nil && u.User != nil {
		if _, has := u.User.Password(); has {
			u.User = url.UserPassword(u.User.Username(), "****")
			return u.String()
		}
		return connStr
	}

	// DSN form: password=...
	fields := strings.Fields(connStr)
	for i, f := range fields {
		if strings.HasPrefix(f, "password=") {
			fields[i] = "password=****"
		}
	}
	return strings.Join(fields, " ")
}
